package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"postsearch/internal/ui/input/keys"
	"postsearch/internal/ui/input/types"
)

// SearchMode edits the query. Keys that a text field has no use for
// still drive pagination so results can be paged while typing.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, keys.Default.SearchNext):
		return []types.Action{types.PageAction{Delta: 1}}, true
	case key.Matches(msg, keys.Default.SearchPrev):
		return []types.Action{types.PageAction{Delta: -1}}, true
	case key.Matches(msg, keys.Default.SearchUp):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, keys.Default.SearchDown):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
