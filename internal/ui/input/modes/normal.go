package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"postsearch/internal/ui/input/keys"
	"postsearch/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := keys.Default
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, k.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, k.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, k.Next):
		return []types.Action{types.PageAction{Delta: 1}}, true

	case key.Matches(msg, k.Prev):
		return []types.Action{types.PageAction{Delta: -1}}, true

	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, k.Open):
		// Nothing to open while loading or when the list is empty
		if ctx.IsLoading() || ctx.ItemCount() == 0 {
			return nil, true
		}
		return []types.Action{types.OpenItemAction{}}, true

	case key.Matches(msg, k.Reload):
		return []types.Action{types.ReloadAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
