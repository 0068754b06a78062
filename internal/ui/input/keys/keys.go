// Package keys holds the key bindings shared by the input modes and the help footer.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines every binding the UI reacts to
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Next      key.Binding
	Prev      key.Binding
	Search    key.Binding
	Browse    key.Binding
	Clear     key.Binding
	Open      key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// Search-mode variants; plain letters are typed into the query there
	SearchNext key.Binding
	SearchPrev key.Binding
	SearchUp   key.Binding
	SearchDown key.Binding
}

// Default is the key map used by the application
var Default = KeyMap{
	Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
	Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first item")),
	Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last item")),
	Next:      key.NewBinding(key.WithKeys("l", "right", "n", "pgdown"), key.WithHelp("→/l", "next page")),
	Prev:      key.NewBinding(key.WithKeys("h", "left", "p", "pgup"), key.WithHelp("←/h", "previous page")),
	Search:    key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "search")),
	Browse:    key.NewBinding(key.WithKeys("esc", "tab", "enter"), key.WithHelp("tab", "browse results")),
	Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear query")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open item")),
	Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload page")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

	SearchNext: key.NewBinding(key.WithKeys("pgdown", "ctrl+n"), key.WithHelp("pgdn", "next page")),
	SearchPrev: key.NewBinding(key.WithKeys("pgup", "ctrl+p"), key.WithHelp("pgup", "previous page")),
	SearchUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	SearchDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
}

// SearchHelp implements help.KeyMap for search mode
type SearchHelp struct{ KeyMap }

func (k SearchHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.SearchPrev, k.SearchNext, k.Browse, k.Clear, k.ForceQuit}
}

func (k SearchHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SearchUp, k.SearchDown},
		{k.SearchPrev, k.SearchNext},
		{k.Browse, k.Clear, k.ForceQuit},
	}
}

// NormalHelp implements help.KeyMap for normal mode
type NormalHelp struct{ KeyMap }

func (k NormalHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Search, k.Open, k.Help, k.Quit}
}

func (k NormalHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Prev, k.Next, k.Reload},
		{k.Search, k.Open, k.Help, k.Quit},
	}
}
