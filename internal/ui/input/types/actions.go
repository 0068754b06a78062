package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// PageAction is a press of the "Previous" (-1) or "Next" (+1) control
type PageAction struct {
	Delta int
}

func (a PageAction) Type() string { return "page" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type ClearTextAction struct{}

func (a ClearTextAction) Type() string { return "clear_text" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type OpenItemAction struct{}

func (a OpenItemAction) Type() string { return "open_item" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
