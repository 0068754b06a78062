package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"postsearch/internal/config"
	"postsearch/internal/ui/input/keys"
	"postsearch/internal/ui/input/types"
	"postsearch/internal/ui/state"
	"postsearch/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.SearchState
	config    *config.Config
	width     int
	height    int
	help      help.Model
	spinner   spinner.Model
	textInput textinput.Model
	mode      types.Mode
	source    string
}

// NewViewModel creates a new view model
func NewViewModel(searchState *state.SearchState, cfg *config.Config, source string) *ViewModel {
	return &ViewModel{
		state:  searchState,
		config: cfg,
		help:   help.New(),
		source: source,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetSpinner sets the spinner shown while loading
func (vm *ViewModel) SetSpinner(s spinner.Model) {
	vm.spinner = s
}

// UpdateTextInput updates the search box and the input mode it is shown in
func (vm *ViewModel) UpdateTextInput(ti textinput.Model, mode types.Mode) {
	vm.textInput = ti
	vm.mode = mode
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state

	var helpKeys help.KeyMap = keys.NormalHelp{KeyMap: keys.Default}
	if vm.mode == types.ModeSearch {
		helpKeys = keys.SearchHelp{KeyMap: keys.Default}
	}

	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		SearchInput:   vm.textInput.View(),
		Searching:     vm.mode == types.ModeSearch,
		Mode:          s.Mode(),
		ErrorMessage:  s.Err,
		Items:         s.Items,
		Selected:      s.Selected,
		ShowBodies:    vm.config.UISettings.ShowBodies,
		PageLabel:     s.PageLabel(),
		CanPrev:       s.CanPrev(),
		CanNext:       s.CanNext(),
		Spinner:       vm.spinner.View(),
		HelpModel:     vm.help,
		HelpKeys:      helpKeys,
		StatusMessage: s.StatusMessage,
		Source:        vm.source,
	}
}
