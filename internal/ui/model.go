package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"postsearch/internal/config"
	"postsearch/internal/ui/commands"
	"postsearch/internal/ui/debounce"
	"postsearch/internal/ui/input"
	"postsearch/internal/ui/input/keys"
	inputtypes "postsearch/internal/ui/input/types"
	"postsearch/internal/ui/state"
	"postsearch/internal/ui/viewmodels"
	"postsearch/internal/ui/views"
)

// statusTimeout is how long transient status messages stay on screen
const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.SearchState // centralized state

	// UI-specific state not in SearchState
	width       int
	height      int
	help        help.Model
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	searchInput  *debounce.Debouncer[string] // debounces typing into fetches
	helpRender   *HelpRenderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. source is shown in the title bar.
func NewModel(cfg *config.Config, searcher commands.Searcher, source string) *Model {
	searchState := state.NewSearchState()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		config:       cfg,
		state:        searchState,
		help:         help.New(),
		spinner:      sp,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpRender:   NewHelpRenderer(),
		pager:        NewPagerOps(),
	}
	m.spinner.Style = m.renderer.Styles().Loading

	m.cmdExecutor = commands.NewExecutor(searchState, searcher, cfg.PageSize)

	// A settled query always starts again from the first page
	m.searchInput = debounce.New(cfg.Debounce.Std(), func(text string) tea.Cmd {
		return m.cmdExecutor.ExecuteFetch(text, 1)
	})

	m.viewModel = viewmodels.NewViewModel(searchState, cfg, source)
	m.viewModel.SetHelp(m.help)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init fires the initial fetch for the empty query
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.cmdExecutor.ExecuteFetch("", 1),
		m.spinner.Tick,
		m.inputHandler.Init(),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help)
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case commands.FetchResultMsg:
		m.cmdExecutor.Apply(msg)
		return m, nil

	case debounce.Msg:
		cmd, _ := m.searchInput.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		// Don't keep the spinner loop alive behind the pager
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pagerMsg:
		if msg.err != nil {
			slog.Warn("pager failed", "content", msg.what, "err", msg.err)
			return m, m.setStatus(fmt.Sprintf("Could not open %s: %v", msg.what, msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSpinner(m.spinner)
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput(), m.inputHandler.CurrentMode())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.state.SetQuery(a.Text)
		return m.searchInput.Trigger(a.Text)

	case inputtypes.PageAction:
		var cmd tea.Cmd
		if a.Delta > 0 {
			cmd = m.cmdExecutor.ExecuteNextPage()
		} else {
			cmd = m.cmdExecutor.ExecutePrevPage()
		}
		if cmd != nil {
			// the page fetch already uses the latest query text
			m.searchInput.Cancel()
		}
		return cmd

	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveSelection(-1)
		case "down":
			m.state.MoveSelection(1)
		case "home":
			m.state.MoveSelection(-len(m.state.Items))
		case "end":
			m.state.MoveSelection(len(m.state.Items))
		}

	case inputtypes.ReloadAction:
		m.searchInput.Cancel()
		return m.cmdExecutor.ExecuteReload()

	case inputtypes.OpenItemAction:
		item, ok := m.state.SelectedItem()
		if !ok {
			return nil
		}
		return m.showPager("item", RenderItemDetail(item))

	case inputtypes.ToggleHelpAction:
		return m.showPager("help", m.helpRender.RenderHelpContent(keys.Default))

	case inputtypes.QuitAction:
		slog.Info("quitting", "force", a.Force)
		m.searchInput.Stop()
		m.cmdExecutor.Shutdown()
		return tea.Quit
	}

	return nil
}

// showPager returns a command that shows content using the ov pager
func (m *Model) showPager(what, content string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg {
			return pagerMsg{what: what, err: errProgramNotSet}
		}
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.state.StatusMessage = message
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
