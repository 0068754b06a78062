package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"postsearch/internal/domain"
	"postsearch/internal/ui/input/keys"
)

var errProgramNotSet = errors.New("program not set")

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(km keys.KeyMap) string {
	var b strings.Builder

	b.WriteString(r.title.Render("postsearch help"))
	b.WriteString("\n")

	r.writeSection(&b, "Search box", []key.Binding{
		km.SearchUp, km.SearchDown, km.SearchPrev, km.SearchNext, km.Browse, km.Clear, km.ForceQuit,
	})
	r.writeSection(&b, "Results", []key.Binding{
		km.Up, km.Down, km.Top, km.Bottom, km.Prev, km.Next, km.Open, km.Reload,
	})
	r.writeSection(&b, "Other", []key.Binding{km.Search, km.Help, km.Quit})

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Typing waits for a short pause before searching. Page keys fetch immediately."))
	b.WriteString("\n")

	return b.String()
}

func (r *HelpRenderer) writeSection(b *strings.Builder, title string, bindings []key.Binding) {
	b.WriteString(r.section.Render(title))
	b.WriteString("\n")

	width := 0
	for _, kb := range bindings {
		if w := lipgloss.Width(kb.Help().Key); w > width {
			width = w
		}
	}
	for _, kb := range bindings {
		h := kb.Help()
		pad := strings.Repeat(" ", width-lipgloss.Width(h.Key)+2)
		fmt.Fprintf(b, "  %s%s%s\n", r.key.Render(h.Key), pad, r.desc.Render(h.Desc))
	}
}

// RenderItemDetail renders the full text of an item for the pager
func RenderItemDetail(item domain.Item) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

	var b strings.Builder
	b.WriteString(title.Render(item.Title))
	b.WriteString("\n\n")
	if id := item.DisplayID(); id != "" {
		fmt.Fprintf(&b, "%s %s\n", label.Render("id:"), id)
	}
	if uid := item.DisplayUserID(); uid != "" {
		fmt.Fprintf(&b, "%s %s\n", label.Render("user:"), uid)
	}
	b.WriteString("\n")
	b.WriteString(item.Body)
	b.WriteString("\n")
	return b.String()
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show displays content in the pager until the user quits it
func (p *PagerOps) Show(content string) error {
	return p.run(strings.NewReader(content))
}

// run hands the terminal to ov, feeding it content from r
func (p *PagerOps) run(r io.Reader) error {
	if p.program == nil {
		return errProgramNotSet
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// ov needs a moment to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
