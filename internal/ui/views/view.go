package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"postsearch/internal/domain"
	"postsearch/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	SearchInput   string
	Searching     bool
	Mode          state.DisplayMode
	ErrorMessage  string
	Items         []domain.Item
	Selected      int
	ShowBodies    bool
	PageLabel     string
	CanPrev       bool
	CanNext       bool
	Spinner       string
	HelpModel     help.Model
	HelpKeys      help.KeyMap
	StatusMessage string
	Source        string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(vs))
	content.WriteString("\n")

	inputStyle := r.styles.InputBlurred
	if vs.Searching {
		inputStyle = r.styles.Input
	}
	content.WriteString(inputStyle.Render(vs.SearchInput))
	content.WriteString("\n\n")

	footer := r.renderFooter(vs)
	footerLines := strings.Count(footer, "\n") + 1

	// title, input box (3 rows), blank line, main padding
	chrome := 1 + 3 + 1 + 2
	bodyHeight := 0
	if vs.Height > 0 {
		bodyHeight = vs.Height - chrome - footerLines - 1
		if bodyHeight < 1 {
			bodyHeight = 1
		}
	}

	content.WriteString(r.renderBody(vs, bodyHeight))

	if vs.Height > 0 {
		used := lipgloss.Height(content.String())
		if pad := vs.Height - 2 - used - footerLines; pad > 0 {
			content.WriteString(strings.Repeat("\n", pad))
		}
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitle(vs ViewState) string {
	logo := r.styles.Title.Render("postsearch")
	if vs.Source == "" {
		return logo
	}
	right := r.styles.Dim.Render(vs.Source)

	termWidth := vs.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	pad := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if pad < 2 {
		pad = 2
	}
	return logo + strings.Repeat(" ", pad) + right
}

// renderBody draws exactly one of the display modes.
func (r *Renderer) renderBody(vs ViewState, height int) string {
	switch vs.Mode {
	case state.ModeLoading:
		return r.styles.Loading.Render(strings.TrimSpace(vs.Spinner + " Loading..."))
	case state.ModeError:
		return r.styles.Error.Render("Error: " + vs.ErrorMessage)
	case state.ModeEmpty:
		return r.styles.Empty.Render("No results found")
	case state.ModeResults:
		// leave room for the blank line and pagination controls
		listHeight := 0
		if height > 0 {
			listHeight = height - 2
			if listHeight < 1 {
				listHeight = 1
			}
		}
		return r.renderItems(vs, listHeight) + "\n\n" + r.RenderPagination(vs)
	default:
		return ""
	}
}

func (r *Renderer) renderItems(vs ViewState, height int) string {
	itemRender := NewItemRenderer(r.styles, vs.ShowBodies)
	width := vs.Width - 4

	start, end := visibleRange(len(vs.Items), vs.Selected, height, itemRender.LinesPerItem())

	var lines []string
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, itemRender.RenderItem(vs.Items[i], i == vs.Selected, width))
	}
	if end < len(vs.Items) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(vs.Items)-end)))
	}
	return strings.Join(lines, "\n")
}

// RenderPagination renders the Previous / page label / Next controls
func (r *Renderer) RenderPagination(vs ViewState) string {
	prev := r.styles.ButtonDisabled.Render("‹ Previous")
	if vs.CanPrev {
		prev = r.styles.Button.Render("‹ Previous")
	}
	next := r.styles.ButtonDisabled.Render("Next ›")
	if vs.CanNext {
		next = r.styles.Button.Render("Next ›")
	}
	return prev + "  " + r.styles.PageLabel.Render(vs.PageLabel) + "  " + next
}

func (r *Renderer) renderFooter(vs ViewState) string {
	var parts []string
	if vs.StatusMessage != "" {
		parts = append(parts, r.styles.Status.Render(vs.StatusMessage))
	}
	if vs.HelpKeys != nil {
		parts = append(parts, r.styles.Help.Render(vs.HelpModel.View(vs.HelpKeys)))
	}
	return strings.Join(parts, "\n")
}

// visibleRange picks the window of items that fits in height lines while
// keeping the selection visible. A height of 0 means unbounded.
func visibleRange(count, selected, height, perItem int) (int, int) {
	if height <= 0 || count*perItem <= height {
		return 0, count
	}
	// reserve two lines for the scroll indicators
	fit := (height - 2) / perItem
	if fit < 1 {
		fit = 1
	}
	if selected < 0 {
		selected = 0
	}
	start := selected - fit/2
	if start < 0 {
		start = 0
	}
	end := start + fit
	if end > count {
		end = count
		start = end - fit
		if start < 0 {
			start = 0
		}
	}
	return start, end
}
