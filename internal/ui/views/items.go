package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"postsearch/internal/domain"
)

// ItemRenderer handles rendering of result items
type ItemRenderer struct {
	styles     *Styles
	showBodies bool
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles, showBodies bool) *ItemRenderer {
	return &ItemRenderer{
		styles:     styles,
		showBodies: showBodies,
	}
}

// LinesPerItem returns how many lines one rendered item takes
func (r *ItemRenderer) LinesPerItem() int {
	if r.showBodies {
		return 2
	}
	return 1
}

// RenderItem renders an item: its title, then the first line of its body
func (r *ItemRenderer) RenderItem(item domain.Item, isSelected bool, width int) string {
	if width <= 0 {
		width = 80
	}

	cursor := "  "
	if isSelected {
		cursor = r.styles.Cursor.Render("▸ ")
	}

	title := oneLine(item.Title)
	if title == "" {
		title = "(untitled)"
	}
	title = ansi.Truncate(title, width-2, "…")

	titleStyle := r.styles.ItemTitle
	if isSelected {
		titleStyle = titleStyle.Inherit(r.styles.SelectionBg)
	}

	var b strings.Builder
	b.WriteString(cursor)
	b.WriteString(titleStyle.Render(title))

	if r.showBodies {
		body := ansi.Truncate(oneLine(item.Body), width-2, "…")
		b.WriteString("\n  ")
		b.WriteString(r.styles.ItemBody.Render(body))
	}

	return b.String()
}

// oneLine collapses all whitespace runs, newlines included, into single spaces
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
