package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Input          lipgloss.Style
	InputBlurred   lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Scroll         lipgloss.Style
	ItemTitle      lipgloss.Style
	ItemBody       lipgloss.Style
	SelectionBg    lipgloss.Style
	Cursor         lipgloss.Style
	Loading        lipgloss.Style
	Error          lipgloss.Style
	Empty          lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	PageLabel      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		InputBlurred: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		ItemTitle:   lipgloss.NewStyle().Bold(true),
		ItemBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("78")), // green
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Strikethrough(true),
		PageLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
