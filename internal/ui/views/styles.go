package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Caption         lipgloss.Style
	Header          lipgloss.Style
	Dim             lipgloss.Style
	Status          lipgloss.Style
	Filter          lipgloss.Style
	Help            lipgloss.Style
	Main            lipgloss.Style
	Scroll          lipgloss.Style
	Cursor          lipgloss.Style
	Checked         lipgloss.Style
	Indeterminate   lipgloss.Style
	ActiveIndicator lipgloss.Style
	Chevron         lipgloss.Style
	Drawer          lipgloss.Style
	StatusError     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Caption: lipgloss.NewStyle().Bold(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Cursor:          lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Checked:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Indeterminate:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),           // yellow
		ActiveIndicator: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),            // blue
		Chevron:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Drawer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("33")).
			PaddingLeft(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
