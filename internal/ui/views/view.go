package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering a frame
type ViewState struct {
	Width         int
	Height        int
	Caption       string
	Table         TableView
	Selectable    bool
	SelectedCount int
	FilterQuery   string
	InputMode     string
	TextInput     string
	StatusMessage string
	StatusIsError bool
	HelpLine      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	table  *TableRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles, table *TableRenderer) *Renderer {
	return &Renderer{
		styles: styles,
		table:  table,
	}
}

// Styles returns the styles in use
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	if state.InputMode != "" {
		content.WriteString(r.styles.Filter.Render(state.InputMode + ": "))
		content.WriteString(state.TextInput)
		content.WriteString("\n\n")
	}

	table := state.Table
	if table.Width <= 0 {
		table.Width = contentWidth(state.Width)
	}
	content.WriteString(r.table.Render(table))

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString("\n\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	if state.HelpLine != "" {
		// Push help to the bottom; Main adds one line of padding above and below
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if pad := availableLines - currentLines - lipgloss.Height(state.HelpLine); pad > 0 {
			content.WriteString(strings.Repeat("\n", pad))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpLine))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the caption with right-aligned selection and
// filter indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	title := r.styles.Title.Render("tablegrip")
	if state.Caption != "" {
		title = r.styles.Caption.Render(state.Caption)
	}

	var indicators []string
	if state.Selectable {
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%d selected", state.SelectedCount)))
	}
	if state.FilterQuery != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery)))
	}
	if len(indicators) == 0 {
		return title
	}

	right := strings.Join(indicators, "  ")
	padding := contentWidth(state.Width) - lipgloss.Width(title) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return title + strings.Repeat(" ", padding) + right
}

// contentWidth is the terminal width minus the Main style's padding
func contentWidth(termWidth int) int {
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	return termWidth - 4
}
