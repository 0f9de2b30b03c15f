package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// errNoProgram is returned when the pager is requested before the program
// reference was set
var errNoProgram = errors.New("program not set")

// helpSection is one titled block of bindings on the help page
type helpSection struct {
	title    string
	bindings []key.Binding
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title    string
	sections []helpSection
}

// NewHelpRenderer creates a help renderer for the given bindings
func NewHelpRenderer(title string, groups [][]key.Binding) *HelpRenderer {
	titles := []string{"Navigation", "Selection", "Other"}
	r := &HelpRenderer{title: title}
	for i, bindings := range groups {
		name := "Other"
		if i < len(titles) {
			name = titles[i]
		}
		r.sections = append(r.sections, helpSection{title: name, bindings: bindings})
	}
	return r
}

// RenderHelpContent generates the colored help page for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	keyWidth := 0
	for _, section := range r.sections {
		for _, b := range section.bindings {
			if w := lipgloss.Width(b.Help().Key); w > keyWidth {
				keyWidth = w
			}
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render(r.title + " Help"))
	help.WriteString("\n")

	for _, section := range r.sections {
		var lines []string
		for _, b := range section.bindings {
			if !b.Enabled() {
				continue
			}
			k := b.Help().Key
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(k)+2)
			lines = append(lines, fmt.Sprintf("  %s%s%s", keyStyle.Render(k), pad, descStyle.Render(b.Help().Desc)))
		}
		if len(lines) == 0 {
			continue
		}
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		help.WriteString(strings.Join(lines, "\n"))
		help.WriteString("\n\n")
	}

	note := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(note.Render("  On exit the selected row ids are printed, one per line."))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
