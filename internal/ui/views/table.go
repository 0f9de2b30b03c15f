package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tablegrip/internal/domain"
	"tablegrip/internal/ui/scope"
	"tablegrip/internal/ui/services/disclosure"
	"tablegrip/internal/ui/services/events"
	"tablegrip/internal/ui/services/selection"
)

const (
	checkboxWidth = 5 // indicator, glyph, space
	toggleWidth   = 3 // indicator, chevron, space
	minCellWidth  = 3
	cellGap       = "  "
)

const (
	glyphChecked       = "[x]"
	glyphUnchecked     = "[ ]"
	glyphIndeterminate = "[-]"
	glyphBlank         = "   "
	chevronCollapsed   = "▶"
	chevronExpanded    = "▼"
	activeIndicator    = "▎"
)

// RowState carries per-render row flags
type RowState struct {
	Focused   bool // cursor is on the row
	Activated bool // row shows the active indicator
}

// leadCell renders a checkbox or toggle cell: indicator, glyph, space.
// plain skips inner styling so a focused line can be painted as a whole.
func (s *Styles) leadCell(glyph string, glyphStyle lipgloss.Style, active, plain bool) string {
	ind := " "
	if active {
		ind = activeIndicator
		if !plain {
			ind = s.ActiveIndicator.Render(ind)
		}
	}
	if !plain {
		glyph = glyphStyle.Render(glyph)
	}
	return ind + glyph + " "
}

// HeaderRenderer renders the column header row. Inside a selectable table
// it leads with a select-all checkbox.
type HeaderRenderer struct {
	styles           *Styles
	provider         scope.Provider
	withoutSelectAll bool
	forDrawers       bool
}

// NewHeaderRenderer creates a header renderer bound to the nearest
// selection in sc
func NewHeaderRenderer(styles *Styles, sc *scope.Scope) *HeaderRenderer {
	return &HeaderRenderer{
		styles:   styles,
		provider: sc.Provider(),
	}
}

// WithoutSelectAll keeps the checkbox column but leaves it empty
func (h *HeaderRenderer) WithoutSelectAll() *HeaderRenderer {
	h.withoutSelectAll = true
	return h
}

// ForDrawers adds the blank drawer-toggle column
func (h *HeaderRenderer) ForDrawers() *HeaderRenderer {
	h.forDrawers = true
	return h
}

// Render renders the header. empty hides the select-all box when no row
// can be selected, since an empty selection of nothing counts as "all".
func (h *HeaderRenderer) Render(columns []string, widths []int, empty bool) string {
	c := h.provider.Capability()

	var b strings.Builder
	if c.InSelection() {
		glyph, style := glyphBlank, h.styles.Header
		if !h.withoutSelectAll && !empty {
			switch {
			case c.AllSelected():
				glyph, style = glyphChecked, h.styles.Checked
			case c.SomeSelected():
				glyph, style = glyphIndeterminate, h.styles.Indeterminate
			default:
				glyph = glyphUnchecked
			}
		}
		b.WriteString(h.styles.leadCell(glyph, style, false, false))
	}
	if h.forDrawers {
		b.WriteString(strings.Repeat(" ", toggleWidth))
	}
	b.WriteString(h.styles.Header.Render(formatCells(columns, widths)))
	return b.String()
}

// BodyRowRenderer renders a plain body row. Inside a selectable table it
// leads with the row's checkbox.
type BodyRowRenderer struct {
	styles       *Styles
	provider     scope.Provider
	toggleSpacer bool
}

// NewBodyRowRenderer creates a row renderer bound to the nearest selection
// in sc
func NewBodyRowRenderer(styles *Styles, sc *scope.Scope) *BodyRowRenderer {
	return &BodyRowRenderer{
		styles:   styles,
		provider: sc.Provider(),
	}
}

// WithoutDrawer adds a blank drawer-toggle column so the row lines up with
// rows that have drawers
func (r *BodyRowRenderer) WithoutDrawer() *BodyRowRenderer {
	r.toggleSpacer = true
	return r
}

// Render renders one row
func (r *BodyRowRenderer) Render(row domain.Row, widths []int, state RowState) string {
	toggle := ""
	if r.toggleSpacer {
		toggle = strings.Repeat(" ", toggleWidth)
	}
	return r.render(r.provider.Capability(), row, widths, state, toggle)
}

func (r *BodyRowRenderer) render(c selection.Capability, row domain.Row, widths []int, state RowState, toggle string) string {
	plain := state.Focused

	var b strings.Builder
	if c.InSelection() {
		glyph, style := glyphBlank, r.styles.Dim
		if !row.NotSelectable {
			if c.IsSelected(selection.ID(row.ID)) {
				glyph, style = glyphChecked, r.styles.Checked
			} else {
				glyph, style = glyphUnchecked, lipgloss.NewStyle()
			}
		}
		b.WriteString(r.styles.leadCell(glyph, style, state.Activated, plain))
	}
	b.WriteString(toggle)
	b.WriteString(formatCells(row.Cells, widths))

	line := b.String()
	if plain {
		line = r.styles.Cursor.Render(line)
	}
	return line
}

// DrawerRowRenderer renders a row with a disclosure toggle and, while
// expanded, a drawer region spanning every column
type DrawerRowRenderer struct {
	styles   *Styles
	provider scope.Provider
	body     *BodyRowRenderer
	drawer   *disclosure.Controller
}

// NewDrawerRowRenderer creates a drawer row bound to the nearest selection
// in sc. The row owns drawer.
func NewDrawerRowRenderer(styles *Styles, sc *scope.Scope, drawer *disclosure.Controller) *DrawerRowRenderer {
	return &DrawerRowRenderer{
		styles:   styles,
		provider: sc.Provider(),
		body:     NewBodyRowRenderer(styles, sc),
		drawer:   drawer,
	}
}

// Drawer returns the row's disclosure controller
func (r *DrawerRowRenderer) Drawer() *disclosure.Controller {
	return r.drawer
}

// Label returns the toggle label for the current drawer state
func (r *DrawerRowRenderer) Label() string {
	return r.drawer.Label()
}

// ColSpan returns how many columns the drawer region spans: the toggle
// column, the data cells and the checkbox column when selectable
func (r *DrawerRowRenderer) ColSpan(cells int) int {
	span := 1 + cells
	if r.provider.Capability().InSelection() {
		span++
	}
	return span
}

// Render renders the row line followed by the drawer region when expanded
func (r *DrawerRowRenderer) Render(row domain.Row, widths []int, focused bool) []string {
	c := r.provider.Capability()
	expanded := r.drawer.Expanded()
	selectable := c.InSelection()

	chevron := chevronCollapsed
	if expanded {
		chevron = chevronExpanded
	}
	toggle := r.styles.leadCell(chevron, r.styles.Chevron, expanded && !selectable, focused)

	lines := []string{r.body.render(c, row, widths, RowState{Focused: focused, Activated: expanded}, toggle)}
	if expanded {
		lines = append(lines, r.renderDrawer(row.Drawer, spanWidth(selectable, true, widths)))
	}
	return lines
}

func (r *DrawerRowRenderer) renderDrawer(content string, width int) string {
	style := r.styles.Drawer
	if width > 1 {
		style = style.Width(width - 1)
	}
	return style.Render(content)
}

// TableOptions configures a TableRenderer
type TableOptions struct {
	WithoutSelectAll bool
	Drawers          bool
	Labels           disclosure.Labels
	OnExpand         func(rowID string)
	Bus              events.EventBus
}

// TableView is the per-frame input of TableRenderer.Render
type TableView struct {
	Columns []string
	Rows    []domain.Row // visible rows in display order
	Cursor  int          // index into Rows, -1 for none
	Offset  int          // first visible row
	Height  int          // max rows shown, <= 0 for all
	Width   int          // available width, <= 0 for natural widths
}

// TableRenderer composes header, body and drawer rows for one table. It
// owns one drawer per row that has drawer content.
type TableRenderer struct {
	styles     *Styles
	provider   scope.Provider
	header     *HeaderRenderer
	body       *BodyRowRenderer
	drawers    map[string]*DrawerRowRenderer
	hasDrawers bool
}

// NewTableRenderer creates the renderers for table under sc
func NewTableRenderer(styles *Styles, sc *scope.Scope, table *domain.Table, opts TableOptions) (*TableRenderer, error) {
	rowScope := sc.Child()
	t := &TableRenderer{
		styles:     styles,
		provider:   sc.Provider(),
		header:     NewHeaderRenderer(styles, sc),
		body:       NewBodyRowRenderer(styles, rowScope),
		drawers:    make(map[string]*DrawerRowRenderer),
		hasDrawers: opts.Drawers,
	}
	if opts.WithoutSelectAll {
		t.header.WithoutSelectAll()
	}
	if !opts.Drawers {
		return t, nil
	}

	t.header.ForDrawers()
	t.body.WithoutDrawer()
	for _, row := range table.Rows {
		if !row.HasDrawer() {
			continue
		}
		drawer, err := disclosure.NewController(row.ID, opts.Labels, opts.Bus)
		if err != nil {
			return nil, err
		}
		if opts.OnExpand != nil {
			id := row.ID
			drawer.SetOnExpand(func() { opts.OnExpand(id) })
		}
		t.drawers[row.ID] = NewDrawerRowRenderer(styles, rowScope, drawer)
	}
	return t, nil
}

// DrawerRow returns the drawer row renderer for a row id
func (t *TableRenderer) DrawerRow(id string) (*DrawerRowRenderer, bool) {
	d, ok := t.drawers[id]
	return d, ok
}

// ToggleDrawer toggles a row's drawer. It reports false when the row has
// no drawer.
func (t *TableRenderer) ToggleDrawer(id string) bool {
	d, ok := t.drawers[id]
	if !ok {
		return false
	}
	d.Drawer().Toggle()
	return true
}

// Render renders the header and the visible window of rows
func (t *TableRenderer) Render(view TableView) string {
	c := t.provider.Capability()
	selectable := c.InSelection()
	widths := columnWidths(view.Columns, view.Rows, view.Width-leadWidth(selectable, t.hasDrawers))

	empty := true
	for _, row := range view.Rows {
		if !row.NotSelectable {
			empty = false
			break
		}
	}

	lines := []string{t.header.Render(view.Columns, widths, empty)}
	if len(view.Rows) == 0 {
		lines = append(lines, t.styles.Dim.Render("No rows match."))
		return strings.Join(lines, "\n")
	}

	start, end := window(len(view.Rows), view.Offset, view.Height)
	if start > 0 {
		lines = append(lines, t.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		row := view.Rows[i]
		focused := i == view.Cursor
		if d, ok := t.drawers[row.ID]; ok {
			lines = append(lines, d.Render(row, widths, focused)...)
			continue
		}
		lines = append(lines, t.body.Render(row, widths, RowState{Focused: focused}))
	}
	if end < len(view.Rows) {
		lines = append(lines, t.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(view.Rows)-end)))
	}
	return strings.Join(lines, "\n")
}

// window clamps the visible row range
func window(total, offset, height int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if height > 0 && offset+height < total {
		end = offset + height
	}
	return offset, end
}

func leadWidth(selectable, drawers bool) int {
	w := 0
	if selectable {
		w += checkboxWidth
	}
	if drawers {
		w += toggleWidth
	}
	return w
}

func spanWidth(selectable, drawers bool, widths []int) int {
	w := leadWidth(selectable, drawers)
	for i, cw := range widths {
		if i > 0 {
			w += len(cellGap)
		}
		w += cw
	}
	return w
}

// columnWidths sizes columns to their content, shrinking the widest ones
// until the row fits in available (when positive)
func columnWidths(columns []string, rows []domain.Row, available int) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range rows {
		for i := range widths {
			if i < len(row.Cells) {
				if w := lipgloss.Width(row.Cells[i]); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	if available <= 0 || len(widths) == 0 {
		return widths
	}

	budget := available - len(cellGap)*(len(widths)-1)
	for sumWidths(widths) > budget {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minCellWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

func sumWidths(widths []int) int {
	sum := 0
	for _, w := range widths {
		sum += w
	}
	return sum
}

// formatCells pads or truncates each cell to its column width
func formatCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		parts[i] = fit(text, w)
	}
	return strings.Join(parts, cellGap)
}

func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = ansi.Truncate(text, width, "…")
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}
