package input

import (
	"tablegrip/internal/domain"
	"tablegrip/internal/ui/scope"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Rows   []domain.Row // visible rows in display order
	Cursor int
	Scope  *scope.Scope
	Query  string
	Count  int // number of selected rows
}

// Selectable reports whether the table has a selection
func (c *ModelContext) Selectable() bool {
	return c.Scope.Selection().InSelection()
}

// HasSelection returns true if any rows are selected
func (c *ModelContext) HasSelection() bool {
	return c.Count > 0
}

// CurrentRowID returns the id of the cursor row, or "" when there is none
func (c *ModelContext) CurrentRowID() string {
	if row, ok := c.currentRow(); ok {
		return row.ID
	}
	return ""
}

// CurrentRowSelectable reports whether the cursor row has a checkbox
func (c *ModelContext) CurrentRowSelectable() bool {
	row, ok := c.currentRow()
	return ok && !row.NotSelectable
}

// CurrentRowHasDrawer reports whether the cursor row can be expanded
func (c *ModelContext) CurrentRowHasDrawer() bool {
	row, ok := c.currentRow()
	return ok && row.HasDrawer()
}

// FilterQuery returns the active filter
func (c *ModelContext) FilterQuery() string {
	return c.Query
}

func (c *ModelContext) currentRow() (domain.Row, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Rows) {
		return domain.Row{}, false
	}
	return c.Rows[c.Cursor], true
}
