package domain

// Row represents one body row of a table
type Row struct {
	ID            string
	Cells         []string
	Drawer        string // secondary content shown when the row's drawer is open
	NotSelectable bool   // row renders without a checkbox and is never in the selection universe
}

// HasDrawer reports whether the row has drawer content
func (r Row) HasDrawer() bool {
	return r.Drawer != ""
}

// Table represents a captioned table
type Table struct {
	Caption string
	Columns []string
	Rows    []Row
}

// SelectableIDs returns the ids of selectable rows in table order
func (t *Table) SelectableIDs() []string {
	ids := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if !row.NotSelectable {
			ids = append(ids, row.ID)
		}
	}
	return ids
}

// HasDrawers reports whether any row has drawer content
func (t *Table) HasDrawers() bool {
	for _, row := range t.Rows {
		if row.HasDrawer() {
			return true
		}
	}
	return false
}
