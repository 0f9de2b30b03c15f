package sorting

// Unsorted keeps rows in table order
const Unsorted = -1

// State holds sorting state
type State struct {
	Column  int // column index, or Unsorted
	Columns int // number of columns available
}

// SortChangedEvent is published when the sort column changes
type SortChangedEvent struct {
	OldColumn int
	NewColumn int
}
