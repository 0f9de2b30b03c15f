package sorting

import (
	"sort"
	"strings"

	"tablegrip/internal/domain"
	"tablegrip/internal/ui/services/events"
)

// Service orders rows by one column. Sorting only reorders rows; it never
// adds or removes any.
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a sorting service for a table with the given number of
// columns. Rows start in table order.
func NewService(columns int, bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Column:  Unsorted,
			Columns: columns,
		},
		bus: bus,
	}
}

// GetColumn returns the current sort column, or Unsorted
func (s *Service) GetColumn() int {
	return s.state.Column
}

// SetColumn sets the sort column. Out of range values mean Unsorted.
func (s *Service) SetColumn(column int) {
	if column < 0 || column >= s.state.Columns {
		column = Unsorted
	}
	if column == s.state.Column {
		return
	}

	oldColumn := s.state.Column
	s.state.Column = column

	s.bus.Publish(SortChangedEvent{
		OldColumn: oldColumn,
		NewColumn: column,
	})
}

// NextColumn cycles through table order and then each column in turn
func (s *Service) NextColumn() {
	next := s.state.Column + 1
	if next >= s.state.Columns {
		next = Unsorted
	}
	s.SetColumn(next)
}

// Sort returns the rows ordered by the current column, ignoring case.
// Equal cells keep table order. The input slice is not modified.
func (s *Service) Sort(rows []domain.Row) []domain.Row {
	sorted := make([]domain.Row, len(rows))
	copy(sorted, rows)
	if s.state.Column == Unsorted {
		return sorted
	}

	col := s.state.Column
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(cellAt(sorted[i], col)) < strings.ToLower(cellAt(sorted[j], col))
	})
	return sorted
}

// GetModeString returns a label for the current sort, given column names
func (s *Service) GetModeString(columns []string) string {
	if s.state.Column == Unsorted || s.state.Column >= len(columns) {
		return "table order"
	}
	return columns[s.state.Column]
}

func cellAt(row domain.Row, col int) string {
	if col < len(row.Cells) {
		return row.Cells[col]
	}
	return ""
}
