package state

import (
	"tablegrip/internal/domain"
)

// AppState contains the UI state that is not owned by a service
type AppState struct {
	// Rows currently shown, after filtering and sorting
	Rows []domain.Row

	// Status bar
	StatusMessage string
	StatusIsError bool

	// UI state
	ShowFullHelp bool // inline full help, used when the pager is unavailable

	// Exit state
	Done    bool // quit normally, selection should be reported
	Aborted bool // quit with ctrl+c, nothing is reported
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Rows: make([]domain.Row, 0),
	}
}

// RowAt returns the visible row at index
func (s *AppState) RowAt(index int) (domain.Row, bool) {
	if index < 0 || index >= len(s.Rows) {
		return domain.Row{}, false
	}
	return s.Rows[index], true
}

// IndexOf returns the position of a row among the visible rows, or -1
func (s *AppState) IndexOf(id string) int {
	for i, row := range s.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// SelectableIDs returns the ids of visible rows that have a checkbox, in
// display order
func (s *AppState) SelectableIDs() []string {
	ids := make([]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		if !row.NotSelectable {
			ids = append(ids, row.ID)
		}
	}
	return ids
}

// SetStatus shows an informational message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error message
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus removes the status message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
