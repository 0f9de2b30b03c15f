package filter

import (
	"log"
	"strings"

	"tablegrip/internal/domain"
	"tablegrip/internal/ui/services/events"
)

// Service narrows the visible rows to those matching a query
type Service struct {
	state   *State
	bus     events.EventBus
	applied string // query of the last published FilterAppliedEvent
}

// NewService creates a new filter service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetQuery sets the query. An empty query clears the filter.
func (s *Service) SetQuery(query string) {
	query = strings.TrimSpace(query)
	if query == s.state.Query {
		return
	}
	if query == "" {
		s.Clear()
		return
	}

	s.state.Query = query
	s.bus.Publish(FilterChangedEvent{Query: query})
}

// Clear removes the filter
func (s *Service) Clear() {
	if s.state.Query == "" {
		return
	}
	s.state.Query = ""
	s.applied = ""
	s.bus.Publish(FilterClearedEvent{})
}

// GetQuery returns the current query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// Apply returns the rows matching the query, keeping their order.
// Without a query every row matches.
func (s *Service) Apply(rows []domain.Row) []domain.Row {
	if s.state.Query == "" {
		return rows
	}

	matched := make([]domain.Row, 0, len(rows))
	for _, row := range rows {
		if s.Matches(row) {
			matched = append(matched, row)
		}
	}

	if s.applied != s.state.Query {
		s.applied = s.state.Query
		log.Printf("Filter applied for '%s': %d of %d rows", s.state.Query, len(matched), len(rows))
		s.bus.Publish(FilterAppliedEvent{
			Query:      s.state.Query,
			MatchCount: len(matched),
			Total:      len(rows),
		})
	}
	return matched
}

// Matches checks if a row's id, cells or drawer contain the query,
// ignoring case
func (s *Service) Matches(row domain.Row) bool {
	if s.state.Query == "" {
		return true
	}
	query := strings.ToLower(s.state.Query)
	if strings.Contains(strings.ToLower(row.ID), query) {
		return true
	}
	for _, cell := range row.Cells {
		if strings.Contains(strings.ToLower(cell), query) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(row.Drawer), query)
}
