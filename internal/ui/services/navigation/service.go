package navigation

import (
	"tablegrip/internal/ui/services/events"
)

// chromeLines is the number of terminal lines taken by everything but the
// table body: padding, title, header, status and help
const chromeLines = 9

// Service moves the cursor over the visible rows and keeps it inside the
// viewport
type Service struct {
	state   *State
	bus     events.EventBus
	countFn func() int // number of visible rows
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			ViewportHeight: 20, // updated on the first window size message
			MaxIndex:       -1,
		},
		bus: bus,
	}
}

// SetCountFunction sets the function returning the number of visible rows
func (s *Service) SetCountFunction(fn func() int) {
	s.countFn = fn
	s.refresh()
}

// GetCursor returns current cursor position, -1 when there are no rows
func (s *Service) GetCursor() int {
	if s.state.MaxIndex < 0 {
		return -1
	}
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates the viewport from the terminal height
func (s *Service) SetViewportHeight(height int) {
	effectiveHeight := height - chromeLines
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	s.state.ViewportHeight = effectiveHeight
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	s.refresh()
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.moveTo(s.state.Cursor - 1)
	case DirectionDown:
		s.moveTo(s.state.Cursor + 1)
	case DirectionPageUp:
		s.moveTo(s.state.Cursor - s.pageSize())
	case DirectionPageDown:
		s.moveTo(s.state.Cursor + s.pageSize())
	case DirectionHome:
		s.moveTo(0)
	case DirectionEnd:
		s.moveTo(s.state.MaxIndex)
	}

	s.publishMove(oldCursor)
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.refresh()
	oldCursor := s.state.Cursor
	s.moveTo(index)
	s.publishMove(oldCursor)
}

// Clamp pulls the cursor back inside the rows after the row count changed
func (s *Service) Clamp() {
	s.MoveToIndex(s.state.Cursor)
}

func (s *Service) refresh() {
	if s.countFn != nil {
		s.state.MaxIndex = s.countFn() - 1
	}
}

func (s *Service) pageSize() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func (s *Service) moveTo(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

func (s *Service) publishMove(oldCursor int) {
	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

func (s *Service) clampIndex(index int) int {
	if index > s.state.MaxIndex {
		index = s.state.MaxIndex
	}
	if index < 0 {
		return 0
	}
	return index
}

func (s *Service) ensureVisible() {
	offset := s.state.ViewportOffset
	switch {
	case s.state.Cursor < offset:
		offset = s.state.Cursor
	case s.state.Cursor >= offset+s.state.ViewportHeight:
		offset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	if maxOffset := s.state.MaxIndex + 1 - s.state.ViewportHeight; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if offset != s.state.ViewportOffset {
		s.state.ViewportOffset = offset
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	}
}
