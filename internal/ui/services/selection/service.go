package selection

import (
	"log"

	"tablegrip/internal/ui/services/events"
)

// Service tracks which identifiers of a changing universe are selected.
// It is not safe for concurrent use; all calls are expected from the UI
// update loop.
type Service struct {
	state    *State
	bus      events.EventBus
	onChange func(Selection)
	current  *snapshot
}

// NewService creates a selection service over the given universe.
// onChange is called synchronously with a copy of the selection after
// every change.
func NewService(identifiers []ID, onChange func(Selection), bus events.EventBus) *Service {
	if onChange == nil {
		log.Printf("selection: no change callback supplied, changes will only be published")
		onChange = func(Selection) {}
	}
	if bus == nil {
		bus = &events.NullBus{}
	}

	universe := uniqueIDs(identifiers)
	s := &Service{
		state: &State{
			Universe: universe,
			Members:  membersOf(universe),
			Selected: make(Selection),
		},
		bus:      bus,
		onChange: onChange,
	}
	s.current = &snapshot{svc: s, version: s.state.Version}
	return s
}

// IsSelected checks if an identifier is selected
func (s *Service) IsSelected(id ID) bool {
	return s.state.Selected[id]
}

// AllSelected reports whether the selection is as large as the universe.
// An empty universe counts as fully selected.
func (s *Service) AllSelected() bool {
	return len(s.state.Selected) == len(s.state.Universe)
}

// SomeSelected reports a partial selection
func (s *Service) SomeSelected() bool {
	return len(s.state.Selected) > 0 && !s.AllSelected()
}

// Toggle flips the selection of one identifier. The identifier is not
// checked against the universe.
func (s *Service) Toggle(id ID) {
	if s.state.Selected[id] {
		delete(s.state.Selected, id)
	} else {
		s.state.Selected[id] = true
	}
	s.changed(CauseToggle)
}

// ToggleAll selects the whole universe when nothing is selected and clears
// the selection otherwise, including when it is only partial.
func (s *Service) ToggleAll() {
	next := make(Selection)
	if len(s.state.Selected) == 0 {
		for _, id := range s.state.Universe {
			next[id] = true
		}
	}
	s.state.Selected = next
	s.changed(CauseToggleAll)
}

// DeselectAll clears all selections
func (s *Service) DeselectAll() {
	s.state.Selected = make(Selection)
	s.changed(CauseDeselectAll)
}

// SetUniverse replaces the set of selectable identifiers. Selected
// identifiers missing from the new universe are dropped and, if any were,
// the change callback fires once. New identifiers start unselected.
func (s *Service) SetUniverse(identifiers []ID) {
	universe := uniqueIDs(identifiers)
	if sameOrder(universe, s.state.Universe) {
		return
	}

	members := membersOf(universe)
	var added, removed []ID
	for _, id := range universe {
		if _, ok := s.state.Members[id]; !ok {
			added = append(added, id)
		}
	}
	for _, id := range s.state.Universe {
		if _, ok := members[id]; !ok {
			removed = append(removed, id)
		}
	}

	s.state.Universe = universe
	s.state.Members = members

	var dropped []ID
	for id := range s.state.Selected {
		if _, ok := members[id]; !ok {
			dropped = append(dropped, id)
		}
	}

	s.bump()
	s.bus.Publish(UniverseChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(universe),
		Version: s.state.Version,
	})

	if len(dropped) == 0 {
		return
	}
	for _, id := range dropped {
		delete(s.state.Selected, id)
	}
	log.Printf("selection: dropped %d identifiers no longer in the universe", len(dropped))
	s.changed(CauseReconcile)
}

// Selection returns a copy of the current selection
func (s *Service) Selection() Selection {
	return s.state.Selected.Clone()
}

// Selected returns the selected identifiers in universe order. Selected
// identifiers outside the universe come last, sorted.
func (s *Service) Selected() []ID {
	out := make([]ID, 0, len(s.state.Selected))
	for _, id := range s.state.Universe {
		if s.state.Selected[id] {
			out = append(out, id)
		}
	}
	if len(out) == len(s.state.Selected) {
		return out
	}
	for _, id := range s.state.Selected.IDs() {
		if _, ok := s.state.Members[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// Universe returns a copy of the current universe
func (s *Service) Universe() []ID {
	return append([]ID(nil), s.state.Universe...)
}

// Count returns the number of selected identifiers
func (s *Service) Count() int {
	return len(s.state.Selected)
}

// Version increases on every change that affects what a Capability reports
func (s *Service) Version() uint64 {
	return s.state.Version
}

// Capability returns the current capability snapshot. The same value is
// returned until the next change, after which a new one is handed out.
func (s *Service) Capability() Capability {
	return s.current
}

func (s *Service) bump() {
	s.state.Version++
	s.current = &snapshot{svc: s, version: s.state.Version}
}

func (s *Service) changed(cause Cause) {
	s.bump()
	s.onChange(s.state.Selected.Clone())
	s.bus.Publish(SelectionChangedEvent{
		Selection: s.state.Selected.Clone(),
		Cause:     cause,
		Version:   s.state.Version,
		Total:     len(s.state.Selected),
	})
}

func uniqueIDs(ids []ID) []ID {
	seen := make(map[ID]struct{}, len(ids))
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) != len(ids) {
		log.Printf("selection: ignored %d duplicate identifiers", len(ids)-len(out))
	}
	return out
}

func membersOf(ids []ID) map[ID]struct{} {
	m := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func sameOrder(a, b []ID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
