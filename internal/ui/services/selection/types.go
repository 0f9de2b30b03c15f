package selection

import "sort"

// ID names a selectable row. It only has to be unique within the current
// universe.
type ID string

// Selection maps selected identifiers to true. Unselected identifiers are
// absent, never false.
type Selection map[ID]bool

// Clone returns an independent copy
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for id := range s {
		out[id] = true
	}
	return out
}

// IDs returns the selected identifiers in sorted order
func (s Selection) IDs() []ID {
	ids := make([]ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// State holds selection state
type State struct {
	Universe []ID            // ordered, deduplicated
	Members  map[ID]struct{} // universe lookup
	Selected Selection
	Version  uint64 // bumped on every change observable through a Capability
}

// Cause says which operation produced a selection change
type Cause int

const (
	CauseToggle Cause = iota
	CauseToggleAll
	CauseDeselectAll
	CauseReconcile
)

func (c Cause) String() string {
	switch c {
	case CauseToggle:
		return "toggle"
	case CauseToggleAll:
		return "toggle_all"
	case CauseDeselectAll:
		return "deselect_all"
	case CauseReconcile:
		return "reconcile"
	default:
		return "unknown"
	}
}

// Event types
type SelectionChangedEvent struct {
	Selection Selection // copy, safe to keep
	Cause     Cause
	Version   uint64
	Total     int
}

type UniverseChangedEvent struct {
	Added   []ID
	Removed []ID
	Total   int
	Version uint64
}
