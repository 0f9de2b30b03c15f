package filter

// State holds filter state
type State struct {
	Query string
}

// FilterChangedEvent is published when the query changes
type FilterChangedEvent struct {
	Query string
}

// FilterAppliedEvent is published after rows were filtered with a new query
type FilterAppliedEvent struct {
	Query      string
	MatchCount int
	Total      int
}

// FilterClearedEvent is published when the query is cleared
type FilterClearedEvent struct{}
