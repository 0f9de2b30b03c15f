package navigation

// State holds all navigation-related state
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	MaxIndex       int // -1 when there are no rows
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// CursorMovedEvent is published when the cursor row changes
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

// ViewportChangedEvent is published when the visible window scrolls
type ViewportChangedEvent struct {
	Offset int
	Height int
}
