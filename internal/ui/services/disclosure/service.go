package disclosure

import (
	"errors"
	"fmt"

	"tablegrip/internal/ui/services/events"
)

// ErrMissingLabel is returned when a drawer is created without both labels
var ErrMissingLabel = errors.New("disclosure: collapsed and expanded labels are required")

// Controller owns the drawer state of a single row. It is never shared
// between rows.
type Controller struct {
	row      string
	state    State
	labels   Labels
	bus      events.EventBus
	onExpand func()
}

// NewController creates a collapsed drawer for a row
func NewController(row string, labels Labels, bus events.EventBus) (*Controller, error) {
	if labels.Collapsed == "" || labels.Expanded == "" {
		return nil, fmt.Errorf("row %q: %w", row, ErrMissingLabel)
	}
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Controller{
		row:    row,
		state:  Collapsed,
		labels: labels,
		bus:    bus,
	}, nil
}

// SetOnExpand sets the function called each time the drawer opens
func (c *Controller) SetOnExpand(fn func()) {
	c.onExpand = fn
}

// Toggle opens a collapsed drawer and closes an expanded one. The expand
// callback runs before the state flips and only when opening.
func (c *Controller) Toggle() {
	if c.state == Collapsed {
		if c.onExpand != nil {
			c.onExpand()
		}
		c.state = Expanded
		c.bus.Publish(DrawerExpandedEvent{Row: c.row})
		return
	}
	c.state = Collapsed
	c.bus.Publish(DrawerCollapsedEvent{Row: c.row})
}

// Expanded reports whether the drawer is open
func (c *Controller) Expanded() bool {
	return c.state == Expanded
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Label returns the label matching the current state
func (c *Controller) Label() string {
	if c.state == Expanded {
		return c.labels.Expanded
	}
	return c.labels.Collapsed
}

// Row returns the row this drawer belongs to
func (c *Controller) Row() string {
	return c.row
}
