package disclosure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablegrip/internal/ui/services/events"
)

var testLabels = Labels{Collapsed: "show the thing", Expanded: "hide the thing"}

func TestNewControllerStartsCollapsed(t *testing.T) {
	c, err := NewController("row-1", testLabels, nil)
	require.NoError(t, err)

	assert.Equal(t, Collapsed, c.State())
	assert.False(t, c.Expanded())
	assert.Equal(t, "show the thing", c.Label())
	assert.Equal(t, "row-1", c.Row())
}

func TestNewControllerRequiresLabels(t *testing.T) {
	for _, labels := range []Labels{
		{},
		{Collapsed: "show"},
		{Expanded: "hide"},
	} {
		_, err := NewController("row", labels, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingLabel))
	}
}

func TestToggleFlipsStateAndLabel(t *testing.T) {
	c, err := NewController("row", testLabels, nil)
	require.NoError(t, err)

	c.Toggle()
	assert.True(t, c.Expanded())
	assert.Equal(t, "hide the thing", c.Label())
	assert.Equal(t, "expanded", c.State().String())

	c.Toggle()
	assert.False(t, c.Expanded())
	assert.Equal(t, "show the thing", c.Label())
}

func TestOnExpandTiming(t *testing.T) {
	c, err := NewController("row", testLabels, nil)
	require.NoError(t, err)

	calls := 0
	c.SetOnExpand(func() { calls++ })
	assert.Equal(t, 0, calls, "not called on creation")

	c.Toggle()
	assert.Equal(t, 1, calls)

	c.Toggle()
	assert.Equal(t, 1, calls, "not called on collapse")

	c.Toggle()
	assert.Equal(t, 2, calls)
}

func TestOnExpandRunsBeforeStateFlips(t *testing.T) {
	c, err := NewController("row", testLabels, nil)
	require.NoError(t, err)

	var expandedDuringCallback bool
	c.SetOnExpand(func() { expandedDuringCallback = c.Expanded() })
	c.Toggle()

	assert.False(t, expandedDuringCallback)
	assert.True(t, c.Expanded())
}

func TestControllersAreIndependent(t *testing.T) {
	a, err := NewController("a", testLabels, nil)
	require.NoError(t, err)
	b, err := NewController("b", testLabels, nil)
	require.NoError(t, err)

	a.Toggle()

	assert.True(t, a.Expanded())
	assert.False(t, b.Expanded())
}

func TestTogglePublishesEvents(t *testing.T) {
	bus := events.NewBus()
	var got []interface{}
	bus.Subscribe(events.TypeOf(DrawerExpandedEvent{}), func(e interface{}) { got = append(got, e) })
	bus.Subscribe(events.TypeOf(DrawerCollapsedEvent{}), func(e interface{}) { got = append(got, e) })

	c, err := NewController("row-7", testLabels, bus)
	require.NoError(t, err)
	c.Toggle()
	c.Toggle()

	assert.Equal(t, []interface{}{
		DrawerExpandedEvent{Row: "row-7"},
		DrawerCollapsedEvent{Row: "row-7"},
	}, got)
}
