package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingEvent struct{ N int }

type pongEvent struct{}

func TestBusDeliversInOrderSynchronously(t *testing.T) {
	bus := NewBus()

	var got []int
	bus.Subscribe(TypeOf(pingEvent{}), func(e interface{}) {
		got = append(got, e.(pingEvent).N)
	})

	bus.Publish(pingEvent{N: 1})
	bus.Publish(pingEvent{N: 2})
	bus.Publish(pingEvent{N: 3})

	require.Equal(t, []int{1, 2, 3}, got)
}

func TestBusRoutesByType(t *testing.T) {
	bus := NewBus()

	pings, pongs := 0, 0
	bus.Subscribe(TypeOf(pingEvent{}), func(interface{}) { pings++ })
	bus.Subscribe(TypeOf(pongEvent{}), func(interface{}) { pongs++ })

	bus.Publish(pongEvent{})

	assert.Equal(t, 0, pings)
	assert.Equal(t, 1, pongs)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()

	var first, second int
	unsubscribe := bus.Subscribe(TypeOf(pingEvent{}), func(interface{}) { first++ })
	bus.Subscribe(TypeOf(pingEvent{}), func(interface{}) { second++ })

	bus.Publish(pingEvent{})
	unsubscribe()
	unsubscribe()
	bus.Publish(pingEvent{})

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestBusRecoversFromHandlerPanic(t *testing.T) {
	bus := NewBus()

	called := false
	bus.Subscribe(TypeOf(pingEvent{}), func(interface{}) { panic("boom") })
	bus.Subscribe(TypeOf(pingEvent{}), func(interface{}) { called = true })

	require.NotPanics(t, func() { bus.Publish(pingEvent{}) })
	assert.True(t, called, "later handlers still run")
}

func TestNullBus(t *testing.T) {
	var bus EventBus = &NullBus{}
	unsubscribe := bus.Subscribe("x", func(interface{}) { t.Fatal("should not be called") })
	bus.Publish(pingEvent{})
	unsubscribe()
}
