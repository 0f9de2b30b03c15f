package events

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync"
)

type listener struct {
	id      uint64
	handler func(interface{})
}

// Bus is a synchronous event bus for UI services.
// Handlers run on the publisher's goroutine, in subscription order, before
// Publish returns.
type Bus struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[string][]listener
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]listener),
	}
}

// Subscribe registers a listener for an event type and returns a function
// that removes it again
func (b *Bus) Subscribe(eventType string, handler func(interface{})) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[eventType] = append(b.listeners[eventType], listener{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		current := b.listeners[eventType]
		for i, l := range current {
			if l.id == id {
				b.listeners[eventType] = append(current[:i:i], current[i+1:]...)
				break
			}
		}
	}
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	eventType := TypeOf(event)

	// Copy so handlers may subscribe or unsubscribe while we iterate
	b.mu.RLock()
	handlers := make([]listener, len(b.listeners[eventType]))
	copy(handlers, b.listeners[eventType])
	b.mu.RUnlock()

	for _, l := range handlers {
		b.call(eventType, l.handler, event)
	}
}

func (b *Bus) call(eventType string, handler func(interface{}), event interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
		}
	}()
	handler(event)
}

// TypeOf returns the event type key used for subscriptions.
// It is the full type name of the event value, e.g. "selection.SelectionChangedEvent".
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
