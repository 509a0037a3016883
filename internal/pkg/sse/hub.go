package sse

import (
	"sync"
)

// Event is a server-sent event addressed to one employee.
type Event struct {
	EmployeeID string
	Name       string
	Data       interface{}
}

// Hub fans events out to the live streams of each employee. An employee may
// hold several streams at once (multiple tabs or devices).
type Hub struct {
	mu      sync.RWMutex
	streams map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		streams: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe opens a stream for an employee. The returned cleanup must be
// called when the client disconnects.
func (h *Hub) Subscribe(employeeID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.streams[employeeID] == nil {
		h.streams[employeeID] = make(map[chan Event]struct{})
	}
	h.streams[employeeID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.streams[employeeID], ch)
		close(ch)
		if len(h.streams[employeeID]) == 0 {
			delete(h.streams, employeeID)
		}
	}

	return ch, cleanup
}

// Publish delivers an event to every open stream of one employee. A slow
// stream is skipped rather than blocking the publisher.
func (h *Hub) Publish(employeeID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.streams[employeeID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// StreamCount returns the number of open streams for an employee.
func (h *Hub) StreamCount(employeeID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.streams[employeeID])
}
