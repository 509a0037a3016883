package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesAllStreams(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("emp-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("emp-1")
	defer cleanup2()

	hub.Publish("emp-1", Event{EmployeeID: "emp-1", Name: "notification", Data: "hello"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, "notification", event.Name)
			assert.Equal(t, "hello", event.Data)
		default:
			t.Fatal("expected a buffered event")
		}
	}
}

func TestHub_PublishIsScopedToEmployee(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-2")
	defer cleanup()

	hub.Publish("emp-1", Event{EmployeeID: "emp-1", Name: "notification"})

	assert.Empty(t, ch)
}

func TestHub_CleanupClosesStream(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	require.Equal(t, 1, hub.StreamCount("emp-1"))

	cleanup()

	assert.Equal(t, 0, hub.StreamCount("emp-1"))
	_, open := <-ch
	assert.False(t, open)
}

func TestHub_SlowStreamDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	// Channel buffer is 10; extra events are dropped, not deadlocked.
	for i := 0; i < 20; i++ {
		hub.Publish("emp-1", Event{EmployeeID: "emp-1", Name: "notification", Data: i})
	}
}
