package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_PublishDeliversInOrder(t *testing.T) {
	hub := NewHub()

	var got []string
	hub.Subscribe(func(ev Event) { got = append(got, "a:"+ev.Type) })
	hub.Subscribe(func(ev Event) { got = append(got, "b:"+ev.Type) })

	hub.Publish(Event{Topic: TopicProjects, Type: TypeProjectCreated})

	assert.Equal(t, []string{"a:project.created", "b:project.created"}, got)
}

func TestHub_PublishStampsTime(t *testing.T) {
	hub := NewHub()

	var got Event
	hub.Subscribe(func(ev Event) { got = ev })
	hub.Publish(Event{Type: TypeLogin})

	assert.False(t, got.At.IsZero())
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub()

	calls := 0
	cancel := hub.Subscribe(func(Event) { calls++ })
	assert.Equal(t, 1, hub.Len())

	hub.Publish(Event{Type: TypeLogin})
	cancel()
	cancel()
	hub.Publish(Event{Type: TypeLogout})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, hub.Len())
}

func TestHub_UnsubscribeInsideCallback(t *testing.T) {
	hub := NewHub()

	calls := 0
	var cancel func()
	cancel = hub.Subscribe(func(Event) {
		calls++
		cancel()
	})

	hub.Publish(Event{Type: TypeLogin})
	hub.Publish(Event{Type: TypeLogin})

	assert.Equal(t, 1, calls)
}

func TestHub_NilPublishIsNoop(t *testing.T) {
	var hub *Hub
	assert.NotPanics(t, func() { hub.Publish(Event{Type: TypeLogin}) })
}
