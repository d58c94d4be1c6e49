// Package events is the subscribe/notify mechanism the stores publish to.
//
// Delivery is synchronous: Publish calls every subscriber in subscription
// order on the publishing goroutine before it returns.
package events

import (
	"sync"
	"time"
)

const (
	TopicSession  = "session"
	TopicProjects = "projects"
)

const (
	TypeLogin          = "session.login"
	TypeLogout         = "session.logout"
	TypeProjectCreated = "project.created"
	TypeProjectUpdated = "project.updated"
	TypeCreatorsAdded  = "project.creators_added"
)

// Event describes one successful store mutation.
type Event struct {
	Topic   string      `json:"topic"`
	Type    string      `json:"type"`
	Subject string      `json:"subject,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
	At      time.Time   `json:"at"`
}

// Hub fans events out to subscribers.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(Event)
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (h *Hub) Subscribe(fn func(Event)) func() {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, fn: fn})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.unsubscribe(id) })
	}
}

func (h *Hub) unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return
		}
	}
}

// Publish stamps ev if needed and delivers it to every current subscriber.
// A nil Hub drops the event.
func (h *Hub) Publish(ev Event) {
	if h == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	// snapshot so subscribers may unsubscribe from inside their callback
	h.mu.RLock()
	subs := make([]subscription, len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()

	for _, s := range subs {
		s.fn(ev)
	}
}

// Len reports the number of active subscribers.
func (h *Hub) Len() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
