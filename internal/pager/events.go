package pager

import "time"

// Event names published by the Pager.
const (
	EventBind       = "bind"
	EventUnbind     = "unbind"
	EventPageChange = "page_change"
)

// Event represents a pagination lifecycle event.
type Event struct {
	ID         string
	Name       string
	InstanceID string
	Time       time.Time
	Fields     map[string]any
}

// EventPublisher receives events from the Pager. Implementations should be
// lightweight and non-blocking; Publish is called with the Pager's lock held.
type EventPublisher interface {
	Publish(Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
