package model

import (
	"encoding/json"
	"time"
)

// EventKind is the lifecycle transition recorded by an Event.
type EventKind string

const (
	EventPlace   EventKind = "place"
	EventMove    EventKind = "move"
	EventPickup  EventKind = "pickup"
	EventDiscard EventKind = "discard"
)

// Terminal reports whether no further events may follow this kind for the
// same order.
func (k EventKind) Terminal() bool {
	return k == EventPickup || k == EventDiscard
}

// Event is an immutable lifecycle record.
type Event struct {
	Timestamp time.Time
	OrderID   string
	Kind      EventKind
	// Target is the pool the event concerns: destination for place and move,
	// source for pickup and discard. Empty when unknown.
	Target PoolKind
}

type eventJSON struct {
	Timestamp int64     `json:"timestamp"` // microseconds
	ID        string    `json:"id"`
	Action    EventKind `json:"action"`
	Target    PoolKind  `json:"target,omitempty"`
}

// MarshalJSON encodes the event with a unix microsecond timestamp.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		Timestamp: e.Timestamp.UnixMicro(),
		ID:        e.OrderID,
		Action:    e.Kind,
		Target:    e.Target,
	})
}

// UnmarshalJSON decodes the microsecond form produced by MarshalJSON.
func (e *Event) UnmarshalJSON(b []byte) error {
	var raw eventJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = Event{
		Timestamp: time.UnixMicro(raw.Timestamp),
		OrderID:   raw.ID,
		Kind:      raw.Action,
		Target:    raw.Target,
	}
	return nil
}
