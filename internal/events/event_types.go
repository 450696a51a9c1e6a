package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventItemCreated       EventType = "item_created"
	EventItemStatusChanged EventType = "item_status_changed"
	EventItemDeleted       EventType = "item_deleted"
)

// Event represents a domain event emitted by services. Actor is the email of
// the authenticated caller that triggered the change.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ItemID    int64       `json:"item_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ItemCreatedPayload payload.
type ItemCreatedPayload struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ItemStatusChangedPayload payload.
type ItemStatusChangedPayload struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// ItemDeletedPayload payload.
type ItemDeletedPayload struct {
	Name string `json:"name"`
}
