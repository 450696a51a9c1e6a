package domain

import "time"

// Workflow status names seeded into the items_status table.
const (
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
)

// ItemStatus is a row of the fixed status lookup table.
type ItemStatus struct {
	ID     int64
	Status string
}

// Item is the aggregate for support tickets. ReportedUser is free text, not a
// reference to the users table.
type Item struct {
	ID             int64
	Name           string
	Description    *string
	TicketURL      *string
	PublicationURL *string
	ReportedUser   *string
	CreationDate   time.Time
	StatusID       int64
}
