package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-api/internal/domain"
)

// ItemRequest payload for create and full update.
type ItemRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	TicketURL      *string `json:"ticket_url"`
	PublicationURL *string `json:"publication_url"`
	ReportedUser   *string `json:"reported_user"`
}

// ItemStatusRequest payload for the status-change operation.
type ItemStatusRequest struct {
	Status string `json:"status"`
}

// ItemResponse is the public shape of an item, status resolved to its name.
type ItemResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	TicketURL      *string   `json:"ticket_url"`
	PublicationURL *string   `json:"publication_url"`
	ReportedUser   *string   `json:"reported_user"`
	CreationDate   time.Time `json:"creation_date"`
	Status         string    `json:"status"`
}

// ItemStatusResponse is a row of the status lookup table.
type ItemStatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// NewItemResponse maps a domain item with its resolved status.
func NewItemResponse(item *domain.Item, status *domain.ItemStatus) ItemResponse {
	return ItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		TicketURL:      item.TicketURL,
		PublicationURL: item.PublicationURL,
		ReportedUser:   item.ReportedUser,
		CreationDate:   item.CreationDate,
		Status:         status.Status,
	}
}
