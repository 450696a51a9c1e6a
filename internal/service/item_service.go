package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-api/internal/domain"
	"github.com/spec-kit/helpdesk-api/internal/events"
	"github.com/spec-kit/helpdesk-api/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-api/pkg/util"
)

// ItemService coordinates ticket workflows.
type ItemService struct {
	items      repository.ItemRepository
	dispatcher events.Dispatcher
}

// ItemInput carries the mutable fields of an item for create and update.
type ItemInput struct {
	Name           string
	Description    *string
	TicketURL      *string
	PublicationURL *string
	ReportedUser   *string
}

// NewItemService constructs the service.
func NewItemService(items repository.ItemRepository, dispatcher events.Dispatcher) *ItemService {
	return &ItemService{items: items, dispatcher: dispatcher}
}

// Create inserts a new item. Status is always the IN_PROGRESS seed row; a
// missing seed means the database was never initialized.
func (s *ItemService) Create(ctx context.Context, actor string, input ItemInput) (*domain.Item, error) {
	status, err := s.items.GetStatusByName(ctx, domain.StatusInProgress)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConfigurationError("IN_PROGRESS status seed missing")
		}
		return nil, err
	}

	item := &domain.Item{
		Name:           strings.TrimSpace(input.Name),
		Description:    input.Description,
		TicketURL:      input.TicketURL,
		PublicationURL: input.PublicationURL,
		ReportedUser:   input.ReportedUser,
		StatusID:       status.ID,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventItemCreated,
		ItemID: item.ID,
		Actor:  actor,
		Payload: events.ItemCreatedPayload{
			Name:   item.Name,
			Status: status.Status,
		},
	})
	return item, nil
}

// Get returns a single item by id.
func (s *ItemService) Get(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("item", map[string]any{"id": id})
		}
		return nil, err
	}
	return item, nil
}

// List returns items paginated by skip/limit in id order. Pages past the end
// are empty, never an error.
func (s *ItemService) List(ctx context.Context, skip, limit int) ([]domain.Item, error) {
	return s.items.List(ctx, skip, limit)
}

// Update replaces the mutable fields of an existing item. Status and the
// creation timestamp are untouched.
func (s *ItemService) Update(ctx context.Context, id int64, input ItemInput) (*domain.Item, error) {
	item := &domain.Item{
		ID:             id,
		Name:           strings.TrimSpace(input.Name),
		Description:    input.Description,
		TicketURL:      input.TicketURL,
		PublicationURL: input.PublicationURL,
		ReportedUser:   input.ReportedUser,
	}
	if err := s.items.Update(ctx, item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("item", map[string]any{"id": id})
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// UpdateStatus moves an item to another workflow status. Only the two seeded
// statuses are accepted; the store is not touched for any other value.
func (s *ItemService) UpdateStatus(ctx context.Context, actor string, id int64, statusName string) (*domain.Item, error) {
	if statusName != domain.StatusInProgress && statusName != domain.StatusResolved {
		return nil, apperrors.NewValidationError("invalid status, must be 'IN_PROGRESS' or 'RESOLVED'",
			map[string]any{"status": statusName})
	}

	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus, err := s.items.GetStatusByID(ctx, item.StatusID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("status", map[string]any{"id": item.StatusID})
		}
		return nil, err
	}

	newStatus, err := s.items.GetStatusByName(ctx, statusName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("status", map[string]any{"status": statusName})
		}
		return nil, err
	}

	if err := s.items.UpdateStatus(ctx, id, newStatus.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("item", map[string]any{"id": id})
		}
		return nil, err
	}
	item.StatusID = newStatus.ID

	s.publishEvent(ctx, events.Event{
		Type:   events.EventItemStatusChanged,
		ItemID: id,
		Actor:  actor,
		Payload: events.ItemStatusChangedPayload{
			OldStatus: oldStatus.Status,
			NewStatus: newStatus.Status,
		},
	})
	return item, nil
}

// Delete removes an item permanently.
func (s *ItemService) Delete(ctx context.Context, actor string, id int64) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("item", map[string]any{"id": id})
		}
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventItemDeleted,
		ItemID:  id,
		Actor:   actor,
		Payload: events.ItemDeletedPayload{Name: item.Name},
	})
	return nil
}

// Status resolves the status row an item currently points at.
func (s *ItemService) Status(ctx context.Context, item *domain.Item) (*domain.ItemStatus, error) {
	status, err := s.items.GetStatusByID(ctx, item.StatusID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConfigurationError("item references unknown status")
		}
		return nil, err
	}
	return status, nil
}

// ListStatuses returns the full status lookup table.
func (s *ItemService) ListStatuses(ctx context.Context) ([]domain.ItemStatus, error) {
	return s.items.ListStatuses(ctx)
}

func (s *ItemService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
