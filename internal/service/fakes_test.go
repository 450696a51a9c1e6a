package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-api/internal/config"
	"github.com/spec-kit/helpdesk-api/internal/domain"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			JWTAlgorithm:          "HS256",
			AccessTokenTTLMinutes: 5,
			BcryptCost:            4,
		},
	}
}

type memUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

// memItemRepo tracks writes so tests can assert that rejected inputs never
// touch the store.
type memItemRepo struct {
	items    map[int64]*domain.Item
	statuses []domain.ItemStatus
	nextID   int64
	writes   int
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{
		items: map[int64]*domain.Item{},
		statuses: []domain.ItemStatus{
			{ID: 1, Status: domain.StatusInProgress},
			{ID: 2, Status: domain.StatusResolved},
		},
	}
}

func (r *memItemRepo) Create(_ context.Context, item *domain.Item) error {
	r.writes++
	r.nextID++
	item.ID = r.nextID
	item.CreationDate = time.Now()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *memItemRepo) Update(_ context.Context, item *domain.Item) error {
	existing, ok := r.items[item.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	r.writes++
	existing.Name = item.Name
	existing.Description = item.Description
	existing.TicketURL = item.TicketURL
	existing.PublicationURL = item.PublicationURL
	existing.ReportedUser = item.ReportedUser
	return nil
}

func (r *memItemRepo) UpdateStatus(_ context.Context, itemID, statusID int64) error {
	existing, ok := r.items[itemID]
	if !ok {
		return pgx.ErrNoRows
	}
	r.writes++
	existing.StatusID = statusID
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *item
	return &copied, nil
}

func (r *memItemRepo) List(_ context.Context, skip, limit int) ([]domain.Item, error) {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	result := []domain.Item{}
	for id := int64(1); id <= r.nextID; id++ {
		item, ok := r.items[id]
		if !ok {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, *item)
	}
	return result, nil
}

func (r *memItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	r.writes++
	delete(r.items, id)
	return nil
}

func (r *memItemRepo) GetStatusByName(_ context.Context, name string) (*domain.ItemStatus, error) {
	for _, status := range r.statuses {
		if status.Status == name {
			copied := status
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memItemRepo) GetStatusByID(_ context.Context, id int64) (*domain.ItemStatus, error) {
	for _, status := range r.statuses {
		if status.ID == id {
			copied := status
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memItemRepo) ListStatuses(_ context.Context) ([]domain.ItemStatus, error) {
	return append([]domain.ItemStatus{}, r.statuses...), nil
}
