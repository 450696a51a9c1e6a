package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/helpdesk-api/internal/domain"
)

// cachedItemRepository reads status lookups through Redis. The status table
// is seed data and never mutated after initialization, so cached rows cannot
// go stale. Item rows are never cached; every other call passes through.
type cachedItemRepository struct {
	ItemRepository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedItemRepository decorates inner with a Redis-backed status cache.
func NewCachedItemRepository(inner ItemRepository, client *redis.Client, ttl time.Duration) ItemRepository {
	if client == nil {
		return inner
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &cachedItemRepository{ItemRepository: inner, client: client, ttl: ttl}
}

func (r *cachedItemRepository) GetStatusByName(ctx context.Context, name string) (*domain.ItemStatus, error) {
	key := "items_status:name:" + name
	if status, ok := r.getCached(ctx, key); ok {
		return status, nil
	}
	status, err := r.ItemRepository.GetStatusByName(ctx, name)
	if err != nil {
		return nil, err
	}
	r.setCached(ctx, key, status)
	return status, nil
}

func (r *cachedItemRepository) GetStatusByID(ctx context.Context, id int64) (*domain.ItemStatus, error) {
	key := fmt.Sprintf("items_status:id:%d", id)
	if status, ok := r.getCached(ctx, key); ok {
		return status, nil
	}
	status, err := r.ItemRepository.GetStatusByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.setCached(ctx, key, status)
	return status, nil
}

// getCached returns (nil, false) on miss, malformed payload or Redis failure;
// the caller falls back to Postgres in every one of those cases.
func (r *cachedItemRepository) getCached(ctx context.Context, key string) (*domain.ItemStatus, bool) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var status domain.ItemStatus
	if err := json.Unmarshal(payload, &status); err != nil {
		return nil, false
	}
	return &status, true
}

func (r *cachedItemRepository) setCached(ctx context.Context, key string, status *domain.ItemStatus) {
	payload, err := json.Marshal(status)
	if err != nil {
		return
	}
	_ = r.client.Set(ctx, key, payload, r.ttl).Err()
}
