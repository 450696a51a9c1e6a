package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-api/internal/domain"
)

// ItemRepository encapsulates ticket and status-lookup persistence.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	UpdateStatus(ctx context.Context, itemID, statusID int64) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context, skip, limit int) ([]domain.Item, error)
	Delete(ctx context.Context, id int64) error
	GetStatusByName(ctx context.Context, name string) (*domain.ItemStatus, error)
	GetStatusByID(ctx context.Context, id int64) (*domain.ItemStatus, error)
	ListStatuses(ctx context.Context) ([]domain.ItemStatus, error)
}

type itemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository instantiates a Postgres-backed repository.
func NewItemRepository(pool *pgxpool.Pool) ItemRepository {
	return &itemRepository{pool: pool}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	const query = `
        INSERT INTO items (name, description, ticket_url, publication_url, reported_user, status_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, creation_date`
	return r.pool.QueryRow(ctx, query,
		item.Name,
		item.Description,
		item.TicketURL,
		item.PublicationURL,
		item.ReportedUser,
		item.StatusID,
	).Scan(&item.ID, &item.CreationDate)
}

// Update replaces the mutable fields. Status and creation_date are left
// untouched; status changes go through UpdateStatus.
func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	const query = `
        UPDATE items SET name=$1, description=$2, ticket_url=$3, publication_url=$4, reported_user=$5
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		item.Name,
		item.Description,
		item.TicketURL,
		item.PublicationURL,
		item.ReportedUser,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *itemRepository) UpdateStatus(ctx context.Context, itemID, statusID int64) error {
	const query = `UPDATE items SET status_id=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, statusID, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	const query = `
        SELECT id, name, description, ticket_url, publication_url, reported_user, creation_date, status_id
        FROM items WHERE id=$1`
	var item domain.Item
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.TicketURL,
		&item.PublicationURL,
		&item.ReportedUser,
		&item.CreationDate,
		&item.StatusID,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns items ordered by id ascending, which matches insertion order
// for bigserial keys.
func (r *itemRepository) List(ctx context.Context, skip, limit int) ([]domain.Item, error) {
	const query = `
        SELECT id, name, description, ticket_url, publication_url, reported_user, creation_date, status_id
        FROM items ORDER BY id LIMIT $1 OFFSET $2`

	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	rows, err := r.pool.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Item{}
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.TicketURL,
			&item.PublicationURL,
			&item.ReportedUser,
			&item.CreationDate,
			&item.StatusID,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *itemRepository) GetStatusByName(ctx context.Context, name string) (*domain.ItemStatus, error) {
	var status domain.ItemStatus
	if err := r.pool.QueryRow(ctx, `SELECT id, status FROM items_status WHERE status=$1`, name).
		Scan(&status.ID, &status.Status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *itemRepository) GetStatusByID(ctx context.Context, id int64) (*domain.ItemStatus, error) {
	var status domain.ItemStatus
	if err := r.pool.QueryRow(ctx, `SELECT id, status FROM items_status WHERE id=$1`, id).
		Scan(&status.ID, &status.Status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *itemRepository) ListStatuses(ctx context.Context) ([]domain.ItemStatus, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, status FROM items_status ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ItemStatus{}
	for rows.Next() {
		var status domain.ItemStatus
		if err := rows.Scan(&status.ID, &status.Status); err != nil {
			return nil, err
		}
		result = append(result, status)
	}
	return result, rows.Err()
}
