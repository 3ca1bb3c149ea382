package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hadirin/attendance-backend-go/internal/domain/store"
	"github.com/hadirin/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type storeRepository struct {
	db *database.DB
}

// Create implements store.StoreRepository.
func (r *storeRepository) Create(ctx context.Context, s store.Store) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	s.ID = uuid.NewString()
	query := `
		INSERT INTO stores (id, name, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.Name, s.Latitude, s.Longitude).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return store.Store{}, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}

// GetByName implements store.StoreRepository.
func (r *storeRepository) GetByName(ctx context.Context, name string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude, created_at, updated_at
		FROM stores
		WHERE name = $1
		LIMIT 1
	`

	var s store.Store
	err := q.QueryRow(ctx, query, name).Scan(
		&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, fmt.Errorf("failed to get store by name: %w", err)
	}

	return s, nil
}

// List implements store.StoreRepository.
func (r *storeRepository) List(ctx context.Context) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, latitude, longitude, created_at, updated_at
		FROM stores
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var s store.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, s)
	}

	return stores, nil
}

// Update implements store.StoreRepository.
func (r *storeRepository) Update(ctx context.Context, req store.UpdateStoreRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stores
		SET name = $1, latitude = $2, longitude = $3, updated_at = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.Name, req.Latitude, req.Longitude, time.Now(), req.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrStoreNotFound
		}
		return fmt.Errorf("failed to update store: %w", err)
	}

	return nil
}

// Delete implements store.StoreRepository.
func (r *storeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}

	return nil
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepository{db: db}
}
