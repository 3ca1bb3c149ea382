package store

import "context"

// StoreRepository defines data access methods for stores.
type StoreRepository interface {
	Create(ctx context.Context, s Store) (Store, error)

	// GetByName resolves a branch name to its store. Branch↔store matching is
	// by name only; a rename silently orphans employees until clock time.
	GetByName(ctx context.Context, name string) (Store, error)

	List(ctx context.Context) ([]Store, error)
	Update(ctx context.Context, req UpdateStoreRequest) error
	Delete(ctx context.Context, id string) error
}
