package store

import "context"

// StoreService defines business logic for store management
type StoreService interface {
	Create(ctx context.Context, req CreateStoreRequest) (StoreResponse, error)
	List(ctx context.Context) ([]StoreResponse, error)
	Update(ctx context.Context, req UpdateStoreRequest) (StoreResponse, error)
	Delete(ctx context.Context, id string) error
}
