package store

import (
	"context"
	"fmt"

	"github.com/hadirin/attendance-backend-go/internal/domain/store"
)

type StoreServiceImpl struct {
	store.StoreRepository
}

func toResponse(s store.Store) store.StoreResponse {
	return store.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		CreatedAt: s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Create implements store.StoreService.
func (s *StoreServiceImpl) Create(ctx context.Context, req store.CreateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	created, err := s.StoreRepository.Create(ctx, store.Store{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return store.StoreResponse{}, fmt.Errorf("failed to create store: %w", err)
	}
	return toResponse(created), nil
}

// List implements store.StoreService.
func (s *StoreServiceImpl) List(ctx context.Context) ([]store.StoreResponse, error) {
	stores, err := s.StoreRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	responses := make([]store.StoreResponse, 0, len(stores))
	for _, st := range stores {
		responses = append(responses, toResponse(st))
	}
	return responses, nil
}

// Update implements store.StoreService.
func (s *StoreServiceImpl) Update(ctx context.Context, req store.UpdateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	if err := s.StoreRepository.Update(ctx, req); err != nil {
		return store.StoreResponse{}, err
	}

	updated, err := s.StoreRepository.GetByName(ctx, req.Name)
	if err != nil {
		return store.StoreResponse{}, fmt.Errorf("failed to reload store: %w", err)
	}
	return toResponse(updated), nil
}

// Delete implements store.StoreService.
func (s *StoreServiceImpl) Delete(ctx context.Context, id string) error {
	return s.StoreRepository.Delete(ctx, id)
}

func NewStoreService(storeRepo store.StoreRepository) store.StoreService {
	return &StoreServiceImpl{StoreRepository: storeRepo}
}
