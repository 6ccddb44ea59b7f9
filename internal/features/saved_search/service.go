package saved_search

import (
	"context"
	"fmt"
)

type SavedSearchService interface {
	CreateSearch(ctx context.Context, search *SavedSearch) error
	GetSearch(ctx context.Context, id string) (*SavedSearch, error)
	ListSearches(ctx context.Context) ([]SavedSearch, error)
	UpdateSearch(ctx context.Context, search *SavedSearch) error
	DeleteSearch(ctx context.Context, id string) error
	RecordUsage(ctx context.Context, id string) error
}

type SavedSearchServiceImpl struct {
	SearchRepo SavedSearchRepository
}

func NewSavedSearchService(searchRepo SavedSearchRepository) SavedSearchService {
	return &SavedSearchServiceImpl{
		SearchRepo: searchRepo,
	}
}

func (s *SavedSearchServiceImpl) CreateSearch(ctx context.Context, search *SavedSearch) error {
	if search.Name == "" {
		return fmt.Errorf("name is required")
	}
	if search.SearchType == "" {
		search.SearchType = "advanced"
	}
	return s.SearchRepo.Create(ctx, search)
}

func (s *SavedSearchServiceImpl) GetSearch(ctx context.Context, id string) (*SavedSearch, error) {
	return s.SearchRepo.Get(ctx, id)
}

func (s *SavedSearchServiceImpl) ListSearches(ctx context.Context) ([]SavedSearch, error) {
	return s.SearchRepo.List(ctx)
}

func (s *SavedSearchServiceImpl) UpdateSearch(ctx context.Context, search *SavedSearch) error {
	if search.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.SearchRepo.Update(ctx, search)
}

func (s *SavedSearchServiceImpl) DeleteSearch(ctx context.Context, id string) error {
	return s.SearchRepo.Delete(ctx, id)
}

func (s *SavedSearchServiceImpl) RecordUsage(ctx context.Context, id string) error {
	return s.SearchRepo.RecordUsage(ctx, id)
}
