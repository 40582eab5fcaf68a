package service

import (
	"context"
	"fmt"

	"unirent-backend/internal/domain"
	"unirent-backend/internal/logger"
	"unirent-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type catalogService struct {
	itemRepo repository.ItemRepository
}

func NewCatalogService(itemRepo repository.ItemRepository) CatalogService {
	return &catalogService{itemRepo: itemRepo}
}

func (s *catalogService) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	id, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid item id", domain.ErrValidation)
	}
	return s.itemRepo.GetByID(ctx, id)
}

func (s *catalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.itemRepo.List(ctx)
}

// CategoryListing fetches the category's items and groups them under
// canonical subcategory keys. Items with an unrecognized subcategory
// spelling are logged and left out of the groups.
func (s *catalogService) CategoryListing(ctx context.Context, categoryKey string) (map[string][]domain.Item, error) {
	keys, ok := domain.CategorySubcategories[categoryKey]
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, categoryKey)
	}

	items, err := s.itemRepo.ListByCategory(ctx, domain.DatabaseCategory(categoryKey))
	if err != nil {
		return nil, err
	}

	groups, unmatched := domain.GroupBySubcategory(items, keys)
	for _, raw := range unmatched {
		logger.Warn("item subcategory matched no canonical key", "category", categoryKey, "subcategory", raw)
	}
	return groups, nil
}

func (s *catalogService) FeaturedItems(ctx context.Context, count int32) ([]domain.Item, error) {
	return s.itemRepo.ListFeatured(ctx, count)
}

func (s *catalogService) SetQuantity(ctx context.Context, itemID string, quantity int32) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	id, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return fmt.Errorf("%w: invalid item id", domain.ErrValidation)
	}
	return s.itemRepo.UpdateQuantity(ctx, id, quantity)
}

func (s *catalogService) DeleteItem(ctx context.Context, itemID string) error {
	id, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return fmt.Errorf("%w: invalid item id", domain.ErrValidation)
	}
	return s.itemRepo.Delete(ctx, id)
}
