package repository

import (
	"context"

	"github.com/SageMyrloc/FinalProject/internal/domain"
)

// CatalogRepository reads the static reference tables. Nothing here writes.
type CatalogRepository interface {
	ActivityTypeNames(ctx context.Context) ([]string, error)
	ApplianceCategories(ctx context.Context) ([]string, error)
	FoodTypeNames(ctx context.Context) ([]string, error)
	TransportTypeNames(ctx context.Context) ([]string, error)

	// ItemsByCategory lists the items of one kind under a category name.
	// An unknown category yields an empty slice, except for transport where it
	// returns ErrCategoryUnknown.
	ItemsByCategory(ctx context.Context, kind domain.ActivityKind, category string) ([]domain.CatalogItem, error)

	// FindItem looks an item up by its exact name; ErrItemNotFound if absent.
	FindItem(ctx context.Context, kind domain.ActivityKind, name string) (*domain.CatalogItem, error)
}
