package service

import (
	"context"
	"errors"
	"sort"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/repository"

	"github.com/sirupsen/logrus"
)

// CatalogService serves the read-only reference data used to build the
// selection UI.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	if catalogRepo == nil {
		panic("CatalogRepository cannot be nil for CatalogService")
	}
	return &CatalogService{catalogRepo: catalogRepo}
}

// Taxonomies groups every list the add-item page needs.
type Taxonomies struct {
	Categories     []string
	ApplianceTypes []string
	FoodTypes      []string
	TransportTypes []string
}

func (s *CatalogService) ActivityTypes(ctx context.Context) ([]string, error) {
	return s.sorted(ctx, "activity types", s.catalogRepo.ActivityTypeNames)
}

func (s *CatalogService) ApplianceCategories(ctx context.Context) ([]string, error) {
	return s.sorted(ctx, "appliance categories", s.catalogRepo.ApplianceCategories)
}

func (s *CatalogService) FoodTypes(ctx context.Context) ([]string, error) {
	return s.sorted(ctx, "food types", s.catalogRepo.FoodTypeNames)
}

func (s *CatalogService) TransportTypes(ctx context.Context) ([]string, error) {
	return s.sorted(ctx, "transport types", s.catalogRepo.TransportTypeNames)
}

// Taxonomies loads the four listings in one go.
func (s *CatalogService) Taxonomies(ctx context.Context) (*Taxonomies, error) {
	var (
		t   Taxonomies
		err error
	)
	if t.Categories, err = s.ActivityTypes(ctx); err != nil {
		return nil, err
	}
	if t.ApplianceTypes, err = s.ApplianceCategories(ctx); err != nil {
		return nil, err
	}
	if t.FoodTypes, err = s.FoodTypes(ctx); err != nil {
		return nil, err
	}
	if t.TransportTypes, err = s.TransportTypes(ctx); err != nil {
		return nil, err
	}
	return &t, nil
}

// Items lists the catalog items of an activity ("appliance", "transport",
// "food") under category.
func (s *CatalogService) Items(ctx context.Context, activity, category string) (domain.ActivityKind, []domain.CatalogItem, error) {
	kind, ok := domain.ParseActivityKind(activity)
	if !ok {
		return 0, nil, ErrInvalidActivity
	}
	logCtx := logrus.WithFields(logrus.Fields{"activity": kind.String(), "category": category})

	items, err := s.catalogRepo.ItemsByCategory(ctx, kind, category)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryUnknown) {
			logCtx.Warn("Unknown catalog category requested")
			return kind, nil, ErrInvalidCategory
		}
		logCtx.WithError(err).Error("Failed to list catalog items")
		return kind, nil, ErrInternalServer
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}
	return kind, items, nil
}

func (s *CatalogService) sorted(ctx context.Context, what string, list func(context.Context) ([]string, error)) ([]string, error) {
	names, err := list(ctx)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to load %s", what)
		return nil, ErrInternalServer
	}
	if len(names) == 0 {
		return []string{}, nil
	}
	sort.Strings(names)
	return dedupe(names), nil
}

// dedupe drops adjacent duplicates from a sorted slice.
func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}
