package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/repository"
)

// GormCatalogRepository reads the reference tables.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	if db == nil {
		panic("database connection cannot be nil for GormCatalogRepository")
	}
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) ActivityTypeNames(ctx context.Context) ([]string, error) {
	return r.pluckNames(ctx, &domain.ActivityType{}, "name")
}

func (r *GormCatalogRepository) ApplianceCategories(ctx context.Context) ([]string, error) {
	return r.pluckNames(ctx, &domain.ApplianceType{}, "category")
}

func (r *GormCatalogRepository) FoodTypeNames(ctx context.Context) ([]string, error) {
	return r.pluckNames(ctx, &domain.FoodType{}, "name")
}

func (r *GormCatalogRepository) TransportTypeNames(ctx context.Context) ([]string, error) {
	return r.pluckNames(ctx, &domain.TransportType{}, "name")
}

func (r *GormCatalogRepository) pluckNames(ctx context.Context, model interface{}, column string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(model).Distinct(column).Order(column).Pluck(column, &names).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list %T %s: %w", model, column, err)
	}
	return names, nil
}

// ItemsByCategory lists the items of kind filed under category.
func (r *GormCatalogRepository) ItemsByCategory(ctx context.Context, kind domain.ActivityKind, category string) ([]domain.CatalogItem, error) {
	db := r.db.WithContext(ctx)
	switch kind {
	case domain.KindAppliance:
		var rows []domain.Appliance
		err := db.Joins("JOIN appliance_types ON appliance_types.id = appliances.appliance_type_id").
			Where("appliance_types.category = ?", category).
			Order("appliances.name").
			Find(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("gorm: list appliances in '%s': %w", category, err)
		}
		items := make([]domain.CatalogItem, 0, len(rows))
		for _, a := range rows {
			items = append(items, applianceItem(a))
		}
		return items, nil

	case domain.KindTransport:
		var tt domain.TransportType
		err := db.Where("LOWER(name) = LOWER(?)", category).First(&tt).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrCategoryUnknown
			}
			return nil, fmt.Errorf("gorm: find transport type '%s': %w", category, err)
		}
		var rows []domain.Transport
		if err := db.Where("transport_type_id = ?", tt.ID).Order("name").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("gorm: list transports in '%s': %w", category, err)
		}
		items := make([]domain.CatalogItem, 0, len(rows))
		for _, t := range rows {
			items = append(items, transportItem(t))
		}
		return items, nil

	case domain.KindFood:
		var rows []domain.Food
		err := db.Joins("JOIN food_types ON food_types.id = foods.food_type_id").
			Where("food_types.name = ?", category).
			Order("foods.product").
			Find(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("gorm: list foods in '%s': %w", category, err)
		}
		items := make([]domain.CatalogItem, 0, len(rows))
		for _, f := range rows {
			items = append(items, foodItem(f))
		}
		return items, nil
	}
	return nil, fmt.Errorf("gorm: unsupported activity kind %d", kind)
}

// FindItem resolves name against the table of kind.
func (r *GormCatalogRepository) FindItem(ctx context.Context, kind domain.ActivityKind, name string) (*domain.CatalogItem, error) {
	db := r.db.WithContext(ctx)
	var (
		item domain.CatalogItem
		err  error
	)
	switch kind {
	case domain.KindAppliance:
		var a domain.Appliance
		if err = db.Where("name = ?", name).First(&a).Error; err == nil {
			item = applianceItem(a)
		}
	case domain.KindTransport:
		var t domain.Transport
		if err = db.Where("name = ?", name).First(&t).Error; err == nil {
			item = transportItem(t)
		}
	case domain.KindFood:
		var f domain.Food
		if err = db.Where("product = ?", name).First(&f).Error; err == nil {
			item = foodItem(f)
		}
	default:
		return nil, fmt.Errorf("gorm: unsupported activity kind %d", kind)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}
		return nil, fmt.Errorf("gorm: find %s '%s': %w", kind, name, err)
	}
	return &item, nil
}

func applianceItem(a domain.Appliance) domain.CatalogItem {
	return domain.CatalogItem{ID: a.ID, Kind: domain.KindAppliance, Name: a.Name, Factor: a.AverageKWH}
}

func transportItem(t domain.Transport) domain.CatalogItem {
	return domain.CatalogItem{ID: t.ID, Kind: domain.KindTransport, Name: t.Name, Factor: t.CO2ePerMile, FuelType: t.FuelType}
}

func foodItem(f domain.Food) domain.CatalogItem {
	return domain.CatalogItem{ID: f.ID, Kind: domain.KindFood, Name: f.Product, Factor: f.CO2ePerKg}
}
