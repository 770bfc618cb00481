package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/repository"
	"github.com/SageMyrloc/FinalProject/internal/repository/mocks"
	"github.com/SageMyrloc/FinalProject/internal/service"
)

func TestCatalogService_Taxonomies_SortedAndDeduped(t *testing.T) {
	catalogRepo := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(catalogRepo)
	catalogRepo.On("ActivityTypeNames", mock.Anything).Return([]string{"Transport", "Appliance", "Food"}, nil).Once()
	catalogRepo.On("ApplianceCategories", mock.Anything).Return([]string{"Laundry", "Kitchen", "Kitchen"}, nil).Once()
	catalogRepo.On("FoodTypeNames", mock.Anything).Return(nil, nil).Once()
	catalogRepo.On("TransportTypeNames", mock.Anything).Return([]string{"Public", "Personal"}, nil).Once()

	tax, err := svc.Taxonomies(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Appliance", "Food", "Transport"}, tax.Categories)
	assert.Equal(t, []string{"Kitchen", "Laundry"}, tax.ApplianceTypes)
	assert.Equal(t, []string{}, tax.FoodTypes)
	assert.Equal(t, []string{"Personal", "Public"}, tax.TransportTypes)
}

func TestCatalogService_Taxonomies_Error(t *testing.T) {
	catalogRepo := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(catalogRepo)
	catalogRepo.On("ActivityTypeNames", mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := svc.Taxonomies(context.Background())

	assert.ErrorIs(t, err, service.ErrInternalServer)
}

func TestCatalogService_Items(t *testing.T) {
	catalogRepo := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(catalogRepo)
	ctx := context.Background()
	buses := []domain.CatalogItem{{ID: 5, Kind: domain.KindTransport, Name: "Bus", Factor: 0.15, FuelType: "Diesel"}}

	catalogRepo.On("ItemsByCategory", mock.Anything, domain.KindTransport, "PUBLIC").Return(buses, nil).Once()
	catalogRepo.On("ItemsByCategory", mock.Anything, domain.KindTransport, "teleport").Return(nil, repository.ErrCategoryUnknown).Once()
	catalogRepo.On("ItemsByCategory", mock.Anything, domain.KindAppliance, "Kitchen").Return(nil, nil).Once()

	kind, items, err := svc.Items(ctx, "transport", "PUBLIC")
	require.NoError(t, err)
	assert.Equal(t, domain.KindTransport, kind)
	assert.Equal(t, buses, items)

	_, _, err = svc.Items(ctx, "transport", "teleport")
	assert.ErrorIs(t, err, service.ErrInvalidCategory)

	_, items, err = svc.Items(ctx, "appliance", "Kitchen")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, _, err = svc.Items(ctx, "spaceship", "any")
	assert.ErrorIs(t, err, service.ErrInvalidActivity)
}
