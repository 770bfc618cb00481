package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/repository"
	"github.com/SageMyrloc/FinalProject/internal/repository/mocks"
	"github.com/SageMyrloc/FinalProject/internal/service"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestHistoryService_ListUserLogs_Paginates(t *testing.T) {
	activityRepo := mocks.NewActivityRepository(t)
	svc := service.NewHistoryService(activityRepo)
	entries := []domain.LogEntry{{ID: 30, Kind: domain.KindFood, ActivityName: "Beef", CO2e: 2}}

	activityRepo.On("ListByUser", mock.Anything, uint(9), service.LogsPerPage, 20).Return(entries, nil).Once()
	activityRepo.On("CountByUser", mock.Anything, uint(9)).Return(int64(21), nil).Once()

	page, err := svc.ListUserLogs(context.Background(), 9, 3)

	require.NoError(t, err)
	assert.Equal(t, entries, page.Entries)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(21), page.Total)
	assert.True(t, page.HasPrev())
	assert.False(t, page.HasNext())
}

func TestHistoryService_ListUserLogs_EmptyHistoryHasOnePage(t *testing.T) {
	activityRepo := mocks.NewActivityRepository(t)
	svc := service.NewHistoryService(activityRepo)
	activityRepo.On("ListByUser", mock.Anything, uint(9), service.LogsPerPage, 0).Return(nil, nil).Once()
	activityRepo.On("CountByUser", mock.Anything, uint(9)).Return(int64(0), nil).Once()

	page, err := svc.ListUserLogs(context.Background(), 9, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasPrev())
	assert.False(t, page.HasNext())
}

func TestHistoryService_ListUserLogs_InvalidPage(t *testing.T) {
	svc := service.NewHistoryService(mocks.NewActivityRepository(t))

	_, err := svc.ListUserLogs(context.Background(), 9, 0)

	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestHistoryService_DeleteLog(t *testing.T) {
	activityRepo := mocks.NewActivityRepository(t)
	svc := service.NewHistoryService(activityRepo)
	activityRepo.On("DeleteForUser", mock.Anything, uint(9), uint(1)).Return(nil).Once()
	activityRepo.On("DeleteForUser", mock.Anything, uint(9), uint(2)).Return(repository.ErrLogNotFound).Once()
	activityRepo.On("DeleteForUser", mock.Anything, uint(9), uint(3)).Return(errors.New("tx aborted")).Once()
	ctx := context.Background()

	assert.NoError(t, svc.DeleteLog(ctx, 9, 1))
	assert.ErrorIs(t, svc.DeleteLog(ctx, 9, 2), service.ErrLogNotFound)
	assert.ErrorIs(t, svc.DeleteLog(ctx, 9, 3), service.ErrInternalServer)
}

func TestHistoryService_GetActivityData(t *testing.T) {
	activityRepo := mocks.NewActivityRepository(t)
	svc := service.NewHistoryService(activityRepo)
	activityRepo.On("DailyTotals", mock.Anything, uint(9), day("2024-03-01"), day("2024-03-07")).
		Return([]domain.DailyTotal{
			{Day: day("2024-03-01"), Kind: domain.KindAppliance, Total: 0.414148},
			{Day: day("2024-03-03"), Kind: domain.KindFood, Total: 13.5},
			{Day: day("2024-03-03"), Kind: domain.KindTransport, Total: 1},
		}, nil).Once()

	series, err := svc.GetActivityData(context.Background(), 9, "2024-03-01", "2024-03-07")

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01", "2024-03-03"}, series.Dates)
	assert.Equal(t, []float64{0.414148, 0}, series.Values[domain.KindAppliance])
	assert.Equal(t, []float64{0, 13.5}, series.Values[domain.KindFood])
	assert.Equal(t, []float64{0, 1}, series.Values[domain.KindTransport])
}

func TestHistoryService_GetActivityData_Validation(t *testing.T) {
	svc := service.NewHistoryService(mocks.NewActivityRepository(t))
	ctx := context.Background()

	_, err := svc.GetActivityData(ctx, 9, "", "2024-03-07")
	assert.ErrorIs(t, err, service.ErrMissingFields)

	_, err = svc.GetActivityData(ctx, 9, "2024-03-07", "2024-03-01")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.GetActivityData(ctx, 9, "03/01/2024", "2024-03-07")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestBuildActivitySeries(t *testing.T) {
	empty := service.BuildActivitySeries(nil)
	assert.NotNil(t, empty.Dates)
	assert.Empty(t, empty.Dates)
	for _, kind := range domain.Kinds {
		assert.NotNil(t, empty.Values[kind])
		assert.Empty(t, empty.Values[kind])
	}

	// input order does not matter and unknown kinds are ignored
	series := service.BuildActivitySeries([]domain.DailyTotal{
		{Day: day("2024-03-05"), Kind: domain.KindFood, Total: 2},
		{Day: day("2024-03-02"), Kind: domain.ActivityKind(99), Total: 5},
		{Day: day("2024-03-01"), Kind: domain.KindFood, Total: 1},
	})
	assert.Equal(t, []string{"2024-03-01", "2024-03-05"}, series.Dates)
	assert.Equal(t, []float64{1, 2}, series.Values[domain.KindFood])
	assert.Equal(t, []float64{0, 0}, series.Values[domain.KindAppliance])
	assert.Equal(t, []float64{0, 0}, series.Values[domain.KindTransport])
}
