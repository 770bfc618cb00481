package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/metrics"
	"github.com/SageMyrloc/FinalProject/internal/repository"

	"github.com/sirupsen/logrus"
)

// ActivityService records emission-producing activities.
type ActivityService struct {
	catalogRepo  repository.CatalogRepository
	activityRepo repository.ActivityRepository
}

func NewActivityService(catalogRepo repository.CatalogRepository, activityRepo repository.ActivityRepository) *ActivityService {
	if catalogRepo == nil || activityRepo == nil {
		panic("CatalogRepository and ActivityRepository cannot be nil for ActivityService")
	}
	return &ActivityService{catalogRepo: catalogRepo, activityRepo: activityRepo}
}

// ApplianceUsage is an appliance run for UsageHours. Wattage overrides the
// catalog's average kWh when positive.
type ApplianceUsage struct {
	ApplianceName string
	UsageHours    float64
	Wattage       *float64
	LogTime       string
}

// Journey is a distance travelled in miles.
type Journey struct {
	TransportName string
	DistanceMiles float64
	LogTime       string
}

// FoodPortion is an amount of food in kg.
type FoodPortion struct {
	FoodName   string
	QuantityKg float64
	LogTime    string
}

// Accepted log time layouts, tried in order.
var logTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseLogTime parses the timestamp of a logged activity. The result carries
// the wall clock the user entered in UTC, which is also the zone of the
// database session, so the calendar day never shifts on the way to storage.
// A zone offset in the input is dropped.
func ParseLogTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range logTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
		}
	}
	return time.Time{}, ErrInvalidInput
}

// ApplianceCO2e is usage hours × kWh × grid factor.
func ApplianceCO2e(hours, kwh float64) float64 {
	return hours * kwh * domain.CO2PerKWh
}

// LogAppliance records appliance usage for userID.
func (s *ActivityService) LogAppliance(ctx context.Context, userID uint, in ApplianceUsage) (*domain.ActivityLog, error) {
	if in.ApplianceName == "" || in.UsageHours == 0 || in.LogTime == "" {
		return nil, ErrMissingFields
	}
	if in.Wattage != nil && !positive(*in.Wattage) {
		return nil, ErrInvalidInput
	}
	return s.record(ctx, userID, domain.KindAppliance, in.ApplianceName, in.UsageHours, in.LogTime,
		func(item *domain.CatalogItem) float64 {
			kwh := item.Factor
			if in.Wattage != nil {
				kwh = *in.Wattage
			}
			return ApplianceCO2e(in.UsageHours, kwh)
		})
}

// LogTransport records a journey for userID.
func (s *ActivityService) LogTransport(ctx context.Context, userID uint, in Journey) (*domain.ActivityLog, error) {
	if in.TransportName == "" || in.DistanceMiles == 0 || in.LogTime == "" {
		return nil, ErrMissingFields
	}
	return s.record(ctx, userID, domain.KindTransport, in.TransportName, in.DistanceMiles, in.LogTime,
		func(item *domain.CatalogItem) float64 { return in.DistanceMiles * item.Factor })
}

// LogFood records food consumption for userID.
func (s *ActivityService) LogFood(ctx context.Context, userID uint, in FoodPortion) (*domain.ActivityLog, error) {
	if in.FoodName == "" || in.QuantityKg == 0 || in.LogTime == "" {
		return nil, ErrMissingFields
	}
	return s.record(ctx, userID, domain.KindFood, in.FoodName, in.QuantityKg, in.LogTime,
		func(item *domain.CatalogItem) float64 { return in.QuantityKg * item.Factor })
}

func (s *ActivityService) record(ctx context.Context, userID uint, kind domain.ActivityKind, name string, quantity float64, rawTime string, co2e func(*domain.CatalogItem) float64) (*domain.ActivityLog, error) {
	logCtx := logrus.WithFields(logrus.Fields{"user_id": userID, "activity": kind.String(), "item": name})

	if !positive(quantity) {
		return nil, ErrInvalidInput
	}
	logTime, err := ParseLogTime(rawTime)
	if err != nil {
		return nil, err
	}

	item, err := s.catalogRepo.FindItem(ctx, kind, name)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			logCtx.Warn("Catalog item not found")
			return nil, ErrItemNotFound
		}
		logCtx.WithError(err).Error("Failed to look up catalog item")
		return nil, ErrInternalServer
	}

	value := co2e(item)
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		// a negative factor in the catalog is a data error, not a user error
		logCtx.WithField("co2e", value).Error("Computed negative or invalid CO2e")
		return nil, ErrInternalServer
	}

	entry := &domain.ActivityLog{
		ActivityItemID: item.ID,
		ActivityTypeID: kind,
		CO2e:           value,
		LogTime:        logTime,
	}
	if err := s.activityRepo.CreateForUser(ctx, userID, entry); err != nil {
		logCtx.WithError(err).Error("Failed to persist activity log")
		return nil, ErrInternalServer
	}

	metrics.RecordActivityLogged(kind.String(), value)
	logCtx.WithFields(logrus.Fields{"log_id": entry.ID, "co2e": value}).Info("Activity logged")
	return entry, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
