package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/repository"

	"github.com/sirupsen/logrus"
)

// LogsPerPage is the page size of the history listing.
const LogsPerPage = 10

const dateLayout = "2006-01-02"

// HistoryService reads, deletes and aggregates a user's activity logs.
type HistoryService struct {
	activityRepo repository.ActivityRepository
}

func NewHistoryService(activityRepo repository.ActivityRepository) *HistoryService {
	if activityRepo == nil {
		panic("ActivityRepository cannot be nil for HistoryService")
	}
	return &HistoryService{activityRepo: activityRepo}
}

// LogPage is one page of a user's history.
type LogPage struct {
	Entries    []domain.LogEntry
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

// HasPrev and HasNext drive the pager in the history template.
func (p *LogPage) HasPrev() bool { return p.Page > 1 }
func (p *LogPage) HasNext() bool { return p.Page < p.TotalPages }

// ListUserLogs returns page (1-based) of the user's logs, newest first.
func (s *HistoryService) ListUserLogs(ctx context.Context, userID uint, page int) (*LogPage, error) {
	if page < 1 {
		return nil, ErrInvalidInput
	}
	logCtx := logrus.WithFields(logrus.Fields{"user_id": userID, "page": page})

	entries, err := s.activityRepo.ListByUser(ctx, userID, LogsPerPage, (page-1)*LogsPerPage)
	if err != nil {
		logCtx.WithError(err).Error("Failed to list activity logs")
		return nil, ErrInternalServer
	}
	total, err := s.activityRepo.CountByUser(ctx, userID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to count activity logs")
		return nil, ErrInternalServer
	}

	totalPages := int((total + LogsPerPage - 1) / LogsPerPage)
	if totalPages == 0 {
		totalPages = 1
	}
	return &LogPage{
		Entries:    entries,
		Page:       page,
		PerPage:    LogsPerPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// DeleteLog removes one of the user's logs together with its ownership row.
func (s *HistoryService) DeleteLog(ctx context.Context, userID, logID uint) error {
	logCtx := logrus.WithFields(logrus.Fields{"user_id": userID, "log_id": logID})

	if err := s.activityRepo.DeleteForUser(ctx, userID, logID); err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			logCtx.Warn("Delete requested for a log the user does not own")
			return ErrLogNotFound
		}
		logCtx.WithError(err).Error("Failed to delete activity log")
		return ErrInternalServer
	}
	logCtx.Info("Activity log deleted")
	return nil
}

// ActivitySeries is chart data: one value per category for every date on
// the axis.
type ActivitySeries struct {
	Dates  []string
	Values map[domain.ActivityKind][]float64
}

// GetActivityData aggregates the user's CO2e per day and category between
// start and end (YYYY-MM-DD, inclusive).
func (s *HistoryService) GetActivityData(ctx context.Context, userID uint, start, end string) (*ActivitySeries, error) {
	if start == "" || end == "" {
		return nil, ErrMissingFields
	}
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, ErrInvalidInput
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if from.After(to) {
		return nil, ErrInvalidInput
	}

	totals, err := s.activityRepo.DailyTotals(ctx, userID, from, to)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to aggregate activity data")
		return nil, ErrInternalServer
	}
	return BuildActivitySeries(totals), nil
}

// BuildActivitySeries turns daily totals into a dense series. Only dates that
// appear in totals form the axis; a category with nothing on such a date
// gets 0 there.
func BuildActivitySeries(totals []domain.DailyTotal) *ActivitySeries {
	byDate := make(map[string]map[domain.ActivityKind]float64)
	var dates []string
	for _, t := range totals {
		if !t.Kind.Valid() {
			continue
		}
		day := t.Day.Format(dateLayout)
		if _, seen := byDate[day]; !seen {
			byDate[day] = make(map[domain.ActivityKind]float64)
			dates = append(dates, day)
		}
		byDate[day][t.Kind] += t.Total
	}
	// ISO dates sort chronologically as strings
	sort.Strings(dates)

	series := &ActivitySeries{
		Dates:  dates,
		Values: make(map[domain.ActivityKind][]float64, len(domain.Kinds)),
	}
	if series.Dates == nil {
		series.Dates = []string{}
	}
	for _, kind := range domain.Kinds {
		values := make([]float64, len(series.Dates))
		for i, day := range series.Dates {
			values[i] = byDate[day][kind]
		}
		series.Values[kind] = values
	}
	return series
}
