package repository

import (
	"context"
	"time"

	"github.com/SageMyrloc/FinalProject/internal/domain"
)

// ActivityRepository persists activity logs together with their ownership rows.
type ActivityRepository interface {
	// CreateForUser inserts the log and its UserLog in one transaction and
	// fills log.ID. Either both rows exist afterwards or neither does.
	CreateForUser(ctx context.Context, userID uint, log *domain.ActivityLog) error

	// ListByUser returns one page of the user's logs, newest first.
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.LogEntry, error)

	// CountByUser returns how many logs the user owns.
	CountByUser(ctx context.Context, userID uint) (int64, error)

	// DeleteForUser removes the UserLog and then the ActivityLog in one
	// transaction. Returns ErrLogNotFound if the user does not own the log.
	DeleteForUser(ctx context.Context, userID, logID uint) error

	// DailyTotals sums CO2e per day and kind for logs whose date lies in
	// [from, to], ordered by day.
	DailyTotals(ctx context.Context, userID uint, from, to time.Time) ([]domain.DailyTotal, error)
}
