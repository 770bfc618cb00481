package gormpersistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/repository"
)

// GormActivityRepository is the GORM implementation of ActivityRepository.
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a GormActivityRepository.
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	if db == nil {
		panic("database connection cannot be nil for GormActivityRepository")
	}
	return &GormActivityRepository{db: db}
}

// CreateForUser inserts the log and then its ownership row in one transaction.
func (r *GormActivityRepository) CreateForUser(ctx context.Context, userID uint, log *domain.ActivityLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(log).Error; err != nil {
			return fmt.Errorf("gorm: insert activity log: %w", err)
		}
		link := &domain.UserLog{UserID: userID, ActivityLogID: log.ID}
		if err := tx.Create(link).Error; err != nil {
			return fmt.Errorf("gorm: insert user log for activity log %d: %w", log.ID, err)
		}
		return nil
	})
}

// The item name is resolved per kind, so each LEFT JOIN only matches rows of
// its own table.
const listByUserSQL = `
SELECT al.id AS id,
       al.activity_type_id AS kind,
       CASE al.activity_type_id
           WHEN ? THEN a.name
           WHEN ? THEN t.name
           WHEN ? THEN f.product
       END AS activity_name,
       al.co2e AS co2e,
       al.log_time AS log_time
FROM activity_logs al
JOIN user_logs ul ON ul.activity_log_id = al.id
LEFT JOIN appliances a ON al.activity_type_id = ? AND a.id = al.activity_item_id
LEFT JOIN transports t ON al.activity_type_id = ? AND t.id = al.activity_item_id
LEFT JOIN foods f ON al.activity_type_id = ? AND f.id = al.activity_item_id
WHERE ul.user_id = ?
ORDER BY al.log_time DESC, al.id DESC
LIMIT ? OFFSET ?`

type logEntryRow struct {
	ID           uint
	Kind         uint
	ActivityName *string
	CO2e         float64 `gorm:"column:co2e"`
	LogTime      time.Time
}

// ListByUser returns one page of the user's logs, newest first.
func (r *GormActivityRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.LogEntry, error) {
	var rows []logEntryRow
	err := r.db.WithContext(ctx).Raw(listByUserSQL,
		uint(domain.KindAppliance), uint(domain.KindTransport), uint(domain.KindFood),
		uint(domain.KindAppliance), uint(domain.KindTransport), uint(domain.KindFood),
		userID, limit, offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list activity logs for user %d: %w", userID, err)
	}

	entries := make([]domain.LogEntry, 0, len(rows))
	for _, row := range rows {
		entry := domain.LogEntry{
			ID:      row.ID,
			Kind:    domain.ActivityKind(row.Kind),
			CO2e:    row.CO2e,
			LogTime: row.LogTime,
		}
		if row.ActivityName != nil {
			entry.ActivityName = *row.ActivityName
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CountByUser counts the ownership rows of the user.
func (r *GormActivityRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.UserLog{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count activity logs for user %d: %w", userID, err)
	}
	return count, nil
}

// DeleteForUser deletes the ownership row first, then the log it pointed at.
func (r *GormActivityRepository) DeleteForUser(ctx context.Context, userID, logID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("activity_log_id = ? AND user_id = ?", logID, userID).Delete(&domain.UserLog{})
		if res.Error != nil {
			return fmt.Errorf("gorm: delete user log for activity log %d: %w", logID, res.Error)
		}
		if res.RowsAffected == 0 {
			return repository.ErrLogNotFound
		}
		if err := tx.Where("id = ?", logID).Delete(&domain.ActivityLog{}).Error; err != nil {
			return fmt.Errorf("gorm: delete activity log %d: %w", logID, err)
		}
		return nil
	})
}

const dailyTotalsSQL = `
SELECT DATE(al.log_time) AS day,
       al.activity_type_id AS kind,
       SUM(al.co2e) AS total
FROM activity_logs al
JOIN user_logs ul ON ul.activity_log_id = al.id
WHERE ul.user_id = ?
  AND DATE(al.log_time) BETWEEN ? AND ?
  AND al.activity_type_id IN ?
GROUP BY DATE(al.log_time), al.activity_type_id
ORDER BY day`

type dailyTotalRow struct {
	Day   time.Time
	Kind  uint
	Total float64
}

// DailyTotals sums CO2e per calendar day and kind.
func (r *GormActivityRepository) DailyTotals(ctx context.Context, userID uint, from, to time.Time) ([]domain.DailyTotal, error) {
	var rows []dailyTotalRow
	err := r.db.WithContext(ctx).Raw(dailyTotalsSQL,
		userID, from.Format("2006-01-02"), to.Format("2006-01-02"), kindIDs(),
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: aggregate activity logs for user %d: %w", userID, err)
	}

	totals := make([]domain.DailyTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, domain.DailyTotal{Day: row.Day, Kind: domain.ActivityKind(row.Kind), Total: row.Total})
	}
	return totals, nil
}

func kindIDs() []uint {
	ids := make([]uint, 0, len(domain.Kinds))
	for _, k := range domain.Kinds {
		ids = append(ids, uint(k))
	}
	return ids
}
