package domain

import "time"

// ActivityLog is one recorded emission-producing event.
type ActivityLog struct {
	ID             uint         `gorm:"primaryKey"`
	ActivityItemID uint         `gorm:"not null"`
	ActivityTypeID ActivityKind `gorm:"index;not null"`
	CO2e           float64      `gorm:"column:co2e;not null"`
	LogTime        time.Time    `gorm:"index;not null"`
}

// UserLog links an ActivityLog to its owner.
type UserLog struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"index;not null"`
	ActivityLogID uint      `gorm:"uniqueIndex;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// LogEntry is an ActivityLog with its item name resolved, as shown in the
// history page.
type LogEntry struct {
	ID           uint
	Kind         ActivityKind
	ActivityName string
	CO2e         float64
	LogTime      time.Time
}

// DailyTotal is the CO2e summed for one category on one day.
type DailyTotal struct {
	Day   time.Time
	Kind  ActivityKind
	Total float64
}
