// Package domain holds the persisted models of the tracker.
package domain

import "time"

// User is a registered account.
// EmailDigest is a keyed digest of the address with a unique index. Email holds
// a bcrypt hash of that digest and is only used to verify a claimed address.
type User struct {
	ID          uint      `gorm:"primaryKey"`
	Username    string    `gorm:"type:varchar(191);uniqueIndex:idx_username;not null"`
	Email       string    `gorm:"type:text;not null"`                       // bcrypt hash of EmailDigest
	EmailDigest string    `gorm:"type:char(64);uniqueIndex:idx_email_digest"` // hex HMAC-SHA256
	Password    string    `gorm:"type:text;not null"`                       // bcrypt hash
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Session is the server side state behind a session cookie.
type Session struct {
	ID        string
	UserID    uint
	Username  string
	ExpiresAt time.Time
}

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"` // "success" or "danger"
	Message  string `json:"message"`
}
