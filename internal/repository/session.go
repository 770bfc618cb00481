package repository

import (
	"context"
	"time"

	"github.com/SageMyrloc/FinalProject/internal/domain"
)

// SessionRepository keeps login sessions and their flash messages.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session, ttl time.Duration) error

	// Find returns ErrSessionNotFound for unknown or expired sessions.
	Find(ctx context.Context, id string) (*domain.Session, error)

	Delete(ctx context.Context, id string) error

	PushFlash(ctx context.Context, id string, flash domain.Flash) error

	// PopFlashes returns and clears the pending flash messages.
	PopFlashes(ctx context.Context, id string) ([]domain.Flash, error)
}
