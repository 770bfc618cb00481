package repository

import (
	"context"

	"github.com/SageMyrloc/FinalProject/internal/domain"
)

// UserRepository stores and looks up user accounts.
type UserRepository interface {
	// FindByUsername returns ErrUserNotFound when no user has that name.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// ExistsByUsernameOrEmailDigest reports whether either value is taken.
	ExistsByUsernameOrEmailDigest(ctx context.Context, username, emailDigest string) (bool, error)

	// Create inserts a new user and fills its ID.
	// Returns ErrDuplicateEntry on a unique constraint violation.
	Create(ctx context.Context, user *domain.User) error
}
