package ports

import (
	"context"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for marketplace users.
type UserRepository interface {
	// Add persists a new user.
	Add(ctx context.Context, u *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
