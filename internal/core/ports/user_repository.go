package ports

import (
	"context"

	"globaledge/internal/core/domain/model/account"
	"globaledge/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user identities.
// The shipment core only adds prospect records and looks users up; everything
// else about accounts belongs to the auth collaborator.
type UserRepository interface {
	// Add persists a new user. A duplicate email surfaces as an
	// ObjectAlreadyExistsError so identity resolution can fall back to lookup.
	Add(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user by identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by normalized email (case-insensitive match).
	GetByEmail(ctx context.Context, email kernel.Email) (*account.User, error)

	// GetByPhone retrieves a user by normalized phone.
	GetByPhone(ctx context.Context, phone kernel.Phone) (*account.User, error)
}
