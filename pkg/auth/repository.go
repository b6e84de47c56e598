package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases. ErrInvalidCredentials is shared
// by the unknown-email and wrong-password paths on purpose: callers must not
// be able to tell registered emails apart from unregistered ones.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrValidation         = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoToken            = errors.New("no token provided, authorization denied")
	ErrUnauthorized       = errors.New("not authorized")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc. The store owns email
// uniqueness: concurrent Create calls with the same email must yield exactly
// one success and one ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}
