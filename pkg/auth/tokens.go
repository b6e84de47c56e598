package auth

import (
	"context"

	"github.com/google/uuid"
)

// TokenGenerator abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}

// TokenVerifier resolves a presented token back to the subject it was issued
// for. Verification is pure: no store lookups, validity is signature + expiry.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}
