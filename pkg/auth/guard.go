package auth

import (
	"context"
	"strings"
)

// Guard resolves the acting identity for an inbound request from its
// Authorization header. Resolution happens once per request and is never
// cached across requests.
type Guard struct {
	tokens TokenVerifier
	repo   UserRepository
}

// NewGuard wires a token verifier and a user repository into a request guard.
func NewGuard(tokens TokenVerifier, repo UserRepository) *Guard {
	return &Guard{tokens: tokens, repo: repo}
}

// Authenticate extracts "Bearer <token>" from the Authorization header value,
// verifies the token and loads its subject. An absent header or a non-Bearer
// credential yields ErrNoToken; any verification failure, and a subject that
// no longer exists in the store, collapse to ErrUnauthorized.
func (g *Guard) Authenticate(ctx context.Context, authorization string) (User, error) {
	scheme, token, found := strings.Cut(authorization, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return User{}, ErrNoToken
	}

	userID, err := g.tokens.Verify(ctx, token)
	if err != nil {
		return User{}, ErrUnauthorized
	}

	user, err := g.repo.GetByID(ctx, userID)
	if err != nil {
		// A token can outlive its account.
		return User{}, ErrUnauthorized
	}
	return user, nil
}
