package auth

import (
	"context"
	"time"

	"planora-api/internal/model"
	"planora-api/pkg/scope"
)

// UseCase is the interface for the auth usecase.
type UseCase interface {
	// Signup registers a new member account and returns a session token.
	Signup(ctx context.Context, input SignupInput) (TokenOutput, error)
	// Login verifies the credentials and returns a session token.
	Login(ctx context.Context, input LoginInput) (TokenOutput, error)
	// Logout revokes the presented token for the rest of its lifetime.
	Logout(ctx context.Context, payload scope.Payload) error
	// Me returns the authenticated account.
	Me(ctx context.Context, sc model.Scope) (model.User, error)
	// IsActive reports whether the account behind a token subject can
	// still use the API.
	IsActive(ctx context.Context, userID string) (bool, error)
}

// Revoker is the token revocation list. Revoked ids only need to be
// remembered until the token would have expired anyway.
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
