package middleware

import (
	"context"

	"planora-api/pkg/discord"
	"planora-api/pkg/log"
	"planora-api/pkg/scope"
)

// TokenRevocationChecker reports whether a token id has been revoked.
type TokenRevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// UserVerifier reports whether the token subject still maps to an
// active account.
type UserVerifier interface {
	IsActive(ctx context.Context, userID string) (bool, error)
}

// Middleware provides the gin middlewares of the API.
type Middleware struct {
	l       log.Logger
	manager scope.Manager
	revoked TokenRevocationChecker
	users   UserVerifier
	d       discord.IDiscord
}

// New creates a new Middleware.
func New(l log.Logger, manager scope.Manager, revoked TokenRevocationChecker, users UserVerifier, d discord.IDiscord) Middleware {
	return Middleware{
		l:       l,
		manager: manager,
		revoked: revoked,
		users:   users,
		d:       d,
	}
}
