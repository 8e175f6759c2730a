package scope

import (
	"time"
)

// Manager defines the interface for JWT token issuance and verification.
// Implementations are stateless after construction and safe for concurrent use.
type Manager interface {
	// Issue creates a signed token for the given subject. A non-positive ttl
	// falls back to the configured default.
	Issue(subject, email, role string, ttl time.Duration) (string, error)
	// Verify checks the token's structure, signature, and expiry, and returns
	// the payload if valid. Failures are reported as the package's sentinel
	// errors, never as panics.
	Verify(token string) (Payload, error)
}

// New creates a new token Manager with the provided configuration.
// Returns ErrSecretRequired if the signing secret is missing or too short;
// callers are expected to treat that as fatal at startup.
func New(cfg Config) (Manager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, ErrSecretRequired
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	leeway := cfg.Leeway
	if leeway <= 0 {
		leeway = DefaultLeeway
	}

	return &implManager{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       ttl,
		leeway:    leeway,
		clock:     time.Now,
	}, nil
}
