package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds the token codec configuration.
// SecretKey is required; TTL and Leeway fall back to package defaults.
type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
	Leeway    time.Duration
}

// Payload represents the JWT token claims.
type Payload struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject of the claim set.
func (p Payload) UserID() string {
	return p.Subject
}

// implManager implements Manager.
type implManager struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	leeway    time.Duration
	clock     func() time.Time
}
