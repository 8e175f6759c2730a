package scope

import "errors"

var (
	// ErrSecretRequired is returned at construction when the signing secret is absent or too short.
	ErrSecretRequired = errors.New("signing secret is required and must be at least 32 bytes")

	// ErrTokenMalformed is returned when a token cannot be parsed structurally.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenExpired is returned when a token's expiry is in the past (beyond leeway).
	ErrTokenExpired = errors.New("token is expired")
	// ErrBadSignature is returned when the token signature does not verify.
	ErrBadSignature = errors.New("token signature is invalid")
)
