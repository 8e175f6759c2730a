package scope

import "time"

const (
	// DefaultTTL is the default token lifetime.
	DefaultTTL = 24 * time.Hour
	// DefaultLeeway is the default clock-skew tolerance applied during verification.
	DefaultLeeway = 30 * time.Second
	// MinSecretKeyLen is the minimum accepted signing secret length.
	MinSecretKeyLen = 32
)
