package redis

import "errors"

var (
	// ErrHostRequired is returned when no Redis host is configured.
	ErrHostRequired = errors.New("redis host is required")
	// ErrInvalidPort is returned when the configured port is out of range.
	ErrInvalidPort = errors.New("redis port must be between 1 and 65535")
	// ErrKeyNotFound is returned when a key does not exist.
	ErrKeyNotFound = errors.New("key not found")
)
