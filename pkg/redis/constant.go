package redis

import "time"

const (
	// DefaultConnectTimeout is the maximum time to wait for the initial connection.
	DefaultConnectTimeout = 5 * time.Second
)
