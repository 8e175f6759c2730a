package minio

import (
	"errors"
	"fmt"
)

var (
	// ErrEndpointRequired is returned when no MinIO endpoint is configured.
	ErrEndpointRequired = errors.New("minio endpoint is required")
	// ErrCredentialsRequired is returned when access or secret key is missing.
	ErrCredentialsRequired = errors.New("minio access key and secret key are required")
	// ErrNotConnected is returned when an operation is attempted before Connect.
	ErrNotConnected = errors.New("minio client is not connected")
)

// handleMinIOError wraps a MinIO SDK error with the failing operation name.
func handleMinIOError(err error, operation string) error {
	return fmt.Errorf("minio %s failed: %w", operation, err)
}
