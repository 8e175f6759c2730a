package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO defines the interface for MinIO storage operations.
type MinIO interface {
	// Connect establishes a connection to MinIO and verifies it's working.
	Connect(ctx context.Context) error

	// HealthCheck verifies the connection is still healthy.
	HealthCheck(ctx context.Context) error

	// Close closes the connection and cleans up resources.
	Close() error

	// EnsureBucket creates the bucket if it does not exist yet.
	EnsureBucket(ctx context.Context, bucketName string) error

	// UploadFile uploads a file to MinIO storage.
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)

	// RemoveFile removes an object from a bucket.
	RemoveFile(ctx context.Context, bucketName, objectName string) error

	// GetPresignedDownloadURL generates a presigned URL for direct download.
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (string, error)
}

// NewMinIO creates a new MinIO client from the given configuration.
// Call Connect to verify the connection before use.
func NewMinIO(cfg Config) (MinIO, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, ErrCredentialsRequired
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, handleMinIOError(err, "new_client")
	}

	return &implMinIO{
		minioClient: client,
		cfg:         cfg,
	}, nil
}

// DefaultPresignExpiry is the default lifetime of presigned download URLs.
const DefaultPresignExpiry = 15 * time.Minute
