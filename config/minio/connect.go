package minio

import (
	"context"

	"planora-api/config"
	pkgminio "planora-api/pkg/minio"
)

// Connect builds a MinIO client from the app configuration, verifies the
// connection and ensures the avatar bucket exists.
func Connect(ctx context.Context, cfg config.MinIOConfig) (pkgminio.MinIO, error) {
	client, err := pkgminio.NewMinIO(pkgminio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	if err := client.Connect(ctx); err != nil {
		return nil, err
	}

	if err := client.EnsureBucket(ctx, cfg.AvatarBucket); err != nil {
		return nil, err
	}

	return client, nil
}
