package usecase

import (
	"planora-api/internal/user"
	"planora-api/pkg/log"
	"planora-api/pkg/minio"
)

type implUsecase struct {
	l            log.Logger
	repo         user.Repository
	storage      minio.MinIO
	avatarBucket string
}

// New creates a new user usecase.
func New(l log.Logger, repo user.Repository, storage minio.MinIO, avatarBucket string) user.UseCase {
	return &implUsecase{
		l:            l,
		repo:         repo,
		storage:      storage,
		avatarBucket: avatarBucket,
	}
}
