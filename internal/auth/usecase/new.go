package usecase

import (
	"time"

	"planora-api/internal/auth"
	"planora-api/internal/user"
	"planora-api/pkg/log"
	"planora-api/pkg/scope"
)

type implUsecase struct {
	l        log.Logger
	userRepo user.Repository
	manager  scope.Manager
	revoker  auth.Revoker

	clock func() time.Time
}

// New creates a new auth usecase.
func New(l log.Logger, userRepo user.Repository, manager scope.Manager, revoker auth.Revoker) auth.UseCase {
	return &implUsecase{
		l:        l,
		userRepo: userRepo,
		manager:  manager,
		revoker:  revoker,
		clock:    time.Now,
	}
}
