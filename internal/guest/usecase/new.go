package usecase

import (
	"time"

	"planora-api/internal/guest"
	"planora-api/internal/plan"
	"planora-api/pkg/log"
)

type implUsecase struct {
	l        log.Logger
	repo     guest.Repository
	planRepo plan.Repository

	clock func() time.Time
}

// New creates a new guest usecase. The plan repository is used to
// enforce plan ownership.
func New(l log.Logger, repo guest.Repository, planRepo plan.Repository) guest.UseCase {
	return &implUsecase{
		l:        l,
		repo:     repo,
		planRepo: planRepo,
		clock:    time.Now,
	}
}
