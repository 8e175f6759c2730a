package usecase

import (
	"time"

	"planora-api/internal/plan"
	"planora-api/internal/task"
	"planora-api/pkg/log"
)

type implUsecase struct {
	l        log.Logger
	repo     task.Repository
	planRepo plan.Repository

	clock func() time.Time
}

// New creates a new task usecase. The plan repository is used to
// enforce plan ownership.
func New(l log.Logger, repo task.Repository, planRepo plan.Repository) task.UseCase {
	return &implUsecase{
		l:        l,
		repo:     repo,
		planRepo: planRepo,
		clock:    time.Now,
	}
}
