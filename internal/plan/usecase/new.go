package usecase

import (
	"planora-api/internal/plan"
	"planora-api/pkg/log"
)

type implUsecase struct {
	l    log.Logger
	repo plan.Repository
}

// New creates a new plan usecase.
func New(l log.Logger, repo plan.Repository) plan.UseCase {
	return &implUsecase{
		l:    l,
		repo: repo,
	}
}
