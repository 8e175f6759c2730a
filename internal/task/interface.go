package task

import (
	"context"

	"planora-api/internal/model"
)

// UseCase is the interface for the task usecase. Every operation is
// scoped to the owner of the parent plan.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (model.Task, error)
	List(ctx context.Context, sc model.Scope, planID string) ([]model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, planID, taskID string) error
}

// Repository is the interface for the task repository.
type Repository interface {
	Create(ctx context.Context, opt CreateTaskOption) (model.Task, error)
	Detail(ctx context.Context, id string) (model.Task, error)
	ListByPlan(ctx context.Context, planID string) ([]model.Task, error)
	Update(ctx context.Context, opt UpdateTaskOption) (model.Task, error)
	Delete(ctx context.Context, id string) error
}
