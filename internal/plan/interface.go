package plan

import (
	"context"

	"planora-api/internal/model"
)

// UseCase is the interface for the plan usecase.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreatePlanInput) (model.Plan, error)
	// List returns the caller's plans with pagination.
	List(ctx context.Context, sc model.Scope, input ListPlanInput) (ListPlanOutput, error)
	// Detail returns a plan. Non-owners only see it when it is public.
	Detail(ctx context.Context, sc model.Scope, id string) (model.Plan, error)
	Update(ctx context.Context, sc model.Scope, input UpdatePlanInput) (model.Plan, error)
	// Delete soft deletes a plan.
	Delete(ctx context.Context, sc model.Scope, id string) error
	// ListCategories returns the global category list.
	ListCategories(ctx context.Context) ([]model.Category, error)
	// Stats summarizes the caller's plans.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
}

// Repository is the interface for the plan repository.
type Repository interface {
	Create(ctx context.Context, opt CreatePlanOption) (model.Plan, error)
	Detail(ctx context.Context, id string) (model.Plan, error)
	List(ctx context.Context, opt ListPlanOption) (ListPlanResult, error)
	ListAllByUser(ctx context.Context, userID string) ([]model.Plan, error)
	Update(ctx context.Context, opt UpdatePlanOption) (model.Plan, error)
	SoftDelete(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	CategoryExists(ctx context.Context, id int) (bool, error)
}
