package usecase

import (
	"context"
	"database/sql"
	"errors"

	"planora-api/internal/model"
	"planora-api/internal/plan"
	pkgErrors "planora-api/pkg/errors"
	pkgPostgres "planora-api/pkg/postgre"
)

// canManage reports whether the scope may modify the plan.
func canManage(sc model.Scope, p model.Plan) bool {
	return sc.IsAdmin() || p.UserID == sc.UserID
}

func (uc implUsecase) Create(ctx context.Context, sc model.Scope, input plan.CreatePlanInput) (model.Plan, error) {
	if input.EventDate.IsZero() {
		return model.Plan{}, plan.ErrInvalidEventDate
	}

	if input.CategoryID != nil {
		exists, err := uc.repo.CategoryExists(ctx, *input.CategoryID)
		if err != nil {
			uc.l.Errorf(ctx, "internal.plan.usecase.Create: check category: %v", err)
			return model.Plan{}, err
		}
		if !exists {
			return model.Plan{}, plan.ErrCategoryNotFound
		}
	}

	opt := plan.CreatePlanOption{
		UserID:      sc.UserID,
		Title:       input.Title,
		EventDate:   input.EventDate,
		Description: input.Description,
		Location:    input.Location,
		CategoryID:  input.CategoryID,
		Budget:      input.Budget,
		Status:      model.PlanStatusPlanned,
	}
	if input.GuestCount != nil {
		opt.GuestCount = *input.GuestCount
	}
	if input.IsPublic != nil {
		opt.IsPublic = *input.IsPublic
	}

	p, err := uc.repo.Create(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "internal.plan.usecase.Create: %v", err)
		return model.Plan{}, err
	}

	return p, nil
}

func (uc implUsecase) List(ctx context.Context, sc model.Scope, input plan.ListPlanInput) (plan.ListPlanOutput, error) {
	if input.Status != "" && !model.IsValidPlanStatus(input.Status) {
		return plan.ListPlanOutput{}, plan.ErrInvalidStatus
	}

	result, err := uc.repo.List(ctx, plan.ListPlanOption{
		PaginateQuery: input.PaginateQuery,
		UserID:        sc.UserID,
		Status:        input.Status,
		CategoryID:    input.CategoryID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.plan.usecase.List: %v", err)
		return plan.ListPlanOutput{}, err
	}

	return plan.ListPlanOutput{
		Plans:     result.Plans,
		Paginator: result.Paginator,
	}, nil
}

func (uc implUsecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Plan, error) {
	if err := pkgPostgres.IsUUID(id); err != nil {
		return model.Plan{}, plan.ErrPlanNotFound
	}

	p, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Plan{}, plan.ErrPlanNotFound
		}
		uc.l.Errorf(ctx, "internal.plan.usecase.Detail: %v", err)
		return model.Plan{}, err
	}

	if !canManage(sc, p) && !p.IsPublic {
		return model.Plan{}, pkgErrors.NewForbiddenHTTPError()
	}

	return p, nil
}

func (uc implUsecase) Update(ctx context.Context, sc model.Scope, input plan.UpdatePlanInput) (model.Plan, error) {
	if input.Status != nil && !model.IsValidPlanStatus(*input.Status) {
		return model.Plan{}, plan.ErrInvalidStatus
	}
	if err := pkgPostgres.IsUUID(input.ID); err != nil {
		return model.Plan{}, plan.ErrPlanNotFound
	}

	p, err := uc.repo.Detail(ctx, input.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Plan{}, plan.ErrPlanNotFound
		}
		uc.l.Errorf(ctx, "internal.plan.usecase.Update: fetch: %v", err)
		return model.Plan{}, err
	}

	if !canManage(sc, p) {
		return model.Plan{}, pkgErrors.NewForbiddenHTTPError()
	}

	if input.CategoryID != nil {
		exists, err := uc.repo.CategoryExists(ctx, *input.CategoryID)
		if err != nil {
			uc.l.Errorf(ctx, "internal.plan.usecase.Update: check category: %v", err)
			return model.Plan{}, err
		}
		if !exists {
			return model.Plan{}, plan.ErrCategoryNotFound
		}
	}

	updated, err := uc.repo.Update(ctx, plan.UpdatePlanOption{
		ID:          input.ID,
		Title:       input.Title,
		EventDate:   input.EventDate,
		Description: input.Description,
		Location:    input.Location,
		CategoryID:  input.CategoryID,
		Budget:      input.Budget,
		GuestCount:  input.GuestCount,
		Status:      input.Status,
		IsPublic:    input.IsPublic,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Plan{}, plan.ErrPlanNotFound
		}
		uc.l.Errorf(ctx, "internal.plan.usecase.Update: %v", err)
		return model.Plan{}, err
	}

	return updated, nil
}

func (uc implUsecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := pkgPostgres.IsUUID(id); err != nil {
		return plan.ErrPlanNotFound
	}

	p, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return plan.ErrPlanNotFound
		}
		uc.l.Errorf(ctx, "internal.plan.usecase.Delete: fetch: %v", err)
		return err
	}

	if !canManage(sc, p) {
		return pkgErrors.NewForbiddenHTTPError()
	}

	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "internal.plan.usecase.Delete: %v", err)
		return err
	}

	return nil
}

func (uc implUsecase) Stats(ctx context.Context, sc model.Scope) (plan.StatsOutput, error) {
	plans, err := uc.repo.ListAllByUser(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.plan.usecase.Stats: %v", err)
		return plan.StatsOutput{}, err
	}

	stats := plan.StatsOutput{
		TotalPlans: len(plans),
		ByCategory: make(map[int]int),
	}

	for _, p := range plans {
		switch p.Status {
		case model.PlanStatusPlanned:
			stats.UpcomingPlans++
		case model.PlanStatusCompleted:
			stats.CompletedPlans++
		}
		stats.TotalGuests += p.GuestCount
		if p.CategoryID != nil {
			stats.ByCategory[*p.CategoryID]++
		}
	}

	return stats, nil
}

func (uc implUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.plan.usecase.ListCategories: %v", err)
		return nil, err
	}

	return categories, nil
}
