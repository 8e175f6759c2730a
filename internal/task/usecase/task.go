package usecase

import (
	"context"
	"database/sql"
	"errors"

	"planora-api/internal/model"
	"planora-api/internal/plan"
	"planora-api/internal/task"
	pkgErrors "planora-api/pkg/errors"
	pkgPostgres "planora-api/pkg/postgre"
)

// ownedPlan loads the plan and enforces that the scope may manage it.
func (uc *implUsecase) ownedPlan(ctx context.Context, sc model.Scope, planID string) (model.Plan, error) {
	if err := pkgPostgres.IsUUID(planID); err != nil {
		return model.Plan{}, plan.ErrPlanNotFound
	}

	p, err := uc.planRepo.Detail(ctx, planID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Plan{}, plan.ErrPlanNotFound
		}
		uc.l.Errorf(ctx, "internal.task.usecase.ownedPlan: %v", err)
		return model.Plan{}, err
	}

	if !sc.IsAdmin() && p.UserID != sc.UserID {
		return model.Plan{}, pkgErrors.NewForbiddenHTTPError()
	}

	return p, nil
}

func (uc *implUsecase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (model.Task, error) {
	if _, err := uc.ownedPlan(ctx, sc, input.PlanID); err != nil {
		return model.Task{}, err
	}

	priority := model.TaskPriorityMedium
	if input.Priority != nil {
		if !model.IsValidTaskPriority(*input.Priority) {
			return model.Task{}, task.ErrInvalidPriority
		}
		priority = *input.Priority
	}

	t, err := uc.repo.Create(ctx, task.CreateTaskOption{
		PlanID:      input.PlanID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    priority,
		Status:      model.TaskStatusPending,
		AssignedTo:  input.AssignedTo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Create: %v", err)
		return model.Task{}, err
	}

	return t, nil
}

func (uc *implUsecase) List(ctx context.Context, sc model.Scope, planID string) ([]model.Task, error) {
	if _, err := uc.ownedPlan(ctx, sc, planID); err != nil {
		return nil, err
	}

	tasks, err := uc.repo.ListByPlan(ctx, planID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.List: %v", err)
		return nil, err
	}

	return tasks, nil
}

func (uc *implUsecase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (model.Task, error) {
	if _, err := uc.ownedPlan(ctx, sc, input.PlanID); err != nil {
		return model.Task{}, err
	}

	if input.Priority != nil && !model.IsValidTaskPriority(*input.Priority) {
		return model.Task{}, task.ErrInvalidPriority
	}
	if input.Status != nil && !model.IsValidTaskStatus(*input.Status) {
		return model.Task{}, task.ErrInvalidStatus
	}

	if err := pkgPostgres.IsUUID(input.TaskID); err != nil {
		return model.Task{}, task.ErrTaskNotFound
	}

	current, err := uc.repo.Detail(ctx, input.TaskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "internal.task.usecase.Update: fetch: %v", err)
		return model.Task{}, err
	}
	if current.PlanID != input.PlanID {
		return model.Task{}, task.ErrTaskNotFound
	}

	opt := task.UpdateTaskOption{
		ID:          input.TaskID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Status:      input.Status,
		AssignedTo:  input.AssignedTo,
	}

	// Completing a task stamps completed_at, reopening clears it.
	if input.Status != nil && *input.Status != current.Status {
		if *input.Status == model.TaskStatusCompleted {
			now := uc.clock()
			opt.CompletedAt = &now
		} else if current.Status == model.TaskStatusCompleted {
			opt.ClearCompletedAt = true
		}
	}

	updated, err := uc.repo.Update(ctx, opt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "internal.task.usecase.Update: %v", err)
		return model.Task{}, err
	}

	return updated, nil
}

func (uc *implUsecase) Delete(ctx context.Context, sc model.Scope, planID, taskID string) error {
	if _, err := uc.ownedPlan(ctx, sc, planID); err != nil {
		return err
	}

	if err := pkgPostgres.IsUUID(taskID); err != nil {
		return task.ErrTaskNotFound
	}

	t, err := uc.repo.Detail(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "internal.task.usecase.Delete: fetch: %v", err)
		return err
	}
	if t.PlanID != planID {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "internal.task.usecase.Delete: %v", err)
		return err
	}

	return nil
}
