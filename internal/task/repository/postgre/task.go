package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"planora-api/internal/dbmodels"
	"planora-api/internal/model"
	"planora-api/internal/task"
	pkgPostgres "planora-api/pkg/postgre"
)

func (r implRepository) Create(ctx context.Context, opt task.CreateTaskOption) (model.Task, error) {
	now := time.Now()

	dbTask := &dbmodels.EventTask{
		ID:        pkgPostgres.NewUUID(),
		PlanID:    opt.PlanID,
		Title:     opt.Title,
		Priority:  opt.Priority,
		Status:    opt.Status,
		CreatedAt: null.TimeFrom(now),
		UpdatedAt: null.TimeFrom(now),
	}

	if opt.Description != nil {
		dbTask.Description = null.StringFrom(*opt.Description)
	}
	if opt.DueDate != nil {
		dbTask.DueDate = null.TimeFrom(*opt.DueDate)
	}
	if opt.AssignedTo != nil {
		dbTask.AssignedTo = null.StringFrom(*opt.AssignedTo)
	}

	if err := dbTask.Insert(ctx, r.db); err != nil {
		return model.Task{}, err
	}

	return *model.NewTaskFromDB(dbTask), nil
}

func (r implRepository) Detail(ctx context.Context, id string) (model.Task, error) {
	dbTask, err := dbmodels.EventTasks(
		dbmodels.EventTaskWhere.ID.EQ(id),
	).One(ctx, r.db)
	if err != nil {
		return model.Task{}, err
	}

	return *model.NewTaskFromDB(dbTask), nil
}

func (r implRepository) ListByPlan(ctx context.Context, planID string) ([]model.Task, error) {
	dbTasks, err := dbmodels.EventTasks(
		dbmodels.EventTaskWhere.PlanID.EQ(planID),
		qm.OrderBy(dbmodels.EventTaskColumns.CreatedAt+" ASC"),
	).All(ctx, r.db)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		tasks = append(tasks, *model.NewTaskFromDB(dbTask))
	}

	return tasks, nil
}

func (r implRepository) Update(ctx context.Context, opt task.UpdateTaskOption) (model.Task, error) {
	dbTask, err := dbmodels.EventTasks(
		dbmodels.EventTaskWhere.ID.EQ(opt.ID),
	).One(ctx, r.db)
	if err != nil {
		return model.Task{}, err
	}

	columns := []string{dbmodels.EventTaskColumns.UpdatedAt}
	dbTask.UpdatedAt = null.TimeFrom(time.Now())

	if opt.Title != nil {
		dbTask.Title = *opt.Title
		columns = append(columns, dbmodels.EventTaskColumns.Title)
	}
	if opt.Description != nil {
		dbTask.Description = null.StringFrom(*opt.Description)
		columns = append(columns, dbmodels.EventTaskColumns.Description)
	}
	if opt.DueDate != nil {
		dbTask.DueDate = null.TimeFrom(*opt.DueDate)
		columns = append(columns, dbmodels.EventTaskColumns.DueDate)
	}
	if opt.Priority != nil {
		dbTask.Priority = *opt.Priority
		columns = append(columns, dbmodels.EventTaskColumns.Priority)
	}
	if opt.Status != nil {
		dbTask.Status = *opt.Status
		columns = append(columns, dbmodels.EventTaskColumns.Status)
	}
	if opt.AssignedTo != nil {
		dbTask.AssignedTo = null.StringFrom(*opt.AssignedTo)
		columns = append(columns, dbmodels.EventTaskColumns.AssignedTo)
	}
	if opt.CompletedAt != nil {
		dbTask.CompletedAt = null.TimeFrom(*opt.CompletedAt)
		columns = append(columns, dbmodels.EventTaskColumns.CompletedAt)
	} else if opt.ClearCompletedAt {
		dbTask.CompletedAt = null.Time{}
		columns = append(columns, dbmodels.EventTaskColumns.CompletedAt)
	}

	if _, err := dbTask.Update(ctx, r.db, columns); err != nil {
		return model.Task{}, err
	}

	return *model.NewTaskFromDB(dbTask), nil
}

func (r implRepository) Delete(ctx context.Context, id string) error {
	dbTask := &dbmodels.EventTask{ID: id}

	rowsAff, err := dbTask.Delete(ctx, r.db)
	if err != nil {
		return err
	}
	if rowsAff == 0 {
		return sql.ErrNoRows
	}

	return nil
}
