package postgre

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"planora-api/internal/dbmodels"
	"planora-api/internal/model"
	"planora-api/internal/plan"
	"planora-api/pkg/paginator"
	pkgPostgres "planora-api/pkg/postgre"
)

func (r implRepository) buildListQuery(opt plan.ListPlanOption) []qm.QueryMod {
	mods := []qm.QueryMod{
		dbmodels.PlanWhere.UserID.EQ(opt.UserID),
		dbmodels.PlanWhere.DeletedAt.IsNull(),
	}

	if opt.Status != "" {
		mods = append(mods, dbmodels.PlanWhere.Status.EQ(opt.Status))
	}
	if opt.CategoryID != nil {
		mods = append(mods, dbmodels.PlanWhere.CategoryID.EQ(null.IntFrom(*opt.CategoryID)))
	}

	return mods
}

// listOrder sorts most recent events first.
func (r implRepository) listOrder() qm.QueryMod {
	return qm.OrderBy(dbmodels.PlanColumns.EventDate + " DESC")
}

func (r implRepository) Create(ctx context.Context, opt plan.CreatePlanOption) (model.Plan, error) {
	now := time.Now()

	dbPlan := &dbmodels.Plan{
		ID:         pkgPostgres.NewUUID(),
		UserID:     opt.UserID,
		Title:      opt.Title,
		EventDate:  opt.EventDate,
		GuestCount: opt.GuestCount,
		Status:     opt.Status,
		IsPublic:   opt.IsPublic,
		CreatedAt:  null.TimeFrom(now),
		UpdatedAt:  null.TimeFrom(now),
	}

	if opt.Description != nil {
		dbPlan.Description = null.StringFrom(*opt.Description)
	}
	if opt.Location != nil {
		dbPlan.Location = null.StringFrom(*opt.Location)
	}
	if opt.CategoryID != nil {
		dbPlan.CategoryID = null.IntFrom(*opt.CategoryID)
	}
	if opt.Budget != nil {
		dbPlan.Budget = null.Float64From(*opt.Budget)
	}

	if err := dbPlan.Insert(ctx, r.db); err != nil {
		return model.Plan{}, err
	}

	return *model.NewPlanFromDB(dbPlan), nil
}

func (r implRepository) Detail(ctx context.Context, id string) (model.Plan, error) {
	dbPlan, err := dbmodels.Plans(
		dbmodels.PlanWhere.ID.EQ(id),
		dbmodels.PlanWhere.DeletedAt.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		return model.Plan{}, err
	}

	return *model.NewPlanFromDB(dbPlan), nil
}

func (r implRepository) List(ctx context.Context, opt plan.ListPlanOption) (plan.ListPlanResult, error) {
	opt.PaginateQuery.Adjust()

	mods := r.buildListQuery(opt)

	total, err := dbmodels.Plans(mods...).Count(ctx, r.db)
	if err != nil {
		return plan.ListPlanResult{}, err
	}

	mods = append(mods,
		r.listOrder(),
		qm.Limit(int(opt.PaginateQuery.Limit)),
		qm.Offset(int(opt.PaginateQuery.Offset())),
	)

	dbPlans, err := dbmodels.Plans(mods...).All(ctx, r.db)
	if err != nil {
		return plan.ListPlanResult{}, err
	}

	plans := make([]model.Plan, 0, len(dbPlans))
	for _, dbPlan := range dbPlans {
		plans = append(plans, *model.NewPlanFromDB(dbPlan))
	}

	return plan.ListPlanResult{
		Plans: plans,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(plans)),
			PerPage:     opt.PaginateQuery.Limit,
			CurrentPage: opt.PaginateQuery.Page,
		},
	}, nil
}

func (r implRepository) ListAllByUser(ctx context.Context, userID string) ([]model.Plan, error) {
	dbPlans, err := dbmodels.Plans(
		dbmodels.PlanWhere.UserID.EQ(userID),
		dbmodels.PlanWhere.DeletedAt.IsNull(),
	).All(ctx, r.db)
	if err != nil {
		return nil, err
	}

	plans := make([]model.Plan, 0, len(dbPlans))
	for _, dbPlan := range dbPlans {
		plans = append(plans, *model.NewPlanFromDB(dbPlan))
	}

	return plans, nil
}

func (r implRepository) Update(ctx context.Context, opt plan.UpdatePlanOption) (model.Plan, error) {
	dbPlan, err := dbmodels.Plans(
		dbmodels.PlanWhere.ID.EQ(opt.ID),
		dbmodels.PlanWhere.DeletedAt.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		return model.Plan{}, err
	}

	columns := []string{dbmodels.PlanColumns.UpdatedAt}
	dbPlan.UpdatedAt = null.TimeFrom(time.Now())

	if opt.Title != nil {
		dbPlan.Title = *opt.Title
		columns = append(columns, dbmodels.PlanColumns.Title)
	}
	if opt.EventDate != nil {
		dbPlan.EventDate = *opt.EventDate
		columns = append(columns, dbmodels.PlanColumns.EventDate)
	}
	if opt.Description != nil {
		dbPlan.Description = null.StringFrom(*opt.Description)
		columns = append(columns, dbmodels.PlanColumns.Description)
	}
	if opt.Location != nil {
		dbPlan.Location = null.StringFrom(*opt.Location)
		columns = append(columns, dbmodels.PlanColumns.Location)
	}
	if opt.CategoryID != nil {
		dbPlan.CategoryID = null.IntFrom(*opt.CategoryID)
		columns = append(columns, dbmodels.PlanColumns.CategoryID)
	}
	if opt.Budget != nil {
		dbPlan.Budget = null.Float64From(*opt.Budget)
		columns = append(columns, dbmodels.PlanColumns.Budget)
	}
	if opt.GuestCount != nil {
		dbPlan.GuestCount = *opt.GuestCount
		columns = append(columns, dbmodels.PlanColumns.GuestCount)
	}
	if opt.Status != nil {
		dbPlan.Status = *opt.Status
		columns = append(columns, dbmodels.PlanColumns.Status)
	}
	if opt.IsPublic != nil {
		dbPlan.IsPublic = *opt.IsPublic
		columns = append(columns, dbmodels.PlanColumns.IsPublic)
	}

	if _, err := dbPlan.Update(ctx, r.db, columns); err != nil {
		return model.Plan{}, err
	}

	return *model.NewPlanFromDB(dbPlan), nil
}

func (r implRepository) SoftDelete(ctx context.Context, id string) error {
	dbPlan, err := dbmodels.Plans(
		dbmodels.PlanWhere.ID.EQ(id),
		dbmodels.PlanWhere.DeletedAt.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		return err
	}

	now := time.Now()
	dbPlan.DeletedAt = null.TimeFrom(now)
	dbPlan.UpdatedAt = null.TimeFrom(now)

	_, err = dbPlan.Update(ctx, r.db, []string{
		dbmodels.PlanColumns.DeletedAt,
		dbmodels.PlanColumns.UpdatedAt,
	})

	return err
}

func (r implRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	dbCategories, err := dbmodels.Categories(
		qm.OrderBy(dbmodels.CategoryColumns.Name + " ASC"),
	).All(ctx, r.db)
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(dbCategories))
	for _, dbCategory := range dbCategories {
		categories = append(categories, *model.NewCategoryFromDB(dbCategory))
	}

	return categories, nil
}

func (r implRepository) CategoryExists(ctx context.Context, id int) (bool, error) {
	return dbmodels.Categories(
		dbmodels.CategoryWhere.ID.EQ(id),
	).Exists(ctx, r.db)
}
