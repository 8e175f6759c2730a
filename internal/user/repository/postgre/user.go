package postgre

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"planora-api/internal/dbmodels"
	"planora-api/internal/model"
	"planora-api/internal/user"
	"planora-api/pkg/paginator"
	pkgPostgres "planora-api/pkg/postgre"
)

func (r implRepository) buildListQuery(opt user.ListUserOption) []qm.QueryMod {
	mods := []qm.QueryMod{
		dbmodels.UserWhere.DeletedAt.IsNull(),
	}

	if opt.Role != "" {
		mods = append(mods, dbmodels.UserWhere.Role.EQ(opt.Role))
	}
	if opt.Email != "" {
		mods = append(mods, dbmodels.UserWhere.Email.EQ(opt.Email))
	}

	return mods
}

func (r implRepository) Create(ctx context.Context, opt user.CreateUserOption) (model.User, error) {
	now := time.Now()

	dbUser := &dbmodels.User{
		ID:           pkgPostgres.NewUUID(),
		Email:        opt.Email,
		PasswordHash: null.StringFrom(opt.PasswordHash),
		Role:         opt.Role,
		IsActive:     null.BoolFrom(true),
		CreatedAt:    null.TimeFrom(now),
		UpdatedAt:    null.TimeFrom(now),
	}
	if opt.FullName != nil {
		dbUser.FullName = null.StringFrom(*opt.FullName)
	}

	if err := dbUser.Insert(ctx, r.db); err != nil {
		return model.User{}, err
	}

	return *model.NewUserFromDB(dbUser), nil
}

func (r implRepository) Detail(ctx context.Context, id string) (model.User, error) {
	dbUser, err := dbmodels.Users(
		dbmodels.UserWhere.ID.EQ(id),
		dbmodels.UserWhere.DeletedAt.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		return model.User{}, err
	}

	return *model.NewUserFromDB(dbUser), nil
}

func (r implRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	dbUser, err := dbmodels.Users(
		dbmodels.UserWhere.Email.EQ(email),
		dbmodels.UserWhere.DeletedAt.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		return model.User{}, err
	}

	return *model.NewUserFromDB(dbUser), nil
}

func (r implRepository) List(ctx context.Context, opt user.ListUserOption) (user.ListUserResult, error) {
	opt.PaginateQuery.Adjust()

	mods := r.buildListQuery(opt)

	total, err := dbmodels.Users(mods...).Count(ctx, r.db)
	if err != nil {
		return user.ListUserResult{}, err
	}

	mods = append(mods,
		qm.OrderBy(dbmodels.UserColumns.CreatedAt+" DESC"),
		qm.Limit(int(opt.PaginateQuery.Limit)),
		qm.Offset(int(opt.PaginateQuery.Offset())),
	)

	dbUsers, err := dbmodels.Users(mods...).All(ctx, r.db)
	if err != nil {
		return user.ListUserResult{}, err
	}

	users := make([]model.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		users = append(users, *model.NewUserFromDB(dbUser))
	}

	return user.ListUserResult{
		Users: users,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(users)),
			PerPage:     opt.PaginateQuery.Limit,
			CurrentPage: opt.PaginateQuery.Page,
		},
	}, nil
}

func (r implRepository) Update(ctx context.Context, opt user.UpdateUserOption) (model.User, error) {
	dbUser, err := dbmodels.Users(
		dbmodels.UserWhere.ID.EQ(opt.ID),
		dbmodels.UserWhere.DeletedAt.IsNull(),
	).One(ctx, r.db)
	if err != nil {
		return model.User{}, err
	}

	columns := []string{dbmodels.UserColumns.UpdatedAt}
	dbUser.UpdatedAt = null.TimeFrom(time.Now())

	if opt.FullName != nil {
		dbUser.FullName = null.StringFrom(*opt.FullName)
		columns = append(columns, dbmodels.UserColumns.FullName)
	}
	if opt.AvatarURL != nil {
		dbUser.AvatarURL = null.StringFrom(*opt.AvatarURL)
		columns = append(columns, dbmodels.UserColumns.AvatarURL)
	}

	if _, err := dbUser.Update(ctx, r.db, columns); err != nil {
		return model.User{}, err
	}

	return *model.NewUserFromDB(dbUser), nil
}
