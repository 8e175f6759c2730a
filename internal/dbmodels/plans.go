package dbmodels

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"
	"github.com/friendsofgo/errors"
)

// Plan is a row of the plans table.
type Plan struct {
	ID          string       `boil:"id" json:"id"`
	UserID      string       `boil:"user_id" json:"user_id"`
	Title       string       `boil:"title" json:"title"`
	EventDate   time.Time    `boil:"event_date" json:"event_date"`
	Description null.String  `boil:"description" json:"description,omitempty"`
	Location    null.String  `boil:"location" json:"location,omitempty"`
	CategoryID  null.Int     `boil:"category_id" json:"category_id,omitempty"`
	Budget      null.Float64 `boil:"budget" json:"budget,omitempty"`
	GuestCount  int          `boil:"guest_count" json:"guest_count"`
	Status      string       `boil:"status" json:"status"`
	IsPublic    bool         `boil:"is_public" json:"is_public"`
	CreatedAt   null.Time    `boil:"created_at" json:"created_at,omitempty"`
	UpdatedAt   null.Time    `boil:"updated_at" json:"updated_at,omitempty"`
	DeletedAt   null.Time    `boil:"deleted_at" json:"deleted_at,omitempty"`
}

var PlanColumns = struct {
	ID          string
	UserID      string
	Title       string
	EventDate   string
	Description string
	Location    string
	CategoryID  string
	Budget      string
	GuestCount  string
	Status      string
	IsPublic    string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}{
	ID:          "id",
	UserID:      "user_id",
	Title:       "title",
	EventDate:   "event_date",
	Description: "description",
	Location:    "location",
	CategoryID:  "category_id",
	Budget:      "budget",
	GuestCount:  "guest_count",
	Status:      "status",
	IsPublic:    "is_public",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
	DeletedAt:   "deleted_at",
}

var PlanWhere = struct {
	ID         whereHelperstring
	UserID     whereHelperstring
	Title      whereHelperstring
	EventDate  whereHelpertime_Time
	CategoryID whereHelpernull_Int
	Status     whereHelperstring
	IsPublic   whereHelperbool
	CreatedAt  whereHelpernull_Time
	DeletedAt  whereHelpernull_Time
}{
	ID:         whereHelperstring{field: "\"plans\".\"id\""},
	UserID:     whereHelperstring{field: "\"plans\".\"user_id\""},
	Title:      whereHelperstring{field: "\"plans\".\"title\""},
	EventDate:  whereHelpertime_Time{field: "\"plans\".\"event_date\""},
	CategoryID: whereHelpernull_Int{field: "\"plans\".\"category_id\""},
	Status:     whereHelperstring{field: "\"plans\".\"status\""},
	IsPublic:   whereHelperbool{field: "\"plans\".\"is_public\""},
	CreatedAt:  whereHelpernull_Time{field: "\"plans\".\"created_at\""},
	DeletedAt:  whereHelpernull_Time{field: "\"plans\".\"deleted_at\""},
}

var (
	planAllColumns        = []string{"id", "user_id", "title", "event_date", "description", "location", "category_id", "budget", "guest_count", "status", "is_public", "created_at", "updated_at", "deleted_at"}
	planPrimaryKeyColumns = []string{"id"}

	planType    = reflect.TypeOf(&Plan{})
	planMapping = queries.MakeStructMapping(planType)
)

type planQuery struct {
	*queries.Query
}

// Plans retrieves all the records using the default exec for the query modifiers.
func Plans(mods ...qm.QueryMod) planQuery {
	mods = append(mods, qm.From("\"plans\""))
	return planQuery{NewQuery(mods...)}
}

// One returns a single plan record from the query.
func (q planQuery) One(ctx context.Context, exec boil.ContextExecutor) (*Plan, error) {
	o := &Plan{}

	queries.SetLimit(q.Query, 1)

	err := q.Bind(ctx, exec, o)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrap(err, "dbmodels: failed to execute a one query for plans")
	}

	return o, nil
}

// All returns all plan records from the query.
func (q planQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*Plan, error) {
	var o []*Plan

	err := q.Bind(ctx, exec, &o)
	if err != nil {
		return nil, errors.Wrap(err, "dbmodels: failed to assign all query results to Plan slice")
	}

	return o, nil
}

// Count returns the count of all plan records in the query.
func (q planQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to count plans rows")
	}

	return count, nil
}

// Exists checks if the row exists in the table.
func (q planQuery) Exists(ctx context.Context, exec boil.ContextExecutor) (bool, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)
	queries.SetLimit(q.Query, 1)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return false, errors.Wrap(err, "dbmodels: failed to check if plans exists")
	}

	return count > 0, nil
}

// Insert a single record.
func (o *Plan) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	if o == nil {
		return errors.New("dbmodels: no plans provided for insertion")
	}

	valueMapping, err := queries.BindMapping(planType, planMapping, planAllColumns)
	if err != nil {
		return errors.Wrap(err, "dbmodels: unable to build insert mapping for plans")
	}

	query := fmt.Sprintf(
		"INSERT INTO \"plans\" (\"%s\") VALUES (%s)",
		strings.Join(planAllColumns, "\",\""),
		strmangle.Placeholders(dialect.UseIndexPlaceholders, len(planAllColumns), 1, 1),
	)

	values := queries.ValuesFromMapping(reflect.Indirect(reflect.ValueOf(o)), valueMapping)
	if _, err := exec.ExecContext(ctx, query, values...); err != nil {
		return errors.Wrap(err, "dbmodels: unable to insert into plans")
	}

	return nil
}

// Update uses an executor to update the given columns of the Plan.
func (o *Plan) Update(ctx context.Context, exec boil.ContextExecutor, columns []string) (int64, error) {
	if len(columns) == 0 {
		return 0, errors.New("dbmodels: no columns provided for plans update")
	}

	valueMapping, err := queries.BindMapping(planType, planMapping, append(columns, planPrimaryKeyColumns...))
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to build update mapping for plans")
	}

	query := fmt.Sprintf(
		"UPDATE \"plans\" SET %s WHERE %s",
		strmangle.SetParamNames("\"", "\"", 1, columns),
		strmangle.WhereClause("\"", "\"", len(columns)+1, planPrimaryKeyColumns),
	)

	values := queries.ValuesFromMapping(reflect.Indirect(reflect.ValueOf(o)), valueMapping)

	result, err := exec.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to update plans row")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to get rows affected by update for plans")
	}

	return rowsAff, nil
}

// Delete deletes a single Plan record with an executor.
func (o *Plan) Delete(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	if o == nil {
		return 0, errors.New("dbmodels: no Plan provided for delete")
	}

	query := "DELETE FROM \"plans\" WHERE \"id\"=$1"

	result, err := exec.ExecContext(ctx, query, o.ID)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to delete from plans")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to get rows affected by delete for plans")
	}

	return rowsAff, nil
}
