package dbmodels

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"
	"github.com/friendsofgo/errors"
)

// EventTask is a row of the event_tasks table.
type EventTask struct {
	ID          string      `boil:"id" json:"id"`
	PlanID      string      `boil:"plan_id" json:"plan_id"`
	Title       string      `boil:"title" json:"title"`
	Description null.String `boil:"description" json:"description,omitempty"`
	DueDate     null.Time   `boil:"due_date" json:"due_date,omitempty"`
	Priority    string      `boil:"priority" json:"priority"`
	Status      string      `boil:"status" json:"status"`
	AssignedTo  null.String `boil:"assigned_to" json:"assigned_to,omitempty"`
	CompletedAt null.Time   `boil:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   null.Time   `boil:"created_at" json:"created_at,omitempty"`
	UpdatedAt   null.Time   `boil:"updated_at" json:"updated_at,omitempty"`
}

var EventTaskColumns = struct {
	ID          string
	PlanID      string
	Title       string
	Description string
	DueDate     string
	Priority    string
	Status      string
	AssignedTo  string
	CompletedAt string
	CreatedAt   string
	UpdatedAt   string
}{
	ID:          "id",
	PlanID:      "plan_id",
	Title:       "title",
	Description: "description",
	DueDate:     "due_date",
	Priority:    "priority",
	Status:      "status",
	AssignedTo:  "assigned_to",
	CompletedAt: "completed_at",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

var EventTaskWhere = struct {
	ID       whereHelperstring
	PlanID   whereHelperstring
	Priority whereHelperstring
	Status   whereHelperstring
	DueDate  whereHelpernull_Time
}{
	ID:       whereHelperstring{field: "\"event_tasks\".\"id\""},
	PlanID:   whereHelperstring{field: "\"event_tasks\".\"plan_id\""},
	Priority: whereHelperstring{field: "\"event_tasks\".\"priority\""},
	Status:   whereHelperstring{field: "\"event_tasks\".\"status\""},
	DueDate:  whereHelpernull_Time{field: "\"event_tasks\".\"due_date\""},
}

var (
	eventTaskAllColumns        = []string{"id", "plan_id", "title", "description", "due_date", "priority", "status", "assigned_to", "completed_at", "created_at", "updated_at"}
	eventTaskPrimaryKeyColumns = []string{"id"}

	eventTaskType    = reflect.TypeOf(&EventTask{})
	eventTaskMapping = queries.MakeStructMapping(eventTaskType)
)

type eventTaskQuery struct {
	*queries.Query
}

// EventTasks retrieves all the records using the default exec for the query modifiers.
func EventTasks(mods ...qm.QueryMod) eventTaskQuery {
	mods = append(mods, qm.From("\"event_tasks\""))
	return eventTaskQuery{NewQuery(mods...)}
}

// One returns a single eventTask record from the query.
func (q eventTaskQuery) One(ctx context.Context, exec boil.ContextExecutor) (*EventTask, error) {
	o := &EventTask{}

	queries.SetLimit(q.Query, 1)

	err := q.Bind(ctx, exec, o)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrap(err, "dbmodels: failed to execute a one query for event_tasks")
	}

	return o, nil
}

// All returns all eventTask records from the query.
func (q eventTaskQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*EventTask, error) {
	var o []*EventTask

	err := q.Bind(ctx, exec, &o)
	if err != nil {
		return nil, errors.Wrap(err, "dbmodels: failed to assign all query results to EventTask slice")
	}

	return o, nil
}

// Count returns the count of all eventTask records in the query.
func (q eventTaskQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to count event_tasks rows")
	}

	return count, nil
}

// DeleteAll deletes all matching rows.
func (q eventTaskQuery) DeleteAll(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	queries.SetDelete(q.Query)

	result, err := q.Query.ExecContext(ctx, exec)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to delete all from event_tasks")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to get rows affected by deleteall for event_tasks")
	}

	return rowsAff, nil
}

// Insert a single record.
func (o *EventTask) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	if o == nil {
		return errors.New("dbmodels: no event_tasks provided for insertion")
	}

	valueMapping, err := queries.BindMapping(eventTaskType, eventTaskMapping, eventTaskAllColumns)
	if err != nil {
		return errors.Wrap(err, "dbmodels: unable to build insert mapping for event_tasks")
	}

	query := fmt.Sprintf(
		"INSERT INTO \"event_tasks\" (\"%s\") VALUES (%s)",
		strings.Join(eventTaskAllColumns, "\",\""),
		strmangle.Placeholders(dialect.UseIndexPlaceholders, len(eventTaskAllColumns), 1, 1),
	)

	values := queries.ValuesFromMapping(reflect.Indirect(reflect.ValueOf(o)), valueMapping)
	if _, err := exec.ExecContext(ctx, query, values...); err != nil {
		return errors.Wrap(err, "dbmodels: unable to insert into event_tasks")
	}

	return nil
}

// Update uses an executor to update the given columns of the EventTask.
func (o *EventTask) Update(ctx context.Context, exec boil.ContextExecutor, columns []string) (int64, error) {
	if len(columns) == 0 {
		return 0, errors.New("dbmodels: no columns provided for event_tasks update")
	}

	valueMapping, err := queries.BindMapping(eventTaskType, eventTaskMapping, append(columns, eventTaskPrimaryKeyColumns...))
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to build update mapping for event_tasks")
	}

	query := fmt.Sprintf(
		"UPDATE \"event_tasks\" SET %s WHERE %s",
		strmangle.SetParamNames("\"", "\"", 1, columns),
		strmangle.WhereClause("\"", "\"", len(columns)+1, eventTaskPrimaryKeyColumns),
	)

	values := queries.ValuesFromMapping(reflect.Indirect(reflect.ValueOf(o)), valueMapping)

	result, err := exec.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to update event_tasks row")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to get rows affected by update for event_tasks")
	}

	return rowsAff, nil
}

// Delete deletes a single EventTask record with an executor.
func (o *EventTask) Delete(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	if o == nil {
		return 0, errors.New("dbmodels: no EventTask provided for delete")
	}

	query := "DELETE FROM \"event_tasks\" WHERE \"id\"=$1"

	result, err := exec.ExecContext(ctx, query, o.ID)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to delete from event_tasks")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to get rows affected by delete for event_tasks")
	}

	return rowsAff, nil
}
