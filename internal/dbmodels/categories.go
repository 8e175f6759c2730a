package dbmodels

import (
	"context"
	"database/sql"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/friendsofgo/errors"
)

// Category is a row of the event_categories table.
type Category struct {
	ID          int         `boil:"id" json:"id"`
	Name        string      `boil:"name" json:"name"`
	Description null.String `boil:"description" json:"description,omitempty"`
	Icon        null.String `boil:"icon" json:"icon,omitempty"`
	CreatedAt   null.Time   `boil:"created_at" json:"created_at,omitempty"`
	UpdatedAt   null.Time   `boil:"updated_at" json:"updated_at,omitempty"`
}

var CategoryColumns = struct {
	ID          string
	Name        string
	Description string
	Icon        string
	CreatedAt   string
	UpdatedAt   string
}{
	ID:          "id",
	Name:        "name",
	Description: "description",
	Icon:        "icon",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

var CategoryWhere = struct {
	ID   whereHelperint
	Name whereHelperstring
}{
	ID:   whereHelperint{field: "\"event_categories\".\"id\""},
	Name: whereHelperstring{field: "\"event_categories\".\"name\""},
}

type categoryQuery struct {
	*queries.Query
}

// Categories retrieves all the records using the default exec for the query modifiers.
func Categories(mods ...qm.QueryMod) categoryQuery {
	mods = append(mods, qm.From("\"event_categories\""))
	return categoryQuery{NewQuery(mods...)}
}

// One returns a single category record from the query.
func (q categoryQuery) One(ctx context.Context, exec boil.ContextExecutor) (*Category, error) {
	o := &Category{}

	queries.SetLimit(q.Query, 1)

	err := q.Bind(ctx, exec, o)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrap(err, "dbmodels: failed to execute a one query for event_categories")
	}

	return o, nil
}

// All returns all category records from the query.
func (q categoryQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*Category, error) {
	var o []*Category

	err := q.Bind(ctx, exec, &o)
	if err != nil {
		return nil, errors.Wrap(err, "dbmodels: failed to assign all query results to Category slice")
	}

	return o, nil
}

// Exists checks if the row exists in the table.
func (q categoryQuery) Exists(ctx context.Context, exec boil.ContextExecutor) (bool, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)
	queries.SetLimit(q.Query, 1)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return false, errors.Wrap(err, "dbmodels: failed to check if event_categories exists")
	}

	return count > 0, nil
}

// Insert a single record. The generated serial id is written back to o.ID.
func (o *Category) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	if o == nil {
		return errors.New("dbmodels: no event_categories provided for insertion")
	}

	query := "INSERT INTO \"event_categories\" (\"name\",\"description\",\"icon\",\"created_at\",\"updated_at\") VALUES ($1,$2,$3,$4,$5) RETURNING \"id\""

	err := exec.QueryRowContext(ctx, query, o.Name, o.Description, o.Icon, o.CreatedAt, o.UpdatedAt).Scan(&o.ID)
	if err != nil {
		return errors.Wrap(err, "dbmodels: unable to insert into event_categories")
	}

	return nil
}
