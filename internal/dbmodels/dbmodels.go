// Package dbmodels holds the database row types and query builders for
// the Postgres schema. The query surface follows the sqlboiler model
// conventions (table query funcs, typed where helpers, column constants)
// so repositories compose queries with qm mods and bind rows by boil tag.
package dbmodels

import (
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

var dialect = drivers.Dialect{
	LQ: '"',
	RQ: '"',

	UseIndexPlaceholders: true,
	UseLastInsertID:      false,
	UseSchema:            false,
	UseDefaultKeyword:    true,
}

// NewQuery initializes a new Query using the Postgres dialect.
func NewQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, mods...)

	return q
}

// TableNames lists the table identifiers of the schema.
var TableNames = struct {
	Users           string
	Plans           string
	EventCategories string
	Guests          string
	EventTasks      string
}{
	Users:           "users",
	Plans:           "plans",
	EventCategories: "event_categories",
	Guests:          "guests",
	EventTasks:      "event_tasks",
}
