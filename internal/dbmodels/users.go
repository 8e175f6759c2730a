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

// User is a row of the users table.
type User struct {
	ID           string      `boil:"id" json:"id"`
	Email        string      `boil:"email" json:"email"`
	PasswordHash null.String `boil:"password_hash" json:"-"`
	FullName     null.String `boil:"full_name" json:"full_name,omitempty"`
	AvatarURL    null.String `boil:"avatar_url" json:"avatar_url,omitempty"`
	Role         string      `boil:"role" json:"role"`
	IsActive     null.Bool   `boil:"is_active" json:"is_active,omitempty"`
	CreatedAt    null.Time   `boil:"created_at" json:"created_at,omitempty"`
	UpdatedAt    null.Time   `boil:"updated_at" json:"updated_at,omitempty"`
	DeletedAt    null.Time   `boil:"deleted_at" json:"deleted_at,omitempty"`
}

var UserColumns = struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	AvatarURL    string
	Role         string
	IsActive     string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}{
	ID:           "id",
	Email:        "email",
	PasswordHash: "password_hash",
	FullName:     "full_name",
	AvatarURL:    "avatar_url",
	Role:         "role",
	IsActive:     "is_active",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
	DeletedAt:    "deleted_at",
}

var UserWhere = struct {
	ID        whereHelperstring
	Email     whereHelperstring
	FullName  whereHelpernull_String
	Role      whereHelperstring
	IsActive  whereHelpernull_Bool
	CreatedAt whereHelpernull_Time
	DeletedAt whereHelpernull_Time
}{
	ID:        whereHelperstring{field: "\"users\".\"id\""},
	Email:     whereHelperstring{field: "\"users\".\"email\""},
	FullName:  whereHelpernull_String{field: "\"users\".\"full_name\""},
	Role:      whereHelperstring{field: "\"users\".\"role\""},
	IsActive:  whereHelpernull_Bool{field: "\"users\".\"is_active\""},
	CreatedAt: whereHelpernull_Time{field: "\"users\".\"created_at\""},
	DeletedAt: whereHelpernull_Time{field: "\"users\".\"deleted_at\""},
}

var (
	userAllColumns        = []string{"id", "email", "password_hash", "full_name", "avatar_url", "role", "is_active", "created_at", "updated_at", "deleted_at"}
	userPrimaryKeyColumns = []string{"id"}

	userType    = reflect.TypeOf(&User{})
	userMapping = queries.MakeStructMapping(userType)
)

type userQuery struct {
	*queries.Query
}

// Users retrieves all the records using the default exec for the query modifiers.
func Users(mods ...qm.QueryMod) userQuery {
	mods = append(mods, qm.From("\"users\""))
	return userQuery{NewQuery(mods...)}
}

// One returns a single user record from the query.
func (q userQuery) One(ctx context.Context, exec boil.ContextExecutor) (*User, error) {
	o := &User{}

	queries.SetLimit(q.Query, 1)

	err := q.Bind(ctx, exec, o)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrap(err, "dbmodels: failed to execute a one query for users")
	}

	return o, nil
}

// All returns all user records from the query.
func (q userQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*User, error) {
	var o []*User

	err := q.Bind(ctx, exec, &o)
	if err != nil {
		return nil, errors.Wrap(err, "dbmodels: failed to assign all query results to User slice")
	}

	return o, nil
}

// Count returns the count of all user records in the query.
func (q userQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to count users rows")
	}

	return count, nil
}

// Exists checks if the row exists in the table.
func (q userQuery) Exists(ctx context.Context, exec boil.ContextExecutor) (bool, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)
	queries.SetLimit(q.Query, 1)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return false, errors.Wrap(err, "dbmodels: failed to check if users exists")
	}

	return count > 0, nil
}

// Insert a single record.
func (o *User) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	if o == nil {
		return errors.New("dbmodels: no users provided for insertion")
	}

	valueMapping, err := queries.BindMapping(userType, userMapping, userAllColumns)
	if err != nil {
		return errors.Wrap(err, "dbmodels: unable to build insert mapping for users")
	}

	query := fmt.Sprintf(
		"INSERT INTO \"users\" (\"%s\") VALUES (%s)",
		strings.Join(userAllColumns, "\",\""),
		strmangle.Placeholders(dialect.UseIndexPlaceholders, len(userAllColumns), 1, 1),
	)

	values := queries.ValuesFromMapping(reflect.Indirect(reflect.ValueOf(o)), valueMapping)
	if _, err := exec.ExecContext(ctx, query, values...); err != nil {
		return errors.Wrap(err, "dbmodels: unable to insert into users")
	}

	return nil
}

// Update uses an executor to update the given columns of the User.
func (o *User) Update(ctx context.Context, exec boil.ContextExecutor, columns []string) (int64, error) {
	if len(columns) == 0 {
		return 0, errors.New("dbmodels: no columns provided for users update")
	}

	valueMapping, err := queries.BindMapping(userType, userMapping, append(columns, userPrimaryKeyColumns...))
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to build update mapping for users")
	}

	query := fmt.Sprintf(
		"UPDATE \"users\" SET %s WHERE %s",
		strmangle.SetParamNames("\"", "\"", 1, columns),
		strmangle.WhereClause("\"", "\"", len(columns)+1, userPrimaryKeyColumns),
	)

	values := queries.ValuesFromMapping(reflect.Indirect(reflect.ValueOf(o)), valueMapping)

	result, err := exec.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to update users row")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to get rows affected by update for users")
	}

	return rowsAff, nil
}

// Delete deletes a single User record with an executor.
func (o *User) Delete(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	if o == nil {
		return 0, errors.New("dbmodels: no User provided for delete")
	}

	query := "DELETE FROM \"users\" WHERE \"id\"=$1"

	result, err := exec.ExecContext(ctx, query, o.ID)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to delete from users")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to get rows affected by delete for users")
	}

	return rowsAff, nil
}
