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

// Guest is a row of the guests table. Phone holds ciphertext, the
// repository layer owns encryption.
type Guest struct {
	ID               string      `boil:"id" json:"id"`
	PlanID           string      `boil:"plan_id" json:"plan_id"`
	Name             string      `boil:"name" json:"name"`
	Email            null.String `boil:"email" json:"email,omitempty"`
	Phone            null.String `boil:"phone" json:"phone,omitempty"`
	RSVPStatus       string      `boil:"rsvp_status" json:"rsvp_status"`
	IsInvitationSent bool        `boil:"is_invitation_sent" json:"is_invitation_sent"`
	InvitationSentAt null.Time   `boil:"invitation_sent_at" json:"invitation_sent_at,omitempty"`
	AdditionalNotes  null.String `boil:"additional_notes" json:"additional_notes,omitempty"`
	CreatedAt        null.Time   `boil:"created_at" json:"created_at,omitempty"`
	UpdatedAt        null.Time   `boil:"updated_at" json:"updated_at,omitempty"`
}

var GuestColumns = struct {
	ID               string
	PlanID           string
	Name             string
	Email            string
	Phone            string
	RSVPStatus       string
	IsInvitationSent string
	InvitationSentAt string
	AdditionalNotes  string
	CreatedAt        string
	UpdatedAt        string
}{
	ID:               "id",
	PlanID:           "plan_id",
	Name:             "name",
	Email:            "email",
	Phone:            "phone",
	RSVPStatus:       "rsvp_status",
	IsInvitationSent: "is_invitation_sent",
	InvitationSentAt: "invitation_sent_at",
	AdditionalNotes:  "additional_notes",
	CreatedAt:        "created_at",
	UpdatedAt:        "updated_at",
}

var GuestWhere = struct {
	ID         whereHelperstring
	PlanID     whereHelperstring
	Email      whereHelpernull_String
	RSVPStatus whereHelperstring
	CreatedAt  whereHelpernull_Time
}{
	ID:         whereHelperstring{field: "\"guests\".\"id\""},
	PlanID:     whereHelperstring{field: "\"guests\".\"plan_id\""},
	Email:      whereHelpernull_String{field: "\"guests\".\"email\""},
	RSVPStatus: whereHelperstring{field: "\"guests\".\"rsvp_status\""},
	CreatedAt:  whereHelpernull_Time{field: "\"guests\".\"created_at\""},
}

var (
	guestAllColumns        = []string{"id", "plan_id", "name", "email", "phone", "rsvp_status", "is_invitation_sent", "invitation_sent_at", "additional_notes", "created_at", "updated_at"}
	guestPrimaryKeyColumns = []string{"id"}

	guestType    = reflect.TypeOf(&Guest{})
	guestMapping = queries.MakeStructMapping(guestType)
)

type guestQuery struct {
	*queries.Query
}

// Guests retrieves all the records using the default exec for the query modifiers.
func Guests(mods ...qm.QueryMod) guestQuery {
	mods = append(mods, qm.From("\"guests\""))
	return guestQuery{NewQuery(mods...)}
}

// One returns a single guest record from the query.
func (q guestQuery) One(ctx context.Context, exec boil.ContextExecutor) (*Guest, error) {
	o := &Guest{}

	queries.SetLimit(q.Query, 1)

	err := q.Bind(ctx, exec, o)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrap(err, "dbmodels: failed to execute a one query for guests")
	}

	return o, nil
}

// All returns all guest records from the query.
func (q guestQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*Guest, error) {
	var o []*Guest

	err := q.Bind(ctx, exec, &o)
	if err != nil {
		return nil, errors.Wrap(err, "dbmodels: failed to assign all query results to Guest slice")
	}

	return o, nil
}

// Count returns the count of all guest records in the query.
func (q guestQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to count guests rows")
	}

	return count, nil
}

// DeleteAll deletes all matching rows.
func (q guestQuery) DeleteAll(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	queries.SetDelete(q.Query)

	result, err := q.Query.ExecContext(ctx, exec)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to delete all from guests")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to get rows affected by deleteall for guests")
	}

	return rowsAff, nil
}

// Insert a single record.
func (o *Guest) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	if o == nil {
		return errors.New("dbmodels: no guests provided for insertion")
	}

	valueMapping, err := queries.BindMapping(guestType, guestMapping, guestAllColumns)
	if err != nil {
		return errors.Wrap(err, "dbmodels: unable to build insert mapping for guests")
	}

	query := fmt.Sprintf(
		"INSERT INTO \"guests\" (\"%s\") VALUES (%s)",
		strings.Join(guestAllColumns, "\",\""),
		strmangle.Placeholders(dialect.UseIndexPlaceholders, len(guestAllColumns), 1, 1),
	)

	values := queries.ValuesFromMapping(reflect.Indirect(reflect.ValueOf(o)), valueMapping)
	if _, err := exec.ExecContext(ctx, query, values...); err != nil {
		return errors.Wrap(err, "dbmodels: unable to insert into guests")
	}

	return nil
}

// Update uses an executor to update the given columns of the Guest.
func (o *Guest) Update(ctx context.Context, exec boil.ContextExecutor, columns []string) (int64, error) {
	if len(columns) == 0 {
		return 0, errors.New("dbmodels: no columns provided for guests update")
	}

	valueMapping, err := queries.BindMapping(guestType, guestMapping, append(columns, guestPrimaryKeyColumns...))
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to build update mapping for guests")
	}

	query := fmt.Sprintf(
		"UPDATE \"guests\" SET %s WHERE %s",
		strmangle.SetParamNames("\"", "\"", 1, columns),
		strmangle.WhereClause("\"", "\"", len(columns)+1, guestPrimaryKeyColumns),
	)

	values := queries.ValuesFromMapping(reflect.Indirect(reflect.ValueOf(o)), valueMapping)

	result, err := exec.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to update guests row")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to get rows affected by update for guests")
	}

	return rowsAff, nil
}

// Delete deletes a single Guest record with an executor.
func (o *Guest) Delete(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	if o == nil {
		return 0, errors.New("dbmodels: no Guest provided for delete")
	}

	query := "DELETE FROM \"guests\" WHERE \"id\"=$1"

	result, err := exec.ExecContext(ctx, query, o.ID)
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: unable to delete from guests")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "dbmodels: failed to get rows affected by delete for guests")
	}

	return rowsAff, nil
}
