package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"planora-api/internal/dbmodels"
	"planora-api/internal/guest"
	"planora-api/internal/model"
	pkgPostgres "planora-api/pkg/postgre"
)

// toModel decrypts the phone column on the way out. A row that cannot
// be decrypted is returned without the phone rather than failing the
// whole read.
func (r implRepository) toModel(ctx context.Context, dbGuest *dbmodels.Guest) model.Guest {
	g := model.NewGuestFromDB(dbGuest)

	if g.Phone != nil {
		plain, err := r.enc.Decrypt(*g.Phone)
		if err != nil {
			r.l.Errorf(ctx, "internal.guest.repository.postgre.toModel: decrypt phone: %v", err)
			g.Phone = nil
		} else {
			g.Phone = &plain
		}
	}

	return *g
}

func (r implRepository) encryptPhone(phone *string) (null.String, error) {
	if phone == nil {
		return null.String{}, nil
	}

	ciphertext, err := r.enc.Encrypt(*phone)
	if err != nil {
		return null.String{}, err
	}

	return null.StringFrom(ciphertext), nil
}

func (r implRepository) Create(ctx context.Context, opt guest.CreateGuestOption) (model.Guest, error) {
	now := time.Now()

	dbGuest := &dbmodels.Guest{
		ID:         pkgPostgres.NewUUID(),
		PlanID:     opt.PlanID,
		Name:       opt.Name,
		RSVPStatus: opt.RSVPStatus,
		CreatedAt:  null.TimeFrom(now),
		UpdatedAt:  null.TimeFrom(now),
	}

	if opt.Email != nil {
		dbGuest.Email = null.StringFrom(*opt.Email)
	}
	if opt.AdditionalNotes != nil {
		dbGuest.AdditionalNotes = null.StringFrom(*opt.AdditionalNotes)
	}

	phone, err := r.encryptPhone(opt.Phone)
	if err != nil {
		return model.Guest{}, err
	}
	dbGuest.Phone = phone

	if err := dbGuest.Insert(ctx, r.db); err != nil {
		return model.Guest{}, err
	}

	return r.toModel(ctx, dbGuest), nil
}

func (r implRepository) Detail(ctx context.Context, id string) (model.Guest, error) {
	dbGuest, err := dbmodels.Guests(
		dbmodels.GuestWhere.ID.EQ(id),
	).One(ctx, r.db)
	if err != nil {
		return model.Guest{}, err
	}

	return r.toModel(ctx, dbGuest), nil
}

func (r implRepository) ListByPlan(ctx context.Context, planID string) ([]model.Guest, error) {
	dbGuests, err := dbmodels.Guests(
		dbmodels.GuestWhere.PlanID.EQ(planID),
		qm.OrderBy(dbmodels.GuestColumns.CreatedAt+" ASC"),
	).All(ctx, r.db)
	if err != nil {
		return nil, err
	}

	guests := make([]model.Guest, 0, len(dbGuests))
	for _, dbGuest := range dbGuests {
		guests = append(guests, r.toModel(ctx, dbGuest))
	}

	return guests, nil
}

func (r implRepository) Update(ctx context.Context, opt guest.UpdateGuestOption) (model.Guest, error) {
	dbGuest, err := dbmodels.Guests(
		dbmodels.GuestWhere.ID.EQ(opt.ID),
	).One(ctx, r.db)
	if err != nil {
		return model.Guest{}, err
	}

	columns := []string{dbmodels.GuestColumns.UpdatedAt}
	dbGuest.UpdatedAt = null.TimeFrom(time.Now())

	if opt.Name != nil {
		dbGuest.Name = *opt.Name
		columns = append(columns, dbmodels.GuestColumns.Name)
	}
	if opt.Email != nil {
		dbGuest.Email = null.StringFrom(*opt.Email)
		columns = append(columns, dbmodels.GuestColumns.Email)
	}
	if opt.Phone != nil {
		phone, err := r.encryptPhone(opt.Phone)
		if err != nil {
			return model.Guest{}, err
		}
		dbGuest.Phone = phone
		columns = append(columns, dbmodels.GuestColumns.Phone)
	}
	if opt.RSVPStatus != nil {
		dbGuest.RSVPStatus = *opt.RSVPStatus
		columns = append(columns, dbmodels.GuestColumns.RSVPStatus)
	}
	if opt.AdditionalNotes != nil {
		dbGuest.AdditionalNotes = null.StringFrom(*opt.AdditionalNotes)
		columns = append(columns, dbmodels.GuestColumns.AdditionalNotes)
	}
	if opt.InvitationSentAt != nil {
		dbGuest.IsInvitationSent = true
		dbGuest.InvitationSentAt = null.TimeFrom(*opt.InvitationSentAt)
		columns = append(columns,
			dbmodels.GuestColumns.IsInvitationSent,
			dbmodels.GuestColumns.InvitationSentAt,
		)
	}

	if _, err := dbGuest.Update(ctx, r.db, columns); err != nil {
		return model.Guest{}, err
	}

	return r.toModel(ctx, dbGuest), nil
}

func (r implRepository) Delete(ctx context.Context, id string) error {
	dbGuest := &dbmodels.Guest{ID: id}

	rowsAff, err := dbGuest.Delete(ctx, r.db)
	if err != nil {
		return err
	}
	if rowsAff == 0 {
		return sql.ErrNoRows
	}

	return nil
}
