package usecase

import (
	"context"
	"database/sql"
	"errors"

	"planora-api/internal/guest"
	"planora-api/internal/model"
	"planora-api/internal/plan"
	pkgErrors "planora-api/pkg/errors"
	pkgPostgres "planora-api/pkg/postgre"
)

// ownedPlan loads the plan and enforces that the scope may manage it.
func (uc implUsecase) ownedPlan(ctx context.Context, sc model.Scope, planID string) (model.Plan, error) {
	if err := pkgPostgres.IsUUID(planID); err != nil {
		return model.Plan{}, plan.ErrPlanNotFound
	}

	p, err := uc.planRepo.Detail(ctx, planID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Plan{}, plan.ErrPlanNotFound
		}
		uc.l.Errorf(ctx, "internal.guest.usecase.ownedPlan: %v", err)
		return model.Plan{}, err
	}

	if !sc.IsAdmin() && p.UserID != sc.UserID {
		return model.Plan{}, pkgErrors.NewForbiddenHTTPError()
	}

	return p, nil
}

func (uc implUsecase) Add(ctx context.Context, sc model.Scope, input guest.AddGuestInput) (model.Guest, error) {
	if _, err := uc.ownedPlan(ctx, sc, input.PlanID); err != nil {
		return model.Guest{}, err
	}

	rsvpStatus := model.RSVPPending
	if input.RSVPStatus != nil {
		if !model.IsValidRSVPStatus(*input.RSVPStatus) {
			return model.Guest{}, guest.ErrInvalidRSVPStatus
		}
		rsvpStatus = *input.RSVPStatus
	}

	g, err := uc.repo.Create(ctx, guest.CreateGuestOption{
		PlanID:          input.PlanID,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		RSVPStatus:      rsvpStatus,
		AdditionalNotes: input.AdditionalNotes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.guest.usecase.Add: %v", err)
		return model.Guest{}, err
	}

	return g, nil
}

func (uc implUsecase) List(ctx context.Context, sc model.Scope, planID string) ([]model.Guest, error) {
	if _, err := uc.ownedPlan(ctx, sc, planID); err != nil {
		return nil, err
	}

	guests, err := uc.repo.ListByPlan(ctx, planID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.guest.usecase.List: %v", err)
		return nil, err
	}

	return guests, nil
}

// ownedGuest loads a guest after enforcing plan ownership. A guest that
// belongs to a different plan than the one in the path does not exist
// as far as the caller is concerned.
func (uc implUsecase) ownedGuest(ctx context.Context, sc model.Scope, planID, guestID string) (model.Guest, error) {
	if _, err := uc.ownedPlan(ctx, sc, planID); err != nil {
		return model.Guest{}, err
	}

	if err := pkgPostgres.IsUUID(guestID); err != nil {
		return model.Guest{}, guest.ErrGuestNotFound
	}

	g, err := uc.repo.Detail(ctx, guestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Guest{}, guest.ErrGuestNotFound
		}
		uc.l.Errorf(ctx, "internal.guest.usecase.ownedGuest: %v", err)
		return model.Guest{}, err
	}
	if g.PlanID != planID {
		return model.Guest{}, guest.ErrGuestNotFound
	}

	return g, nil
}

func (uc implUsecase) Detail(ctx context.Context, sc model.Scope, planID, guestID string) (model.Guest, error) {
	return uc.ownedGuest(ctx, sc, planID, guestID)
}

func (uc implUsecase) Update(ctx context.Context, sc model.Scope, input guest.UpdateGuestInput) (model.Guest, error) {
	if input.RSVPStatus != nil && !model.IsValidRSVPStatus(*input.RSVPStatus) {
		return model.Guest{}, guest.ErrInvalidRSVPStatus
	}

	if _, err := uc.ownedGuest(ctx, sc, input.PlanID, input.GuestID); err != nil {
		return model.Guest{}, err
	}

	updated, err := uc.repo.Update(ctx, guest.UpdateGuestOption{
		ID:              input.GuestID,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		RSVPStatus:      input.RSVPStatus,
		AdditionalNotes: input.AdditionalNotes,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Guest{}, guest.ErrGuestNotFound
		}
		uc.l.Errorf(ctx, "internal.guest.usecase.Update: %v", err)
		return model.Guest{}, err
	}

	return updated, nil
}

func (uc implUsecase) Delete(ctx context.Context, sc model.Scope, planID, guestID string) error {
	if _, err := uc.ownedGuest(ctx, sc, planID, guestID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, guestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return guest.ErrGuestNotFound
		}
		uc.l.Errorf(ctx, "internal.guest.usecase.Delete: %v", err)
		return err
	}

	return nil
}

func (uc implUsecase) Invite(ctx context.Context, sc model.Scope, planID, guestID string) (model.Guest, error) {
	if _, err := uc.ownedGuest(ctx, sc, planID, guestID); err != nil {
		return model.Guest{}, err
	}

	sentAt := uc.clock()

	updated, err := uc.repo.Update(ctx, guest.UpdateGuestOption{
		ID:               guestID,
		InvitationSentAt: &sentAt,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Guest{}, guest.ErrGuestNotFound
		}
		uc.l.Errorf(ctx, "internal.guest.usecase.Invite: %v", err)
		return model.Guest{}, err
	}

	return updated, nil
}
