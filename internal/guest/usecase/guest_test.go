package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"planora-api/internal/guest"
	"planora-api/internal/model"
	"planora-api/internal/plan"
	pkgErrors "planora-api/pkg/errors"
	"planora-api/pkg/log"
)

const (
	ownerID    = "2a9d66cb-61c5-4c4b-8e73-74a1b8f0a001"
	strangerID = "2a9d66cb-61c5-4c4b-8e73-74a1b8f0a002"
	planID     = "5b8e77dc-72d6-4d5c-9f84-85b2c9f1b001"
	otherPlan  = "5b8e77dc-72d6-4d5c-9f84-85b2c9f1b002"
	newGuestID = "7c9f88ed-83e7-4e6d-a095-96c3daf2c001"
)

type fakePlanRepo struct {
	plans map[string]model.Plan
}

func (r fakePlanRepo) Create(_ context.Context, _ plan.CreatePlanOption) (model.Plan, error) {
	return model.Plan{}, nil
}

func (r fakePlanRepo) Detail(_ context.Context, id string) (model.Plan, error) {
	p, ok := r.plans[id]
	if !ok {
		return model.Plan{}, sql.ErrNoRows
	}
	return p, nil
}

func (r fakePlanRepo) List(_ context.Context, _ plan.ListPlanOption) (plan.ListPlanResult, error) {
	return plan.ListPlanResult{}, nil
}

func (r fakePlanRepo) Update(_ context.Context, _ plan.UpdatePlanOption) (model.Plan, error) {
	return model.Plan{}, sql.ErrNoRows
}

func (r fakePlanRepo) SoftDelete(_ context.Context, _ string) error { return nil }

func (r fakePlanRepo) ListAllByUser(_ context.Context, _ string) ([]model.Plan, error) {
	return nil, nil
}

func (r fakePlanRepo) ListCategories(_ context.Context) ([]model.Category, error) { return nil, nil }

func (r fakePlanRepo) CategoryExists(_ context.Context, _ int) (bool, error) { return false, nil }

type fakeGuestRepo struct {
	guests  map[string]model.Guest
	deleted []string
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{guests: map[string]model.Guest{}}
}

func (r *fakeGuestRepo) Create(_ context.Context, opt guest.CreateGuestOption) (model.Guest, error) {
	g := model.Guest{
		ID:         newGuestID,
		PlanID:     opt.PlanID,
		Name:       opt.Name,
		Email:      opt.Email,
		Phone:      opt.Phone,
		RSVPStatus: opt.RSVPStatus,
	}
	r.guests[g.ID] = g
	return g, nil
}

func (r *fakeGuestRepo) Detail(_ context.Context, id string) (model.Guest, error) {
	g, ok := r.guests[id]
	if !ok {
		return model.Guest{}, sql.ErrNoRows
	}
	return g, nil
}

func (r *fakeGuestRepo) ListByPlan(_ context.Context, planID string) ([]model.Guest, error) {
	var guests []model.Guest
	for _, g := range r.guests {
		if g.PlanID == planID {
			guests = append(guests, g)
		}
	}
	return guests, nil
}

func (r *fakeGuestRepo) Update(_ context.Context, opt guest.UpdateGuestOption) (model.Guest, error) {
	g, ok := r.guests[opt.ID]
	if !ok {
		return model.Guest{}, sql.ErrNoRows
	}
	if opt.RSVPStatus != nil {
		g.RSVPStatus = *opt.RSVPStatus
	}
	if opt.InvitationSentAt != nil {
		g.IsInvitationSent = true
		g.InvitationSentAt = opt.InvitationSentAt
	}
	r.guests[opt.ID] = g
	return g, nil
}

func (r *fakeGuestRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.guests[id]; !ok {
		return sql.ErrNoRows
	}
	r.deleted = append(r.deleted, id)
	delete(r.guests, id)
	return nil
}

func newTestUsecase(repo guest.Repository) guest.UseCase {
	planRepo := fakePlanRepo{plans: map[string]model.Plan{
		planID:    {ID: planID, UserID: ownerID},
		otherPlan: {ID: otherPlan, UserID: ownerID},
	}}
	return New(log.Init(log.ZapConfig{Level: "fatal"}), repo, planRepo)
}

func isForbidden(err error) bool {
	var httpErr *pkgErrors.HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == 403
}

func TestAdd(t *testing.T) {
	repo := newFakeGuestRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()
	owner := model.Scope{UserID: ownerID, Role: model.RoleMember}

	g, err := uc.Add(ctx, owner, guest.AddGuestInput{PlanID: planID, Name: "Bob"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if g.RSVPStatus != model.RSVPPending {
		t.Errorf("rsvp = %q, want %q", g.RSVPStatus, model.RSVPPending)
	}

	bad := "probably"
	if _, err := uc.Add(ctx, owner, guest.AddGuestInput{PlanID: planID, Name: "Bob", RSVPStatus: &bad}); !errors.Is(err, guest.ErrInvalidRSVPStatus) {
		t.Errorf("err = %v, want %v", err, guest.ErrInvalidRSVPStatus)
	}

	stranger := model.Scope{UserID: strangerID, Role: model.RoleMember}
	if _, err := uc.Add(ctx, stranger, guest.AddGuestInput{PlanID: planID, Name: "Mallory"}); !isForbidden(err) {
		t.Errorf("err = %v, want forbidden", err)
	}

	if _, err := uc.Add(ctx, owner, guest.AddGuestInput{PlanID: "5b8e77dc-72d6-4d5c-9f84-85b2c9f1ffff", Name: "Bob"}); !errors.Is(err, plan.ErrPlanNotFound) {
		t.Errorf("err = %v, want %v", err, plan.ErrPlanNotFound)
	}
}

func TestUpdate_RSVP(t *testing.T) {
	repo := newFakeGuestRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()
	owner := model.Scope{UserID: ownerID, Role: model.RoleMember}

	g, err := uc.Add(ctx, owner, guest.AddGuestInput{PlanID: planID, Name: "Bob"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	confirmed := model.RSVPConfirmed
	updated, err := uc.Update(ctx, owner, guest.UpdateGuestInput{PlanID: planID, GuestID: g.ID, RSVPStatus: &confirmed})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.RSVPStatus != model.RSVPConfirmed {
		t.Errorf("rsvp = %q, want %q", updated.RSVPStatus, model.RSVPConfirmed)
	}

	// A guest reached through the wrong plan does not exist.
	if _, err := uc.Update(ctx, owner, guest.UpdateGuestInput{PlanID: otherPlan, GuestID: g.ID, RSVPStatus: &confirmed}); !errors.Is(err, guest.ErrGuestNotFound) {
		t.Errorf("err = %v, want %v", err, guest.ErrGuestNotFound)
	}

	// A malformed guest id never reaches the database.
	if _, err := uc.Update(ctx, owner, guest.UpdateGuestInput{PlanID: planID, GuestID: "not-a-uuid", RSVPStatus: &confirmed}); !errors.Is(err, guest.ErrGuestNotFound) {
		t.Errorf("err = %v, want %v", err, guest.ErrGuestNotFound)
	}
}

func TestDetail(t *testing.T) {
	repo := newFakeGuestRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()
	owner := model.Scope{UserID: ownerID, Role: model.RoleMember}

	g, err := uc.Add(ctx, owner, guest.AddGuestInput{PlanID: planID, Name: "Bob"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := uc.Detail(ctx, owner, planID, g.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if got.ID != g.ID || got.Name != "Bob" {
		t.Errorf("Detail = %+v, want guest %s", got, g.ID)
	}

	if _, err := uc.Detail(ctx, model.Scope{UserID: strangerID, Role: model.RoleMember}, planID, g.ID); !isForbidden(err) {
		t.Errorf("err = %v, want forbidden", err)
	}
	if _, err := uc.Detail(ctx, owner, otherPlan, g.ID); !errors.Is(err, guest.ErrGuestNotFound) {
		t.Errorf("err = %v, want %v", err, guest.ErrGuestNotFound)
	}
	if _, err := uc.Detail(ctx, owner, planID, "not-a-uuid"); !errors.Is(err, guest.ErrGuestNotFound) {
		t.Errorf("err = %v, want %v", err, guest.ErrGuestNotFound)
	}
}

func TestInvite(t *testing.T) {
	repo := newFakeGuestRepo()
	uc := newTestUsecase(repo).(*implUsecase)
	sentAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	uc.clock = func() time.Time { return sentAt }

	ctx := context.Background()
	owner := model.Scope{UserID: ownerID, Role: model.RoleMember}

	g, err := uc.Add(ctx, owner, guest.AddGuestInput{PlanID: planID, Name: "Bob"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	invited, err := uc.Invite(ctx, owner, planID, g.ID)
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}
	if !invited.IsInvitationSent {
		t.Error("IsInvitationSent = false, want true")
	}
	if invited.InvitationSentAt == nil || !invited.InvitationSentAt.Equal(sentAt) {
		t.Errorf("InvitationSentAt = %v, want %v", invited.InvitationSentAt, sentAt)
	}

	if _, err := uc.Invite(ctx, model.Scope{UserID: strangerID, Role: model.RoleMember}, planID, g.ID); !isForbidden(err) {
		t.Errorf("err = %v, want forbidden", err)
	}
	if _, err := uc.Invite(ctx, owner, planID, "7c9f88ed-83e7-4e6d-a095-96c3daf2cfff"); !errors.Is(err, guest.ErrGuestNotFound) {
		t.Errorf("err = %v, want %v", err, guest.ErrGuestNotFound)
	}
}

func TestDelete(t *testing.T) {
	repo := newFakeGuestRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()
	owner := model.Scope{UserID: ownerID, Role: model.RoleMember}

	g, err := uc.Add(ctx, owner, guest.AddGuestInput{PlanID: planID, Name: "Bob"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := uc.Delete(ctx, model.Scope{UserID: strangerID, Role: model.RoleMember}, planID, g.ID); !isForbidden(err) {
		t.Errorf("err = %v, want forbidden", err)
	}

	if err := uc.Delete(ctx, owner, planID, g.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete(ctx, owner, planID, g.ID); !errors.Is(err, guest.ErrGuestNotFound) {
		t.Errorf("err = %v, want %v", err, guest.ErrGuestNotFound)
	}

	if err := uc.Delete(ctx, owner, planID, "not-a-uuid"); !errors.Is(err, guest.ErrGuestNotFound) {
		t.Errorf("err = %v, want %v", err, guest.ErrGuestNotFound)
	}
}
