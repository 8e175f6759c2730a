package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"planora-api/internal/model"
	"planora-api/internal/plan"
	pkgErrors "planora-api/pkg/errors"
	"planora-api/pkg/log"
)

const (
	ownerID    = "2a9d66cb-61c5-4c4b-8e73-74a1b8f0a001"
	strangerID = "2a9d66cb-61c5-4c4b-8e73-74a1b8f0a002"

	privatePlanID = "5b8e77dc-72d6-4d5c-9f84-85b2c9f1b001"
	publicPlanID  = "5b8e77dc-72d6-4d5c-9f84-85b2c9f1b002"
)

type fakePlanRepo struct {
	plans      map[string]model.Plan
	categories map[int]model.Category
	deleted    []string
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{
		plans:      map[string]model.Plan{},
		categories: map[int]model.Category{},
	}
}

func (r *fakePlanRepo) Create(_ context.Context, opt plan.CreatePlanOption) (model.Plan, error) {
	p := model.Plan{
		ID:         "created-plan",
		UserID:     opt.UserID,
		Title:      opt.Title,
		EventDate:  opt.EventDate,
		CategoryID: opt.CategoryID,
		GuestCount: opt.GuestCount,
		Status:     opt.Status,
		IsPublic:   opt.IsPublic,
	}
	r.plans[p.ID] = p
	return p, nil
}

func (r *fakePlanRepo) Detail(_ context.Context, id string) (model.Plan, error) {
	p, ok := r.plans[id]
	if !ok {
		return model.Plan{}, sql.ErrNoRows
	}
	return p, nil
}

func (r *fakePlanRepo) List(_ context.Context, opt plan.ListPlanOption) (plan.ListPlanResult, error) {
	var plans []model.Plan
	for _, p := range r.plans {
		if p.UserID == opt.UserID {
			plans = append(plans, p)
		}
	}
	return plan.ListPlanResult{Plans: plans}, nil
}

func (r *fakePlanRepo) Update(_ context.Context, opt plan.UpdatePlanOption) (model.Plan, error) {
	p, ok := r.plans[opt.ID]
	if !ok {
		return model.Plan{}, sql.ErrNoRows
	}
	if opt.Title != nil {
		p.Title = *opt.Title
	}
	if opt.Status != nil {
		p.Status = *opt.Status
	}
	r.plans[opt.ID] = p
	return p, nil
}

func (r *fakePlanRepo) SoftDelete(_ context.Context, id string) error {
	if _, ok := r.plans[id]; !ok {
		return sql.ErrNoRows
	}
	r.deleted = append(r.deleted, id)
	delete(r.plans, id)
	return nil
}

func (r *fakePlanRepo) ListAllByUser(_ context.Context, userID string) ([]model.Plan, error) {
	var plans []model.Plan
	for _, p := range r.plans {
		if p.UserID == userID {
			plans = append(plans, p)
		}
	}
	return plans, nil
}

func (r *fakePlanRepo) ListCategories(_ context.Context) ([]model.Category, error) {
	var categories []model.Category
	for _, c := range r.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *fakePlanRepo) CategoryExists(_ context.Context, id int) (bool, error) {
	_, ok := r.categories[id]
	return ok, nil
}

func seededRepo() *fakePlanRepo {
	repo := newFakePlanRepo()
	repo.categories[1] = model.Category{ID: 1, Name: "Wedding"}
	repo.plans[privatePlanID] = model.Plan{ID: privatePlanID, UserID: ownerID, Title: "Private", Status: model.PlanStatusPlanned}
	repo.plans[publicPlanID] = model.Plan{ID: publicPlanID, UserID: ownerID, Title: "Public", Status: model.PlanStatusPlanned, IsPublic: true}
	return repo
}

func newTestUsecase(repo plan.Repository) plan.UseCase {
	return New(log.Init(log.ZapConfig{Level: "fatal"}), repo)
}

func isForbidden(err error) bool {
	var httpErr *pkgErrors.HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == 403
}

func TestCreate(t *testing.T) {
	repo := seededRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()
	sc := model.Scope{UserID: ownerID, Role: model.RoleMember}

	eventDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	categoryID := 1

	p, err := uc.Create(ctx, sc, plan.CreatePlanInput{
		Title:      "Birthday",
		EventDate:  eventDate,
		CategoryID: &categoryID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.UserID != ownerID {
		t.Errorf("owner = %q, want %q", p.UserID, ownerID)
	}
	if p.Status != model.PlanStatusPlanned {
		t.Errorf("status = %q, want %q", p.Status, model.PlanStatusPlanned)
	}

	missingCategory := 99
	_, err = uc.Create(ctx, sc, plan.CreatePlanInput{
		Title:      "Birthday",
		EventDate:  eventDate,
		CategoryID: &missingCategory,
	})
	if !errors.Is(err, plan.ErrCategoryNotFound) {
		t.Errorf("err = %v, want %v", err, plan.ErrCategoryNotFound)
	}

	_, err = uc.Create(ctx, sc, plan.CreatePlanInput{Title: "No date"})
	if !errors.Is(err, plan.ErrInvalidEventDate) {
		t.Errorf("err = %v, want %v", err, plan.ErrInvalidEventDate)
	}
}

func TestDetail_Ownership(t *testing.T) {
	uc := newTestUsecase(seededRepo())
	ctx := context.Background()

	tests := []struct {
		name          string
		sc            model.Scope
		planID        string
		wantForbidden bool
	}{
		{name: "owner sees private plan", sc: model.Scope{UserID: ownerID, Role: model.RoleMember}, planID: privatePlanID},
		{name: "stranger sees public plan", sc: model.Scope{UserID: strangerID, Role: model.RoleMember}, planID: publicPlanID},
		{name: "admin sees private plan", sc: model.Scope{UserID: strangerID, Role: model.RoleAdmin}, planID: privatePlanID},
		{name: "stranger blocked from private plan", sc: model.Scope{UserID: strangerID, Role: model.RoleMember}, planID: privatePlanID, wantForbidden: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Detail(ctx, tt.sc, tt.planID)
			if tt.wantForbidden {
				if !isForbidden(err) {
					t.Errorf("err = %v, want forbidden", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Detail: %v", err)
			}
		})
	}

	_, err := uc.Detail(ctx, model.Scope{UserID: ownerID, Role: model.RoleMember}, "2a9d66cb-61c5-4c4b-8e73-74a1b8f0ffff")
	if !errors.Is(err, plan.ErrPlanNotFound) {
		t.Errorf("err = %v, want %v", err, plan.ErrPlanNotFound)
	}
	_, err = uc.Detail(ctx, model.Scope{UserID: ownerID, Role: model.RoleMember}, "not-a-uuid")
	if !errors.Is(err, plan.ErrPlanNotFound) {
		t.Errorf("err = %v, want %v", err, plan.ErrPlanNotFound)
	}
}

func TestUpdate(t *testing.T) {
	repo := seededRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()
	owner := model.Scope{UserID: ownerID, Role: model.RoleMember}
	stranger := model.Scope{UserID: strangerID, Role: model.RoleMember}

	newStatus := model.PlanStatusCompleted
	p, err := uc.Update(ctx, owner, plan.UpdatePlanInput{ID: privatePlanID, Status: &newStatus})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Status != model.PlanStatusCompleted {
		t.Errorf("status = %q, want %q", p.Status, model.PlanStatusCompleted)
	}

	badStatus := "launched"
	_, err = uc.Update(ctx, owner, plan.UpdatePlanInput{ID: privatePlanID, Status: &badStatus})
	if !errors.Is(err, plan.ErrInvalidStatus) {
		t.Errorf("err = %v, want %v", err, plan.ErrInvalidStatus)
	}

	title := "Hijacked"
	_, err = uc.Update(ctx, stranger, plan.UpdatePlanInput{ID: privatePlanID, Title: &title})
	if !isForbidden(err) {
		t.Errorf("err = %v, want forbidden", err)
	}
}

func TestDelete(t *testing.T) {
	repo := seededRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()

	if err := uc.Delete(ctx, model.Scope{UserID: strangerID, Role: model.RoleMember}, privatePlanID); !isForbidden(err) {
		t.Errorf("err = %v, want forbidden", err)
	}

	if err := uc.Delete(ctx, model.Scope{UserID: ownerID, Role: model.RoleMember}, privatePlanID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != privatePlanID {
		t.Errorf("deleted = %v, want [%s]", repo.deleted, privatePlanID)
	}

	if err := uc.Delete(ctx, model.Scope{UserID: ownerID, Role: model.RoleMember}, privatePlanID); !errors.Is(err, plan.ErrPlanNotFound) {
		t.Errorf("err = %v, want %v", err, plan.ErrPlanNotFound)
	}
}

func TestStats(t *testing.T) {
	repo := seededRepo()
	weddingID := 1
	repo.plans[privatePlanID] = model.Plan{ID: privatePlanID, UserID: ownerID, Status: model.PlanStatusPlanned, GuestCount: 40, CategoryID: &weddingID}
	repo.plans[publicPlanID] = model.Plan{ID: publicPlanID, UserID: ownerID, Status: model.PlanStatusCompleted, GuestCount: 10, CategoryID: &weddingID}
	repo.plans["3f1a2b3c-4d5e-4f60-8a9b-0c1d2e3f4a5b"] = model.Plan{ID: "3f1a2b3c-4d5e-4f60-8a9b-0c1d2e3f4a5b", UserID: ownerID, Status: model.PlanStatusCancelled, GuestCount: 5}
	repo.plans["9e8d7c6b-5a49-4837-b261-504132231405"] = model.Plan{ID: "9e8d7c6b-5a49-4837-b261-504132231405", UserID: strangerID, Status: model.PlanStatusPlanned, GuestCount: 200}
	uc := newTestUsecase(repo)
	ctx := context.Background()

	stats, err := uc.Stats(ctx, model.Scope{UserID: ownerID, Role: model.RoleMember})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalPlans != 3 {
		t.Errorf("total plans = %d, want 3", stats.TotalPlans)
	}
	if stats.UpcomingPlans != 1 {
		t.Errorf("upcoming plans = %d, want 1", stats.UpcomingPlans)
	}
	if stats.CompletedPlans != 1 {
		t.Errorf("completed plans = %d, want 1", stats.CompletedPlans)
	}
	if stats.TotalGuests != 55 {
		t.Errorf("total guests = %d, want 55", stats.TotalGuests)
	}
	if stats.ByCategory[weddingID] != 2 {
		t.Errorf("wedding plans = %d, want 2", stats.ByCategory[weddingID])
	}
}
