package guest

import (
	"context"

	"planora-api/internal/model"
)

// UseCase is the interface for the guest usecase. Every operation is
// scoped to the owner of the parent plan.
type UseCase interface {
	Add(ctx context.Context, sc model.Scope, input AddGuestInput) (model.Guest, error)
	List(ctx context.Context, sc model.Scope, planID string) ([]model.Guest, error)
	Detail(ctx context.Context, sc model.Scope, planID, guestID string) (model.Guest, error)
	Update(ctx context.Context, sc model.Scope, input UpdateGuestInput) (model.Guest, error)
	Delete(ctx context.Context, sc model.Scope, planID, guestID string) error
	// Invite marks the guest's invitation as sent.
	Invite(ctx context.Context, sc model.Scope, planID, guestID string) (model.Guest, error)
}

// Repository is the interface for the guest repository. Implementations
// own the at-rest encryption of guest phone numbers.
type Repository interface {
	Create(ctx context.Context, opt CreateGuestOption) (model.Guest, error)
	Detail(ctx context.Context, id string) (model.Guest, error)
	ListByPlan(ctx context.Context, planID string) ([]model.Guest, error)
	Update(ctx context.Context, opt UpdateGuestOption) (model.Guest, error)
	Delete(ctx context.Context, id string) error
}
