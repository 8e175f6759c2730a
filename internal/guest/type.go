package guest

import "time"

// AddGuestInput is the input for adding a guest to a plan.
type AddGuestInput struct {
	PlanID          string
	Name            string
	Email           *string
	Phone           *string
	RSVPStatus      *string
	AdditionalNotes *string
}

// UpdateGuestInput is the input for updating a guest. Nil fields are
// left untouched.
type UpdateGuestInput struct {
	PlanID          string
	GuestID         string
	Name            *string
	Email           *string
	Phone           *string
	RSVPStatus      *string
	AdditionalNotes *string
}

// CreateGuestOption is the option to create a guest row.
type CreateGuestOption struct {
	PlanID          string
	Name            string
	Email           *string
	Phone           *string
	RSVPStatus      string
	AdditionalNotes *string
}

// UpdateGuestOption is the option to update a guest row.
// InvitationSentAt is set by the usecase when the invitation goes out.
type UpdateGuestOption struct {
	ID               string
	Name             *string
	Email            *string
	Phone            *string
	RSVPStatus       *string
	AdditionalNotes  *string
	InvitationSentAt *time.Time
}
