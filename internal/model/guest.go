package model

import (
	"time"

	"planora-api/internal/dbmodels"
)

// Guest RSVP status values.
const (
	RSVPPending   = "pending"
	RSVPConfirmed = "confirmed"
	RSVPDeclined  = "declined"
	RSVPMaybe     = "maybe"
)

// Guest represents an invited guest of a plan.
// The Phone field holds plaintext in the domain layer; the repository
// encrypts it before persisting and decrypts it on read.
type Guest struct {
	ID               string     `json:"id"`
	PlanID           string     `json:"plan_id"`
	Name             string     `json:"name"`
	Email            *string    `json:"email,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	RSVPStatus       string     `json:"rsvp_status"`
	IsInvitationSent bool       `json:"is_invitation_sent"`
	InvitationSentAt *time.Time `json:"invitation_sent_at,omitempty"`
	AdditionalNotes  *string    `json:"additional_notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsValidRSVPStatus reports whether s is an accepted RSVP status.
func IsValidRSVPStatus(s string) bool {
	switch s {
	case RSVPPending, RSVPConfirmed, RSVPDeclined, RSVPMaybe:
		return true
	}
	return false
}

// NewGuestFromDB converts a database Guest row to a domain Guest model.
func NewGuestFromDB(dbGuest *dbmodels.Guest) *Guest {
	guest := &Guest{
		ID:               dbGuest.ID,
		PlanID:           dbGuest.PlanID,
		Name:             dbGuest.Name,
		RSVPStatus:       dbGuest.RSVPStatus,
		IsInvitationSent: dbGuest.IsInvitationSent,
		CreatedAt:        dbGuest.CreatedAt.Time,
		UpdatedAt:        dbGuest.UpdatedAt.Time,
	}

	if dbGuest.Email.Valid {
		guest.Email = &dbGuest.Email.String
	}
	if dbGuest.Phone.Valid {
		guest.Phone = &dbGuest.Phone.String
	}
	if dbGuest.InvitationSentAt.Valid {
		guest.InvitationSentAt = &dbGuest.InvitationSentAt.Time
	}
	if dbGuest.AdditionalNotes.Valid {
		guest.AdditionalNotes = &dbGuest.AdditionalNotes.String
	}

	return guest
}
