package http

import (
	"time"

	"planora-api/internal/guest"
	"planora-api/internal/model"
)

type addGuestReq struct {
	Name            string  `json:"name" binding:"required"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	RSVPStatus      *string `json:"rsvp_status"`
	AdditionalNotes *string `json:"additional_notes"`
}

func (req addGuestReq) toInput(planID string) guest.AddGuestInput {
	return guest.AddGuestInput{
		PlanID:          planID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		RSVPStatus:      req.RSVPStatus,
		AdditionalNotes: req.AdditionalNotes,
	}
}

type updateGuestReq struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	RSVPStatus      *string `json:"rsvp_status"`
	AdditionalNotes *string `json:"additional_notes"`
}

func (req updateGuestReq) toInput(planID, guestID string) guest.UpdateGuestInput {
	return guest.UpdateGuestInput{
		PlanID:          planID,
		GuestID:         guestID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		RSVPStatus:      req.RSVPStatus,
		AdditionalNotes: req.AdditionalNotes,
	}
}

type guestResp struct {
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
}

func newGuestResp(g model.Guest) guestResp {
	return guestResp{
		ID:               g.ID,
		PlanID:           g.PlanID,
		Name:             g.Name,
		Email:            g.Email,
		Phone:            g.Phone,
		RSVPStatus:       g.RSVPStatus,
		IsInvitationSent: g.IsInvitationSent,
		InvitationSentAt: g.InvitationSentAt,
		AdditionalNotes:  g.AdditionalNotes,
		CreatedAt:        g.CreatedAt,
	}
}

func newGuestResps(guests []model.Guest) []guestResp {
	resps := make([]guestResp, 0, len(guests))
	for _, g := range guests {
		resps = append(resps, newGuestResp(g))
	}

	return resps
}
