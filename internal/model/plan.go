package model

import (
	"time"

	"planora-api/internal/dbmodels"
)

// Plan status values.
const (
	PlanStatusPlanned    = "planned"
	PlanStatusInProgress = "in_progress"
	PlanStatusCompleted  = "completed"
	PlanStatusCancelled  = "cancelled"
)

// Plan represents an event plan entity in the domain layer.
// This is a safe type model that doesn't depend on database-specific types.
type Plan struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	EventDate   time.Time  `json:"event_date"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	CategoryID  *int       `json:"category_id,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	GuestCount  int        `json:"guest_count"`
	Status      string     `json:"status"`
	IsPublic    bool       `json:"is_public"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// IsValidPlanStatus reports whether s is an accepted plan status.
func IsValidPlanStatus(s string) bool {
	switch s {
	case PlanStatusPlanned, PlanStatusInProgress, PlanStatusCompleted, PlanStatusCancelled:
		return true
	}
	return false
}

// NewPlanFromDB converts a database Plan row to a domain Plan model.
// It safely handles null values from the database.
func NewPlanFromDB(dbPlan *dbmodels.Plan) *Plan {
	plan := &Plan{
		ID:         dbPlan.ID,
		UserID:     dbPlan.UserID,
		Title:      dbPlan.Title,
		EventDate:  dbPlan.EventDate,
		GuestCount: dbPlan.GuestCount,
		Status:     dbPlan.Status,
		IsPublic:   dbPlan.IsPublic,
		CreatedAt:  dbPlan.CreatedAt.Time,
		UpdatedAt:  dbPlan.UpdatedAt.Time,
	}

	if dbPlan.Description.Valid {
		plan.Description = &dbPlan.Description.String
	}
	if dbPlan.Location.Valid {
		plan.Location = &dbPlan.Location.String
	}
	if dbPlan.CategoryID.Valid {
		plan.CategoryID = &dbPlan.CategoryID.Int
	}
	if dbPlan.Budget.Valid {
		plan.Budget = &dbPlan.Budget.Float64
	}
	if dbPlan.DeletedAt.Valid {
		plan.DeletedAt = &dbPlan.DeletedAt.Time
	}

	return plan
}
