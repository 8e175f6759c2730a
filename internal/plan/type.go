package plan

import (
	"time"

	"planora-api/internal/model"
	"planora-api/pkg/paginator"
)

// CreatePlanInput is the input for creating a plan.
type CreatePlanInput struct {
	Title       string
	EventDate   time.Time
	Description *string
	Location    *string
	CategoryID  *int
	Budget      *float64
	GuestCount  *int
	IsPublic    *bool
}

// UpdatePlanInput is the input for updating a plan. Nil fields are left
// untouched.
type UpdatePlanInput struct {
	ID          string
	Title       *string
	EventDate   *time.Time
	Description *string
	Location    *string
	CategoryID  *int
	Budget      *float64
	GuestCount  *int
	Status      *string
	IsPublic    *bool
}

// ListPlanInput is the input for listing the caller's plans.
type ListPlanInput struct {
	PaginateQuery paginator.PaginateQuery
	Status        string
	CategoryID    *int
}

// ListPlanOutput is the output of listing plans.
type ListPlanOutput struct {
	Plans     []model.Plan
	Paginator paginator.Paginator
}

// StatsOutput summarizes the caller's plans.
type StatsOutput struct {
	TotalPlans     int
	UpcomingPlans  int
	CompletedPlans int
	TotalGuests    int
	ByCategory     map[int]int
}

// CreatePlanOption is the option to create a plan row.
type CreatePlanOption struct {
	UserID      string
	Title       string
	EventDate   time.Time
	Description *string
	Location    *string
	CategoryID  *int
	Budget      *float64
	GuestCount  int
	Status      string
	IsPublic    bool
}

// UpdatePlanOption is the option to update a plan row.
type UpdatePlanOption struct {
	ID          string
	Title       *string
	EventDate   *time.Time
	Description *string
	Location    *string
	CategoryID  *int
	Budget      *float64
	GuestCount  *int
	Status      *string
	IsPublic    *bool
}

// ListPlanOption is the option to filter the plan list.
type ListPlanOption struct {
	PaginateQuery paginator.PaginateQuery
	UserID        string
	Status        string
	CategoryID    *int
}

// ListPlanResult is the result of listing plans.
type ListPlanResult struct {
	Plans     []model.Plan
	Paginator paginator.Paginator
}
