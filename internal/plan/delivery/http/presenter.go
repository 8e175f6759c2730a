package http

import (
	"time"

	"planora-api/internal/model"
	"planora-api/internal/plan"
	"planora-api/pkg/paginator"
)

const eventDateLayout = "2006-01-02"

// parseEventDate accepts a bare date or a full RFC 3339 timestamp.
func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(eventDateLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

type createPlanReq struct {
	Title       string   `json:"title" binding:"required"`
	EventDate   string   `json:"event_date" binding:"required"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	CategoryID  *int     `json:"category_id"`
	Budget      *float64 `json:"budget"`
	GuestCount  *int     `json:"guest_count"`
	IsPublic    *bool    `json:"is_public"`
}

func (req createPlanReq) toInput() (plan.CreatePlanInput, error) {
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return plan.CreatePlanInput{}, plan.ErrInvalidEventDate
	}

	return plan.CreatePlanInput{
		Title:       req.Title,
		EventDate:   eventDate,
		Description: req.Description,
		Location:    req.Location,
		CategoryID:  req.CategoryID,
		Budget:      req.Budget,
		GuestCount:  req.GuestCount,
		IsPublic:    req.IsPublic,
	}, nil
}

type updatePlanReq struct {
	Title       *string  `json:"title"`
	EventDate   *string  `json:"event_date"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	CategoryID  *int     `json:"category_id"`
	Budget      *float64 `json:"budget"`
	GuestCount  *int     `json:"guest_count"`
	Status      *string  `json:"status"`
	IsPublic    *bool    `json:"is_public"`
}

func (req updatePlanReq) toInput(id string) (plan.UpdatePlanInput, error) {
	input := plan.UpdatePlanInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		CategoryID:  req.CategoryID,
		Budget:      req.Budget,
		GuestCount:  req.GuestCount,
		Status:      req.Status,
		IsPublic:    req.IsPublic,
	}

	if req.EventDate != nil {
		eventDate, err := parseEventDate(*req.EventDate)
		if err != nil {
			return plan.UpdatePlanInput{}, plan.ErrInvalidEventDate
		}
		input.EventDate = &eventDate
	}

	return input, nil
}

type listPlanReq struct {
	paginator.PaginateQuery
	Status     string `form:"status"`
	CategoryID *int   `form:"category_id"`
}

func (req listPlanReq) toInput() plan.ListPlanInput {
	return plan.ListPlanInput{
		PaginateQuery: req.PaginateQuery,
		Status:        req.Status,
		CategoryID:    req.CategoryID,
	}
}

type planResp struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	EventDate   string    `json:"event_date"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	CategoryID  *int      `json:"category_id,omitempty"`
	Budget      *float64  `json:"budget,omitempty"`
	GuestCount  int       `json:"guest_count"`
	Status      string    `json:"status"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newPlanResp(p model.Plan) planResp {
	return planResp{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		EventDate:   p.EventDate.Format(eventDateLayout),
		Description: p.Description,
		Location:    p.Location,
		CategoryID:  p.CategoryID,
		Budget:      p.Budget,
		GuestCount:  p.GuestCount,
		Status:      p.Status,
		IsPublic:    p.IsPublic,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type listPlanResp struct {
	Plans     []planResp                  `json:"plans"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListPlanResp(output plan.ListPlanOutput) listPlanResp {
	plans := make([]planResp, 0, len(output.Plans))
	for _, p := range output.Plans {
		plans = append(plans, newPlanResp(p))
	}

	return listPlanResp{
		Plans:     plans,
		Paginator: output.Paginator.ToResponse(),
	}
}

type statsResp struct {
	TotalPlans     int         `json:"total_plans"`
	UpcomingPlans  int         `json:"upcoming_plans"`
	CompletedPlans int         `json:"completed_plans"`
	TotalGuests    int         `json:"total_guests"`
	ByCategory     map[int]int `json:"by_category"`
}

func newStatsResp(stats plan.StatsOutput) statsResp {
	return statsResp{
		TotalPlans:     stats.TotalPlans,
		UpcomingPlans:  stats.UpcomingPlans,
		CompletedPlans: stats.CompletedPlans,
		TotalGuests:    stats.TotalGuests,
		ByCategory:     stats.ByCategory,
	}
}

type categoryResp struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

func newCategoryResps(categories []model.Category) []categoryResp {
	resps := make([]categoryResp, 0, len(categories))
	for _, c := range categories {
		resps = append(resps, categoryResp{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Icon:        c.Icon,
		})
	}

	return resps
}
