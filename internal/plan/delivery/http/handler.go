package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/pkg/response"
	"planora-api/pkg/scope"
)

// Create creates a new plan for the caller.
func (h handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.plan.delivery.http.Create: bind body: %v", err)
		response.Error(c, err, h.d)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	p, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.Created(c, newPlanResp(p))
}

// List returns the caller's plans.
func (h handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listPlanReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.plan.delivery.http.List: bind query: %v", err)
		response.Error(c, err, h.d)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newListPlanResp(output))
}

// Detail returns a single plan.
func (h handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	p, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newPlanResp(p))
}

// Update updates a plan.
func (h handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updatePlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.plan.delivery.http.Update: bind body: %v", err)
		response.Error(c, err, h.d)
		return
	}

	input, err := req.toInput(c.Param("id"))
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	p, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newPlanResp(p))
}

// Delete soft deletes a plan.
func (h handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, nil)
}

// Stats summarizes the caller's plans.
func (h handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	stats, err := h.uc.Stats(ctx, sc)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newStatsResp(stats))
}

// ListCategories returns the global category list.
func (h handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.uc.ListCategories(ctx)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newCategoryResps(categories))
}
