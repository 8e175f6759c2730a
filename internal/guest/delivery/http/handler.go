package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/pkg/response"
	"planora-api/pkg/scope"
)

// Add adds a guest to a plan.
func (h handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req addGuestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.guest.delivery.http.Add: bind body: %v", err)
		response.Error(c, err, h.d)
		return
	}

	g, err := h.uc.Add(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.Created(c, newGuestResp(g))
}

// List returns the guests of a plan.
func (h handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	guests, err := h.uc.List(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newGuestResps(guests))
}

// Detail returns a single guest of a plan.
func (h handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	g, err := h.uc.Detail(ctx, sc, c.Param("id"), c.Param("guest_id"))
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newGuestResp(g))
}

// Update updates a guest, typically its RSVP status.
func (h handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateGuestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.guest.delivery.http.Update: bind body: %v", err)
		response.Error(c, err, h.d)
		return
	}

	g, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id"), c.Param("guest_id")))
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newGuestResp(g))
}

// Delete removes a guest from a plan.
func (h handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id"), c.Param("guest_id")); err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, nil)
}

// Invite marks a guest's invitation as sent.
func (h handler) Invite(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	g, err := h.uc.Invite(ctx, sc, c.Param("id"), c.Param("guest_id"))
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newGuestResp(g))
}
