package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/pkg/response"
	"planora-api/pkg/scope"
)

// Signup registers a new member account.
func (h handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.Signup: bind body: %v", err)
		response.Error(c, err, h.d)
		return
	}

	output, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.Created(c, newTokenResp(output))
}

// Login exchanges credentials for a session token.
func (h handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.Login: bind body: %v", err)
		response.Error(c, err, h.d)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newTokenResp(output))
}

// Logout revokes the presented token.
func (h handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	payload, ok := scope.GetPayloadFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Logout(ctx, payload); err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, nil)
}

// Me returns the authenticated account.
func (h handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	u, err := h.uc.Me(ctx, sc)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newAccountResp(u))
}
