package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/internal/middleware"
)

// MapGuestRoutes maps the guest endpoints onto the plans router group.
func MapGuestRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.POST("/:id/guests", mw.Auth(), h.Add)
	r.GET("/:id/guests", mw.Auth(), h.List)
	r.GET("/:id/guests/:guest_id", mw.Auth(), h.Detail)
	r.PATCH("/:id/guests/:guest_id", mw.Auth(), h.Update)
	r.DELETE("/:id/guests/:guest_id", mw.Auth(), h.Delete)
	r.POST("/:id/guests/:guest_id/invite", mw.Auth(), h.Invite)
}
