package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/internal/middleware"
	"planora-api/internal/model"
)

// MapUserRoutes maps the user endpoints onto the router group.
func MapUserRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.Use(mw.Auth())

	r.GET("", mw.RequireRole(model.RoleAdmin), h.List)
	r.GET("/:id", h.Detail)
	r.PATCH("/me", h.UpdateProfile)
	r.PUT("/me/avatar", h.UploadAvatar)
}
