package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/internal/middleware"
)

// MapTaskRoutes maps the task endpoints onto the plans router group.
func MapTaskRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.POST("/:id/tasks", mw.Auth(), h.Create)
	r.GET("/:id/tasks", mw.Auth(), h.List)
	r.PATCH("/:id/tasks/:task_id", mw.Auth(), h.Update)
	r.DELETE("/:id/tasks/:task_id", mw.Auth(), h.Delete)
}
