package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/internal/middleware"
)

// MapPlanRoutes maps the plan endpoints onto the router group.
func MapPlanRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.Use(mw.Auth())

	r.GET("/categories", h.ListCategories)
	r.GET("/stats", h.Stats)

	r.POST("", h.Create)
	r.GET("", h.List)
	r.GET("/:id", h.Detail)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
}
