package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/internal/middleware"
)

// MapAuthRoutes maps the auth endpoints onto the router group.
func MapAuthRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.POST("/accounts/signup", h.Signup)
	r.POST("/accounts/login", h.Login)
	r.POST("/accounts/logout", mw.Auth(), h.Logout)
	r.GET("/accounts/user", mw.Auth(), h.Me)
}
