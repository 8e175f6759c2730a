package middleware

import (
	"github.com/gin-gonic/gin"

	"planora-api/pkg/response"
)

// Recovery recovers from panics in handlers and reports them.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "internal.middleware.Recovery: %v", recovered)
		response.PanicError(c, recovered, m.d)
	})
}
