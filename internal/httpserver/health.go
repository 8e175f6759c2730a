package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (srv *HTTPServer) live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// ready checks the backing services the request path depends on.
func (srv *HTTPServer) ready(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.cfg.DB.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.ready: postgres: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "component": "postgres"})
		return
	}

	if err := srv.cfg.Redis.Ping(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.ready: redis: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "component": "redis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
