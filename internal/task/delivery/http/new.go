package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/internal/task"
	"planora-api/pkg/discord"
	"planora-api/pkg/log"
)

// Handler handles the task HTTP endpoints.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
	d  discord.IDiscord
}

// New creates a new task HTTP handler.
func New(l log.Logger, uc task.UseCase, d discord.IDiscord) Handler {
	return handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
