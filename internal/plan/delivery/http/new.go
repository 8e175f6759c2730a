package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/internal/plan"
	"planora-api/pkg/discord"
	"planora-api/pkg/log"
)

// Handler handles the plan HTTP endpoints.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ListCategories(c *gin.Context)
	Stats(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc plan.UseCase
	d  discord.IDiscord
}

// New creates a new plan HTTP handler.
func New(l log.Logger, uc plan.UseCase, d discord.IDiscord) Handler {
	return handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
