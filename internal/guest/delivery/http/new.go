package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/internal/guest"
	"planora-api/pkg/discord"
	"planora-api/pkg/log"
)

// Handler handles the guest HTTP endpoints.
type Handler interface {
	Add(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Invite(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc guest.UseCase
	d  discord.IDiscord
}

// New creates a new guest HTTP handler.
func New(l log.Logger, uc guest.UseCase, d discord.IDiscord) Handler {
	return handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
