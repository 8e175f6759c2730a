package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/internal/auth"
	"planora-api/pkg/discord"
	"planora-api/pkg/log"
)

// Handler handles the auth HTTP endpoints.
type Handler interface {
	Signup(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
	d  discord.IDiscord
}

// New creates a new auth HTTP handler.
func New(l log.Logger, uc auth.UseCase, d discord.IDiscord) Handler {
	return handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
