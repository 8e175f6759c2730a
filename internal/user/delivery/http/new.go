package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/internal/user"
	"planora-api/pkg/discord"
	"planora-api/pkg/log"
)

// Handler handles the user HTTP endpoints.
type Handler interface {
	Detail(c *gin.Context)
	List(c *gin.Context)
	UpdateProfile(c *gin.Context)
	UploadAvatar(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
	d  discord.IDiscord
}

// New creates a new user HTTP handler.
func New(l log.Logger, uc user.UseCase, d discord.IDiscord) Handler {
	return handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
