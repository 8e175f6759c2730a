package http

import (
	"github.com/gin-gonic/gin"

	"planora-api/internal/user"
	"planora-api/pkg/response"
	"planora-api/pkg/scope"
)

// Detail returns a single user.
func (h handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	u, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newUserResp(u))
}

// List returns users with pagination, admin only.
func (h handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.List: bind query: %v", err)
		response.Error(c, err, h.d)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newListResp(output))
}

// UpdateProfile updates the caller's profile.
func (h handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.UpdateProfile: bind body: %v", err)
		response.Error(c, err, h.d)
		return
	}

	u, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newUserResp(u))
}

// UploadAvatar stores a new avatar for the caller.
func (h handler) UploadAvatar(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.UploadAvatar: form file: %v", err)
		response.Error(c, user.ErrUnsupportedAvatar, h.d)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.l.Errorf(ctx, "internal.user.delivery.http.UploadAvatar: open file: %v", err)
		response.Error(c, err, h.d)
		return
	}
	defer file.Close()

	output, err := h.uc.UploadAvatar(ctx, sc, user.UploadAvatarInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	response.OK(c, newUploadAvatarResp(output))
}
