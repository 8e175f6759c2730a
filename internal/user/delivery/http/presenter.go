package http

import (
	"time"

	"planora-api/internal/model"
	"planora-api/internal/user"
	"planora-api/pkg/paginator"
)

type updateProfileReq struct {
	FullName *string `json:"full_name"`
}

func (req updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{
		FullName: req.FullName,
	}
}

type listReq struct {
	paginator.PaginateQuery
	Role  string `form:"role"`
	Email string `form:"email"`
}

func (req listReq) toInput() user.ListInput {
	return user.ListInput{
		PaginateQuery: req.PaginateQuery,
		Role:          req.Role,
		Email:         req.Email,
	}
}

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type listResp struct {
	Users     []userResp                    `json:"users"`
	Paginator paginator.PaginatorResponse   `json:"paginator"`
}

func newListResp(output user.ListOutput) listResp {
	users := make([]userResp, 0, len(output.Users))
	for _, u := range output.Users {
		users = append(users, newUserResp(u))
	}

	return listResp{
		Users:     users,
		Paginator: output.Paginator.ToResponse(),
	}
}

type uploadAvatarResp struct {
	User userResp `json:"user"`
	URL  string   `json:"url,omitempty"`
}

func newUploadAvatarResp(output user.UploadAvatarOutput) uploadAvatarResp {
	return uploadAvatarResp{
		User: newUserResp(output.User),
		URL:  output.URL,
	}
}
