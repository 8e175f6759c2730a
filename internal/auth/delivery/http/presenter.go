package http

import (
	"time"

	"planora-api/internal/auth"
	"planora-api/internal/model"
)

type signupReq struct {
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	FullName *string `json:"full_name"`
}

func (req signupReq) toInput() auth.SignupInput {
	return auth.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (req loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
}

type accountResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func newAccountResp(u model.User) accountResp {
	return accountResp{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type tokenResp struct {
	Token string      `json:"token"`
	User  accountResp `json:"user"`
}

func newTokenResp(output auth.TokenOutput) tokenResp {
	return tokenResp{
		Token: output.Token,
		User:  newAccountResp(output.User),
	}
}
