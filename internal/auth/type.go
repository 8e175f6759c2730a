package auth

import "planora-api/internal/model"

// SignupInput is the input for registering an account.
type SignupInput struct {
	Email    string
	Password string
	FullName *string
}

// LoginInput is the input for logging in.
type LoginInput struct {
	Email    string
	Password string
}

// TokenOutput carries a session token and the account it belongs to.
type TokenOutput struct {
	Token string
	User  model.User
}
