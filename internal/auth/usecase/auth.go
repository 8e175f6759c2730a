package usecase

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"planora-api/internal/auth"
	"planora-api/internal/model"
	"planora-api/internal/user"
	"planora-api/pkg/encrypter"
	"planora-api/pkg/scope"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (uc *implUsecase) Signup(ctx context.Context, input auth.SignupInput) (auth.TokenOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailRegexp.MatchString(email) {
		return auth.TokenOutput{}, auth.ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLen {
		return auth.TokenOutput{}, auth.ErrWeakPassword
	}

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return auth.TokenOutput{}, auth.ErrEmailExisted
	}
	if !errors.Is(err, sql.ErrNoRows) {
		uc.l.Errorf(ctx, "internal.auth.usecase.Signup: check email: %v", err)
		return auth.TokenOutput{}, err
	}

	hash, err := encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Signup: hash password: %v", err)
		return auth.TokenOutput{}, err
	}

	u, err := uc.userRepo.Create(ctx, user.CreateUserOption{
		Email:        email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         model.RoleMember,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Signup: create user: %v", err)
		return auth.TokenOutput{}, err
	}

	token, err := uc.manager.Issue(u.ID, u.Email, u.Role, 0)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Signup: issue token: %v", err)
		return auth.TokenOutput{}, err
	}

	return auth.TokenOutput{Token: token, User: u}, nil
}

func (uc *implUsecase) Login(ctx context.Context, input auth.LoginInput) (auth.TokenOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.TokenOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Login: get user: %v", err)
		return auth.TokenOutput{}, err
	}

	if u.PasswordHash == nil || !encrypter.CheckPasswordHash(input.Password, *u.PasswordHash) {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}

	if u.IsActive != nil && !*u.IsActive {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.manager.Issue(u.ID, u.Email, u.Role, 0)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login: issue token: %v", err)
		return auth.TokenOutput{}, err
	}

	return auth.TokenOutput{Token: token, User: u}, nil
}

func (uc *implUsecase) Logout(ctx context.Context, payload scope.Payload) error {
	if payload.ExpiresAt == nil {
		return nil
	}

	// The id only has to stay on the revocation list until the token
	// would have expired on its own.
	ttl := payload.ExpiresAt.Time.Sub(uc.clock())
	if ttl <= 0 {
		return nil
	}

	if err := uc.revoker.Revoke(ctx, payload.ID, ttl); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Logout: revoke token: %v", err)
		return err
	}

	return nil
}

func (uc *implUsecase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.userRepo.Detail(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Me: %v", err)
		return model.User{}, err
	}

	return u, nil
}

func (uc *implUsecase) IsActive(ctx context.Context, userID string) (bool, error) {
	u, err := uc.userRepo.Detail(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if u.DeletedAt != nil {
		return false, nil
	}
	if u.IsActive != nil && !*u.IsActive {
		return false, nil
	}

	return true, nil
}
