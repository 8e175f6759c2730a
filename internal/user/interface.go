package user

import (
	"context"

	"planora-api/internal/model"
)

// UseCase is the interface for the user usecase.
type UseCase interface {
	// Detail returns a single user. Members can only see themselves,
	// admins can see anyone.
	Detail(ctx context.Context, sc model.Scope, id string) (model.User, error)
	// List returns users filtered by the input, admin only.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	// UpdateProfile updates the caller's own profile fields.
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (model.User, error)
	// UploadAvatar stores a new avatar in object storage and links it to
	// the caller's account.
	UploadAvatar(ctx context.Context, sc model.Scope, input UploadAvatarInput) (UploadAvatarOutput, error)
}

// Repository is the interface for the user repository.
type Repository interface {
	Create(ctx context.Context, opt CreateUserOption) (model.User, error)
	Detail(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context, opt ListUserOption) (ListUserResult, error)
	Update(ctx context.Context, opt UpdateUserOption) (model.User, error)
}
