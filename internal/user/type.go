package user

import (
	"io"

	"planora-api/internal/model"
	"planora-api/pkg/paginator"
)

// CreateUserOption is the option to create a user.
type CreateUserOption struct {
	Email        string
	PasswordHash string
	FullName     *string
	Role         string
}

// UpdateUserOption is the option to update a user. Nil fields are left
// untouched.
type UpdateUserOption struct {
	ID        string
	FullName  *string
	AvatarURL *string
}

// ListUserOption is the option to filter the user list.
type ListUserOption struct {
	PaginateQuery paginator.PaginateQuery
	Role          string
	Email         string
}

// ListUserResult is the result of listing users.
type ListUserResult struct {
	Users     []model.User
	Paginator paginator.Paginator
}

// ListInput is the input for listing users.
type ListInput struct {
	PaginateQuery paginator.PaginateQuery
	Role          string
	Email         string
}

// ListOutput is the output of listing users.
type ListOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}

// UpdateProfileInput is the input for updating the caller's profile.
type UpdateProfileInput struct {
	FullName *string
}

// UploadAvatarInput is the input for uploading an avatar.
type UploadAvatarInput struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadAvatarOutput is the output of uploading an avatar.
type UploadAvatarOutput struct {
	User model.User
	// URL is a presigned link for immediate display.
	URL string
}
