package model

import (
	"time"

	"planora-api/internal/dbmodels"
)

// User represents a user entity in the domain layer.
// This is a safe type model that doesn't depend on database-specific types.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FullName     *string    `json:"full_name,omitempty"`
	PasswordHash *string    `json:"-"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
	Role         string     `json:"role"`
	IsActive     *bool      `json:"is_active,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// NewUserFromDB converts a database User row to a domain User model.
// It safely handles null values from the database.
func NewUserFromDB(dbUser *dbmodels.User) *User {
	user := &User{
		ID:        dbUser.ID,
		Email:     dbUser.Email,
		Role:      dbUser.Role,
		CreatedAt: dbUser.CreatedAt.Time,
		UpdatedAt: dbUser.UpdatedAt.Time,
	}

	if dbUser.FullName.Valid {
		user.FullName = &dbUser.FullName.String
	}
	if dbUser.PasswordHash.Valid {
		user.PasswordHash = &dbUser.PasswordHash.String
	}
	if dbUser.AvatarURL.Valid {
		user.AvatarURL = &dbUser.AvatarURL.String
	}
	if dbUser.IsActive.Valid {
		user.IsActive = &dbUser.IsActive.Bool
	}
	if dbUser.DeletedAt.Valid {
		user.DeletedAt = &dbUser.DeletedAt.Time
	}

	return user
}
