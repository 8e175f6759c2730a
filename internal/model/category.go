package model

import (
	"time"

	"planora-api/internal/dbmodels"
)

// Category represents a global event category (wedding, birthday, conference...).
// Categories are read-only reference data shared by all users.
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategoryFromDB converts a database Category row to a domain Category model.
func NewCategoryFromDB(dbCategory *dbmodels.Category) *Category {
	category := &Category{
		ID:        dbCategory.ID,
		Name:      dbCategory.Name,
		CreatedAt: dbCategory.CreatedAt.Time,
		UpdatedAt: dbCategory.UpdatedAt.Time,
	}

	if dbCategory.Description.Valid {
		category.Description = &dbCategory.Description.String
	}
	if dbCategory.Icon.Valid {
		category.Icon = &dbCategory.Icon.String
	}

	return category
}
