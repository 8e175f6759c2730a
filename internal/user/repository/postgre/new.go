package postgre

import (
	"database/sql"

	"planora-api/internal/user"
	"planora-api/pkg/log"
)

type implRepository struct {
	l  log.Logger
	db *sql.DB
}

// New creates a new user repository backed by Postgres.
func New(l log.Logger, db *sql.DB) user.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
