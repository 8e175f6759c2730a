package postgre

import (
	"database/sql"

	"planora-api/internal/plan"
	"planora-api/pkg/log"
)

type implRepository struct {
	l  log.Logger
	db *sql.DB
}

// New creates a new plan repository backed by Postgres.
func New(l log.Logger, db *sql.DB) plan.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
