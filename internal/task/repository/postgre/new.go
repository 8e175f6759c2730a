package postgre

import (
	"database/sql"

	"planora-api/internal/task"
	"planora-api/pkg/log"
)

type implRepository struct {
	l  log.Logger
	db *sql.DB
}

// New creates a new task repository backed by Postgres.
func New(l log.Logger, db *sql.DB) task.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
