package postgre

import (
	"database/sql"

	"planora-api/internal/guest"
	"planora-api/pkg/encrypter"
	"planora-api/pkg/log"
)

type implRepository struct {
	l   log.Logger
	db  *sql.DB
	enc encrypter.Encrypter
}

// New creates a new guest repository backed by Postgres. Guest phone
// numbers pass through the encrypter before they reach the database.
func New(l log.Logger, db *sql.DB, enc encrypter.Encrypter) guest.Repository {
	return &implRepository{
		l:   l,
		db:  db,
		enc: enc,
	}
}
