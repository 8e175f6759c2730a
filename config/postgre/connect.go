package postgre

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"

	"planora-api/config"
)

var (
	db      *sql.DB
	once    sync.Once
	connErr error
)

// Connect opens the shared Postgres pool. The pool is created once, later
// calls return the same handle.
func Connect(cfg config.PostgresConfig) (*sql.DB, error) {
	once.Do(func() {
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
		)

		db, connErr = sql.Open("postgres", dsn)
		if connErr != nil {
			return
		}

		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

		connErr = db.Ping()
	})
	if connErr != nil {
		return nil, connErr
	}

	return db, nil
}

// Disconnect closes the shared pool.
func Disconnect() error {
	if db == nil {
		return nil
	}
	return db.Close()
}
