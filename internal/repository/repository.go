package repository

import (
	"database/sql"
	"errors"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/config"
)

// ErrNotFound is returned by delete operations when no row was affected, so
// callers can surface a not-found instead of silently succeeding.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}
