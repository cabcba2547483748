// Package storage persists full snapshots of the review and engagement
// stores. Every save rewrites the complete snapshot; loads happen once
// at startup and are never fatal.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Barca0412/VocabMaster/internal/config"
	"github.com/Barca0412/VocabMaster/internal/models"
)

// ErrCorruptSnapshot wraps load failures caused by unreadable or
// undecodable snapshot data. Loads returning it still return a usable
// (possibly empty) record slice, so callers start from whatever could
// be recovered and surface the error as a warning.
var ErrCorruptSnapshot = errors.New("storage: corrupt snapshot")

// Store is a snapshot persistence backend for the two record maps.
type Store interface {
	LoadReviews() ([]models.ReviewRecord, error)
	SaveReviews(records []models.ReviewRecord) error
	LoadWords() ([]models.WordRecord, error)
	SaveWords(records []models.WordRecord) error
	Close() error
}

// Open builds the Store selected by cfg: "json" (the default),
// "sqlite", "postgres", or "mysql".
func Open(cfg *config.Config) (Store, error) {
	switch strings.ToLower(cfg.Store) {
	case "json", "":
		return NewJSONStore(cfg.DataDir)
	case "sqlite", "sqlite3":
		return NewSQLStore(NewSQLiteDialect(), DialectConfig{Path: cfg.DatabasePath})
	case "postgres", "postgresql":
		return NewSQLStore(NewPostgresDialect(), DialectConfig{URL: cfg.DatabaseURL})
	case "mysql":
		return NewSQLStore(NewMySQLDialect(), DialectConfig{URL: cfg.DatabaseURL})
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.Store)
	}
}

// validReviews reports the index of the first malformed record, or -1.
// A snapshot carrying an out-of-range level was written by something
// else and is treated as corrupt.
func validReviews(records []models.ReviewRecord) int {
	for i := range records {
		if !records[i].Level.IsValid() {
			return i
		}
	}
	return -1
}
