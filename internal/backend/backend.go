// Package backend selects and constructs the document store the service
// runs on, based on configuration.
package backend

import (
	"fmt"
	"log/slog"

	"dukaan/internal/config"
	"dukaan/internal/store"
	"dukaan/internal/store/jsonfile"
	"dukaan/internal/store/sqlite"
)

// Type identifies a persistence backend.
type Type string

const (
	JSONBackend   Type = "json"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid reports whether the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case JSONBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Open constructs the configured document store.
func Open(cfg *config.Config, logger *slog.Logger) (store.DocumentStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case SQLiteBackend:
		st, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return st, nil
	default:
		st := jsonfile.New(cfg.DataFile)
		logger.Info("Initialized json file backend", "data_file", cfg.DataFile)
		return st, nil
	}
}
