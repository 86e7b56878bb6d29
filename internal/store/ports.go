// Package store defines the persistence port the service layer writes
// through. Backends persist the whole document on every save; there is no
// partial update surface.
package store

import (
	"context"

	"dukaan/internal/core"
)

// DocumentStore loads and saves the full shop document.
//
// Load returns a usable document even on failure: a missing backing store
// yields the seeded defaults with a nil error, while a corrupt one yields
// the defaults together with a non-nil error so the caller can surface a
// notice and keep running.
type DocumentStore interface {
	Load(ctx context.Context) (core.Document, error)
	Save(ctx context.Context, doc core.Document) error
	Close() error
}
