// Package jsonfile persists the shop document as a single JSON file,
// rewritten whole on every save. This is the default backend and the
// contractual on-disk format: one object with orders, menu_items,
// expenses and menu_categories arrays.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dukaan/internal/core"
)

// DefaultPath is where the document lives unless configured otherwise.
const DefaultPath = "data/shop_data.json"

type Store struct {
	path string
}

func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Load reads the document from disk. A missing file is not an error: the
// seeded defaults come back clean. A file that exists but cannot be
// parsed also yields the defaults, plus the parse error so the caller can
// tell the user their data was not picked up.
func (s *Store) Load(_ context.Context) (core.Document, error) {
	doc := core.DefaultDocument()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("read %s: %w", s.path, err)
	}

	// Unmarshal over the defaults: collections absent from the file keep
	// their seeded values, matching first-run behavior for partial files.
	if err := json.Unmarshal(raw, &doc); err != nil {
		return core.DefaultDocument(), fmt.Errorf("parse %s: %w", s.path, err)
	}
	normalize(&doc)
	return doc, nil
}

// Save atomically rewrites the file with the full document, creating the
// parent directory if needed. The temp-file-then-rename dance means a
// crash mid-save never leaves a half-written document behind.
func (s *Store) Save(_ context.Context, doc core.Document) error {
	normalize(&doc)
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".shop_data-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

// normalize keeps the four-collections invariant: nil slices become empty
// ones so the persisted document always carries all four keys as arrays.
func normalize(doc *core.Document) {
	if doc.Orders == nil {
		doc.Orders = []core.Order{}
	}
	if doc.MenuItems == nil {
		doc.MenuItems = []core.MenuItem{}
	}
	if doc.Expenses == nil {
		doc.Expenses = []core.Expense{}
	}
	if doc.MenuCategories == nil {
		doc.MenuCategories = []string{}
	}
}
