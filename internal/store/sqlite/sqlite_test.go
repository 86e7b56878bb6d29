package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"dukaan/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "shop.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFreshDatabaseSeedsDefaults(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.MenuItems) != 5 || len(doc.MenuCategories) != 5 {
		t.Fatalf("expected seeded defaults, got %d items, %d categories",
			len(doc.MenuItems), len(doc.MenuCategories))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := core.DefaultDocument()
	doc.Orders = append(doc.Orders, core.Order{
		ID:   core.NewID(),
		Date: core.DateTime{Time: core.NewDate(2025, 5, 10).Add(18*time.Hour + 5*time.Minute)},
		Items: []core.OrderLine{
			{MenuItemID: doc.MenuItems[0].ID, Name: "Dabeli", Price: 20, Quantity: 1, Subtotal: 20},
			{MenuItemID: doc.MenuItems[4].ID, Name: "Chai", Price: 10, Quantity: 3, Subtotal: 30},
		},
		Total: 50,
	})
	doc.Expenses = append(doc.Expenses, core.Expense{
		ID: core.NewID(), Date: core.NewDate(2025, 5, 9), Category: "Ingredients", Amount: 120, Description: "potatoes",
	})

	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, doc)
	}
}

func TestSaveReplacesPreviousState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := core.DefaultDocument()
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := first
	second.MenuItems = first.MenuItems[:2]
	second.MenuCategories = []string{"Fast Food"}
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.MenuItems) != 2 || len(got.MenuCategories) != 1 {
		t.Fatalf("save should replace state wholesale, got %d items, %d categories",
			len(got.MenuItems), len(got.MenuCategories))
	}
}
