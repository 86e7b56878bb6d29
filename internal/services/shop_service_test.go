package services

import (
	"context"
	"path/filepath"
	"testing"

	"dukaan/internal/core"
	"dukaan/internal/store/jsonfile"
)

func newTestService(t *testing.T) (*ShopService, *jsonfile.Store) {
	t.Helper()
	st := jsonfile.New(filepath.Join(t.TempDir(), "shop_data.json"))
	svc := NewShopService(st, nil)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return svc, st
}

func chaiLine(qty int) core.OrderLine {
	return core.OrderLine{MenuItemID: "m-chai", Name: "Chai", Price: 10, Quantity: qty}
}

func TestAddOrderComputesTotals(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	order, err := svc.AddOrder(ctx, []core.OrderLine{chaiLine(2)})
	if err != nil {
		t.Fatalf("add order: %v", err)
	}
	if order.Total != 20 {
		t.Fatalf("expected total 20, got %v", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].Subtotal != 20 {
		t.Fatalf("expected computed subtotal 20, got %+v", order.Items)
	}
	if order.ID == "" || order.Date.IsZero() {
		t.Fatalf("order should have id and timestamp: %+v", order)
	}

	// The order survives a reload from disk.
	doc, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(doc.Orders) != 1 || doc.Orders[0].ID != order.ID {
		t.Fatalf("order not persisted: %+v", doc.Orders)
	}
	if doc.Orders[0].Total != 20 {
		t.Fatalf("persisted total mismatch: %v", doc.Orders[0].Total)
	}
}

func TestAddOrderRejectsEmptyAndZeroQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddOrder(ctx, nil); err != core.ErrEmptyOrder {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	if _, err := svc.AddOrder(ctx, []core.OrderLine{chaiLine(0)}); err != core.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if len(svc.Orders()) != 0 {
		t.Fatalf("rejected orders must not mutate state")
	}
}

func TestDeleteOrder(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	first, _ := svc.AddOrder(ctx, []core.OrderLine{chaiLine(1)})
	second, _ := svc.AddOrder(ctx, []core.OrderLine{chaiLine(3)})

	if err := svc.DeleteOrder(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	doc, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(doc.Orders) != 1 || doc.Orders[0].ID != second.ID {
		t.Fatalf("expected only the second order to remain: %+v", doc.Orders)
	}

	// Deleting an unknown id is a no-op, not an error.
	if err := svc.DeleteOrder(ctx, "no-such-id"); err != nil {
		t.Fatalf("delete absent id: %v", err)
	}
	if len(svc.Orders()) != 1 {
		t.Fatalf("no-op delete must not drop orders")
	}
}

func TestAddMenuCategoryDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before := len(svc.MenuCategories())
	ok, err := svc.AddMenuCategory(ctx, "Combos")
	if err != nil || !ok {
		t.Fatalf("first add should succeed: ok=%v err=%v", ok, err)
	}
	if len(svc.MenuCategories()) != before+1 {
		t.Fatalf("category set should grow by one")
	}

	ok, err = svc.AddMenuCategory(ctx, "Combos")
	if err != nil {
		t.Fatalf("duplicate add should not error: %v", err)
	}
	if ok {
		t.Fatalf("duplicate add should report false")
	}
	if len(svc.MenuCategories()) != before+1 {
		t.Fatalf("duplicate add must not mutate the set")
	}
}

func TestAddMenuItemAcceptsUnknownCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.AddMenuItem(ctx, "Secret Special", 42, "Not A Real Category")
	if err != nil {
		t.Fatalf("add menu item: %v", err)
	}
	if item.Category != "Not A Real Category" {
		t.Fatalf("category should be stored verbatim: %q", item.Category)
	}

	// The orphan shows up under the fallback section when grouped.
	sections := svc.MenuByCategory()
	var fallback *core.MenuSection
	for i := range sections {
		if sections[i].Category == core.FallbackCategory {
			fallback = &sections[i]
		}
	}
	if fallback == nil {
		t.Fatalf("expected a fallback section")
	}
	found := false
	for _, it := range fallback.Items {
		if it.ID == item.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("orphan item should be grouped under %q", core.FallbackCategory)
	}
}

func TestDeleteMenuItemKeepsOrderSnapshots(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	items := svc.MenuItems()
	target := items[0]
	order, err := svc.AddOrder(ctx, []core.OrderLine{
		{MenuItemID: target.ID, Name: target.Name, Price: target.Price, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("add order: %v", err)
	}

	if err := svc.DeleteMenuItem(ctx, target.ID); err != nil {
		t.Fatalf("delete menu item: %v", err)
	}
	for _, it := range svc.MenuItems() {
		if it.ID == target.ID {
			t.Fatalf("item should be gone from the menu")
		}
	}

	orders := svc.Orders()
	if len(orders) != 1 || orders[0].ID != order.ID || orders[0].Items[0].Name != target.Name {
		t.Fatalf("historical order lost its snapshot: %+v", orders)
	}
}

func TestAddExpenseValidation(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	exp, err := svc.AddExpense(ctx, core.NewDate(2025, 5, 10), "Ingredients", 120, "potatoes")
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if exp.ID == "" {
		t.Fatalf("expense should get an id")
	}

	if _, err := svc.AddExpense(ctx, core.NewDate(2025, 5, 10), "Gambling", 10, ""); err != core.ErrUnknownExpenseCategory {
		t.Fatalf("expected ErrUnknownExpenseCategory, got %v", err)
	}
	if _, err := svc.AddExpense(ctx, core.NewDate(2025, 5, 10), "Rent", 0, ""); err != core.ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	doc, _ := st.Load(ctx)
	if len(doc.Expenses) != 1 {
		t.Fatalf("only the valid expense should persist: %+v", doc.Expenses)
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	st := jsonfile.New(filepath.Join(t.TempDir(), "shop_data.json"))
	ctx := context.Background()

	doc := core.DefaultDocument()
	for day := 1; day <= 3; day++ {
		doc.Orders = append(doc.Orders, core.Order{
			ID:    core.NewID(),
			Date:  core.DateTime{Time: core.NewDate(2025, 5, day).Time},
			Items: []core.OrderLine{{MenuItemID: "m", Name: "Chai", Price: 10, Quantity: 1, Subtotal: 10}},
			Total: 10,
		})
	}
	if err := st.Save(ctx, doc); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := NewShopService(st, nil)
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	recent := svc.RecentOrders(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(recent))
	}
	if recent[0].Date.Day() != 3 || recent[1].Date.Day() != 2 {
		t.Fatalf("expected newest first, got days %d, %d", recent[0].Date.Day(), recent[1].Date.Day())
	}
}
