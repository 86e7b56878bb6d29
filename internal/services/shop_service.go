// Package services holds the ShopService, the single owner of the
// in-memory shop state. Every mutation updates the document under a
// lock, persists it synchronously, then optionally publishes an event.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"dukaan/internal/core"
	"dukaan/internal/events"
	"dukaan/internal/store"
)

type ShopService struct {
	mu     sync.Mutex
	doc    core.Document
	store  store.DocumentStore
	events *events.Client
}

// NewShopService wires the service to its backend. The events client may
// be nil, in which case publishing is skipped.
func NewShopService(st store.DocumentStore, ev *events.Client) *ShopService {
	return &ShopService{
		doc:    core.DefaultDocument(),
		store:  st,
		events: ev,
	}
}

// Load pulls the persisted document into memory. On a corrupt backing
// store the service keeps running on the seeded defaults and the error
// comes back so the caller can tell the user.
func (s *ShopService) Load(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("load shop data: %w", err)
	}
	return nil
}

// AddOrder records a completed sale. Lines must be pre-filtered to
// positive quantities; an empty list is rejected. Missing subtotals are
// computed from price and quantity, and the order total is the sum of
// line subtotals, so the total invariant holds by construction.
func (s *ShopService) AddOrder(ctx context.Context, lines []core.OrderLine) (core.Order, error) {
	if len(lines) == 0 {
		return core.Order{}, core.ErrEmptyOrder
	}

	items := make([]core.OrderLine, len(lines))
	var total float64
	for i, l := range lines {
		if l.Quantity < 1 {
			return core.Order{}, core.ErrInvalidQuantity
		}
		if l.Subtotal == 0 {
			l.Subtotal = l.Price * float64(l.Quantity)
		}
		items[i] = l
		total += l.Subtotal
	}

	order := core.Order{
		ID:    core.NewID(),
		Date:  core.Now(),
		Items: items,
		Total: total,
	}
	if err := order.Validate(); err != nil {
		return core.Order{}, err
	}

	s.mu.Lock()
	s.doc.Orders = append(s.doc.Orders, order)
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return core.Order{}, err
	}

	slog.InfoContext(ctx, "Order recorded", "order_id", order.ID, "total", order.Total, "lines", len(order.Items))
	s.publish(ctx, events.NewOrderCreated(order.ID, order.Total, ticketLines(order.Items)))
	return order, nil
}

// DeleteOrder removes the order with the given id. Absent ids are a
// no-op, but the document is persisted regardless.
func (s *ShopService) DeleteOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.doc.Orders[:0]
	removed := false
	for _, o := range s.doc.Orders {
		if o.ID == id {
			removed = true
			continue
		}
		kept = append(kept, o)
	}
	s.doc.Orders = kept
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if removed {
		slog.InfoContext(ctx, "Order deleted", "order_id", id)
		s.publish(ctx, events.NewOrderDeleted(id))
	}
	return nil
}

// AddExpense records a business cost.
func (s *ShopService) AddExpense(ctx context.Context, date core.Date, category string, amount float64, description string) (core.Expense, error) {
	expense := core.Expense{
		ID:          core.NewID(),
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
	}
	if err := expense.Validate(); err != nil {
		return core.Expense{}, err
	}

	s.mu.Lock()
	s.doc.Expenses = append(s.doc.Expenses, expense)
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return core.Expense{}, err
	}

	slog.InfoContext(ctx, "Expense recorded", "expense_id", expense.ID, "category", category, "amount", amount)
	s.publish(ctx, events.NewExpenseRecorded(expense.ID, expense.Amount))
	return expense, nil
}

// AddMenuItem adds a sellable product. The category string is stored as
// given and is not checked against the category set; unknown categories
// surface under the fallback section when the menu is grouped.
func (s *ShopService) AddMenuItem(ctx context.Context, name string, price float64, category string) (core.MenuItem, error) {
	item := core.MenuItem{
		ID:       core.NewID(),
		Name:     strings.TrimSpace(name),
		Price:    price,
		Category: category,
	}
	if err := item.Validate(); err != nil {
		return core.MenuItem{}, err
	}

	s.mu.Lock()
	s.doc.MenuItems = append(s.doc.MenuItems, item)
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return core.MenuItem{}, err
	}

	slog.InfoContext(ctx, "Menu item added", "item_id", item.ID, "name", item.Name, "price", item.Price)
	return item, nil
}

// AddMenuCategory appends a category. Returns false without mutating
// anything when the exact name is already present.
func (s *ShopService) AddMenuCategory(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, core.ErrEmptyName
	}

	s.mu.Lock()
	for _, c := range s.doc.MenuCategories {
		if c == name {
			s.mu.Unlock()
			return false, nil
		}
	}
	s.doc.MenuCategories = append(s.doc.MenuCategories, name)
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "Menu category added", "category", name)
	return true, nil
}

// DeleteMenuItem removes a menu item. Historical orders keep their name
// and price snapshots untouched. Absent ids are a no-op; the document is
// persisted regardless.
func (s *ShopService) DeleteMenuItem(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.doc.MenuItems[:0]
	removed := false
	for _, it := range s.doc.MenuItems {
		if it.ID == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	s.doc.MenuItems = kept
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if removed {
		slog.InfoContext(ctx, "Menu item deleted", "item_id", id)
	}
	return nil
}

// Orders returns a copy of all recorded orders.
func (s *ShopService) Orders() []core.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Order(nil), s.doc.Orders...)
}

// RecentOrders returns at most n orders, newest first.
func (s *ShopService) RecentOrders(n int) []core.Order {
	orders := s.Orders()
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.Time.After(orders[j].Date.Time)
	})
	if len(orders) > n {
		orders = orders[:n]
	}
	return orders
}

// Expenses returns a copy of all recorded expenses.
func (s *ShopService) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.doc.Expenses...)
}

// MenuItems returns a copy of the menu.
func (s *ShopService) MenuItems() []core.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.MenuItem(nil), s.doc.MenuItems...)
}

// MenuCategories returns a copy of the category set in insertion order.
func (s *ShopService) MenuCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.doc.MenuCategories...)
}

// MenuByCategory returns the menu grouped into sections for the order
// entry view.
func (s *ShopService) MenuByCategory() []core.MenuSection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.GroupMenu(s.doc.MenuItems, s.doc.MenuCategories)
}

// Close releases the backend and the events connection.
func (s *ShopService) Close() error {
	var errs []error
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("store: %w", err))
		}
	}
	if s.events != nil {
		if err := s.events.Close(); err != nil {
			errs = append(errs, fmt.Errorf("events: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close shop service: %v", errs)
	}
	return nil
}

// persist writes the full document through the backend. Callers hold the
// lock.
func (s *ShopService) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.doc); err != nil {
		return fmt.Errorf("save shop data: %w", err)
	}
	return nil
}

// publish is nil-safe and never fails the surrounding mutation.
func (s *ShopService) publish(ctx context.Context, event *events.ShopEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to publish shop event",
			"error", err, "kind", event.Kind, "id", event.ID)
	}
}

func ticketLines(items []core.OrderLine) []events.TicketLine {
	lines := make([]events.TicketLine, len(items))
	for i, l := range items {
		lines[i] = events.TicketLine{Name: l.Name, Quantity: l.Quantity}
	}
	return lines
}
