// Package sqlite is an alternative document backend over SQLite. It keeps
// the same whole-document load/save contract as the JSON file store: Save
// rewrites every table inside one transaction.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"dukaan/internal/core"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the whole document. A database with no categories and no
// menu is treated as first run and returns the seeded defaults.
func (s *Store) Load(ctx context.Context) (core.Document, error) {
	doc := core.Document{
		Orders:         []core.Order{},
		MenuItems:      []core.MenuItem{},
		Expenses:       []core.Expense{},
		MenuCategories: []string{},
	}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return core.DefaultDocument(), fmt.Errorf("load orders: %w", err)
	}
	doc.Orders = orders

	items, err := s.loadMenuItems(ctx)
	if err != nil {
		return core.DefaultDocument(), fmt.Errorf("load menu items: %w", err)
	}
	doc.MenuItems = items

	expenses, err := s.loadExpenses(ctx)
	if err != nil {
		return core.DefaultDocument(), fmt.Errorf("load expenses: %w", err)
	}
	doc.Expenses = expenses

	cats, err := s.loadCategories(ctx)
	if err != nil {
		return core.DefaultDocument(), fmt.Errorf("load menu categories: %w", err)
	}
	doc.MenuCategories = cats

	if len(doc.MenuCategories) == 0 && len(doc.MenuItems) == 0 &&
		len(doc.Orders) == 0 && len(doc.Expenses) == 0 {
		return core.DefaultDocument(), nil
	}
	return doc, nil
}

// Save replaces the stored document wholesale in one transaction.
func (s *Store) Save(ctx context.Context, doc core.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"order_lines", "orders", "menu_items", "expenses", "menu_categories"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, o := range doc.Orders {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO orders (id, order_date, total) VALUES (?, ?, ?)`,
			o.ID, o.Date.String(), o.Total); err != nil {
			return fmt.Errorf("insert order %s: %w", o.ID, err)
		}
		for _, l := range o.Items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO order_lines (order_id, menu_item_id, name, price, quantity, subtotal)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				o.ID, l.MenuItemID, l.Name, l.Price, l.Quantity, l.Subtotal); err != nil {
				return fmt.Errorf("insert line for order %s: %w", o.ID, err)
			}
		}
	}

	for _, m := range doc.MenuItems {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO menu_items (id, name, price, category) VALUES (?, ?, ?, ?)`,
			m.ID, m.Name, m.Price, m.Category); err != nil {
			return fmt.Errorf("insert menu item %s: %w", m.ID, err)
		}
	}

	for _, e := range doc.Expenses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (id, expense_date, category, amount, description)
			 VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Date.String(), e.Category, e.Amount, e.Description); err != nil {
			return fmt.Errorf("insert expense %s: %w", e.ID, err)
		}
	}

	for _, c := range doc.MenuCategories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO menu_categories (name) VALUES (?)`, c); err != nil {
			return fmt.Errorf("insert category %s: %w", c, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save transaction: %w", err)
	}
	return nil
}

func (s *Store) loadOrders(ctx context.Context) ([]core.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, order_date, total FROM orders ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []core.Order{}
	index := map[string]int{}
	for rows.Next() {
		var (
			o       core.Order
			dateRaw string
		)
		if err := rows.Scan(&o.ID, &dateRaw, &o.Total); err != nil {
			return nil, err
		}
		parsed, err := core.ParseDateTime(dateRaw)
		if err != nil {
			return nil, err
		}
		o.Date = parsed
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := s.db.QueryContext(ctx,
		`SELECT order_id, menu_item_id, name, price, quantity, subtotal
		 FROM order_lines ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var (
			orderID string
			l       core.OrderLine
		)
		if err := lineRows.Scan(&orderID, &l.MenuItemID, &l.Name, &l.Price, &l.Quantity, &l.Subtotal); err != nil {
			return nil, err
		}
		i, ok := index[orderID]
		if !ok {
			return nil, fmt.Errorf("order line references unknown order %s", orderID)
		}
		orders[i].Items = append(orders[i].Items, l)
	}
	return orders, lineRows.Err()
}

func (s *Store) loadMenuItems(ctx context.Context) ([]core.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, price, category FROM menu_items ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []core.MenuItem{}
	for rows.Next() {
		var m core.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Category); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (s *Store) loadExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, expense_date, category, amount, description FROM expenses ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []core.Expense{}
	for rows.Next() {
		var (
			e       core.Expense
			dateRaw string
		)
		if err := rows.Scan(&e.ID, &dateRaw, &e.Category, &e.Amount, &e.Description); err != nil {
			return nil, err
		}
		parsed, err := core.ParseDate(dateRaw)
		if err != nil {
			return nil, err
		}
		e.Date = parsed
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *Store) loadCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM menu_categories ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cats = append(cats, name)
	}
	return cats, rows.Err()
}
