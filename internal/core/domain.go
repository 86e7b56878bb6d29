package core

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// FallbackCategory buckets menu items whose category string is absent or
// unknown when the menu is grouped for display.
const FallbackCategory = "Others"

var (
	ErrEmptyOrder             = errors.New("order has no items")
	ErrInvalidQuantity        = errors.New("quantity must be at least 1")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidPrice           = errors.New("price must be positive")
	ErrEmptyName              = errors.New("name cannot be empty")
	ErrTotalMismatch          = errors.New("order total does not match line subtotals")
	ErrDuplicateCategory      = errors.New("category already exists")
	ErrUnknownExpenseCategory = errors.New("unknown expense category")
	ErrInvalidDateRange       = errors.New("start date is after end date")
)

type (
	// OrderLine is one item on an order. Name and Price are snapshots of
	// the menu item at order time; later menu edits never touch them.
	OrderLine struct {
		MenuItemID string  `json:"id"`
		Name       string  `json:"name"`
		Price      float64 `json:"price"`
		Quantity   int     `json:"quantity"`
		Subtotal   float64 `json:"subtotal"`
	}

	// Order is a completed sale. Orders are immutable after creation;
	// the only lifecycle operation besides creation is deletion by id.
	Order struct {
		ID    string      `json:"id"`
		Date  DateTime    `json:"date"`
		Items []OrderLine `json:"items"`
		Total float64     `json:"total"`
	}

	// MenuItem is a sellable product.
	MenuItem struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
	}

	// Expense is a recorded business cost.
	Expense struct {
		ID          string  `json:"id"`
		Date        Date    `json:"date"`
		Category    string  `json:"category"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}

	// Document is the full persisted state: exactly these four
	// collections, nothing else.
	Document struct {
		Orders         []Order    `json:"orders"`
		MenuItems      []MenuItem `json:"menu_items"`
		Expenses       []Expense  `json:"expenses"`
		MenuCategories []string   `json:"menu_categories"`
	}

	// MenuSection groups menu items under one category for display,
	// preserving category insertion order.
	MenuSection struct {
		Category string     `json:"category"`
		Items    []MenuItem `json:"items"`
	}
)

// ExpenseCategories is the fixed set an expense may be filed under.
// It is distinct from the menu category set.
var ExpenseCategories = []string{
	"Ingredients",
	"Utilities",
	"Rent",
	"Salaries",
	"Equipment",
	"Maintenance",
	"Other",
}

// IsExpenseCategory reports whether s is a valid expense category.
func IsExpenseCategory(s string) bool {
	for _, c := range ExpenseCategories {
		if c == s {
			return true
		}
	}
	return false
}

// NewID generates an opaque unique identifier. Ids are never reused.
func NewID() string {
	return uuid.NewString()
}

func (l OrderLine) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyName
	}
	if l.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if l.Price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

func (o Order) Validate() error {
	if len(o.Items) == 0 {
		return ErrEmptyOrder
	}
	var sum float64
	for _, l := range o.Items {
		if err := l.Validate(); err != nil {
			return err
		}
		sum += l.Subtotal
	}
	if o.Total != sum {
		return ErrTotalMismatch
	}
	if o.Total <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (m MenuItem) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if m.Price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return errors.New("expense date cannot be zero")
	}
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !IsExpenseCategory(e.Category) {
		return ErrUnknownExpenseCategory
	}
	return nil
}

// GroupMenu splits items into sections following the category set's
// insertion order. Items whose category is not in the set land in the
// fallback section; the fallback section is appended when it is not
// already part of the category list.
func GroupMenu(items []MenuItem, categories []string) []MenuSection {
	known := make(map[string]int, len(categories))
	sections := make([]MenuSection, len(categories))
	for i, c := range categories {
		known[c] = i
		sections[i] = MenuSection{Category: c}
	}

	var orphans []MenuItem
	for _, it := range items {
		if idx, ok := known[it.Category]; ok {
			sections[idx].Items = append(sections[idx].Items, it)
		} else {
			orphans = append(orphans, it)
		}
	}

	if len(orphans) > 0 {
		if idx, ok := known[FallbackCategory]; ok {
			sections[idx].Items = append(sections[idx].Items, orphans...)
		} else {
			sections = append(sections, MenuSection{Category: FallbackCategory, Items: orphans})
		}
	}

	return sections
}
