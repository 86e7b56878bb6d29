// Package reports implements the date-range filtering and aggregation
// behind the sales report, expense report and dashboard views. All
// functions are pure; callers pass in the collections they want summarized.
package reports

import (
	"sort"

	"dukaan/internal/core"
)

// ValidateRange rejects ranges whose start falls after end. Handlers call
// this at the boundary before running any query.
func ValidateRange(start, end core.Date) error {
	if start.After(end) {
		return core.ErrInvalidDateRange
	}
	return nil
}

// OrdersInRange returns the orders whose calendar date falls inside
// [start, end], inclusive on both bounds. Time of day is discarded for
// the comparison.
func OrdersInRange(orders []core.Order, start, end core.Date) []core.Order {
	var out []core.Order
	for _, o := range orders {
		d := o.Date.DateOnly()
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ExpensesInRange returns the expenses dated inside [start, end],
// inclusive on both bounds.
func ExpensesInRange(expenses []core.Expense, start, end core.Date) []core.Expense {
	var out []core.Expense
	for _, e := range expenses {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SalesByItem sums quantity and revenue across all line items of the
// given orders, grouped by item name. Two menu items sharing a name merge
// into one row. Rows are sorted by revenue, highest first; ties keep the
// order names were first seen in.
func SalesByItem(orders []core.Order) []core.ItemSales {
	index := make(map[string]int)
	var rows []core.ItemSales
	for _, o := range orders {
		for _, l := range o.Items {
			i, ok := index[l.Name]
			if !ok {
				i = len(rows)
				index[l.Name] = i
				rows = append(rows, core.ItemSales{Name: l.Name})
			}
			rows[i].Quantity += l.Quantity
			rows[i].Revenue += l.Subtotal
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})
	return rows
}

// TopItems returns at most n of the highest-revenue rows from SalesByItem.
func TopItems(orders []core.Order, n int) []core.ItemSales {
	rows := SalesByItem(orders)
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// ExpensesByCategory sums expense amounts grouped by category, sorted by
// amount, highest first.
func ExpensesByCategory(expenses []core.Expense) []core.CategoryTotal {
	index := make(map[string]int)
	var rows []core.CategoryTotal
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(rows)
			index[e.Category] = i
			rows = append(rows, core.CategoryTotal{Category: e.Category})
		}
		rows[i].Amount += e.Amount
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount > rows[j].Amount
	})
	return rows
}

// Daily produces one entry per calendar day in [start, end] inclusive, in
// chronological order, zero-filled for days without activity. Orders and
// expenses outside the range are ignored.
func Daily(orders []core.Order, expenses []core.Expense, start, end core.Date) []core.DailyEntry {
	days := start.DaysUntil(end)
	if days == 0 {
		return nil
	}

	entries := make([]core.DailyEntry, days)
	index := make(map[string]int, days)
	d := start
	for i := 0; i < days; i++ {
		entries[i] = core.DailyEntry{Date: d}
		index[d.String()] = i
		d = d.Next()
	}

	for _, o := range orders {
		if i, ok := index[o.Date.DateOnly().String()]; ok {
			entries[i].Sales += o.Total
		}
	}
	for _, e := range expenses {
		if i, ok := index[e.Date.String()]; ok {
			entries[i].Expenses += e.Amount
		}
	}
	for i := range entries {
		entries[i].Profit = entries[i].Sales - entries[i].Expenses
	}
	return entries
}

// Summarize computes the headline metrics over already-filtered orders
// and expenses. Division guards: average order value is 0 with no orders,
// profit margin is 0 with no sales.
func Summarize(orders []core.Order, expenses []core.Expense) core.Summary {
	var s core.Summary
	for _, o := range orders {
		s.TotalSales += o.Total
	}
	for _, e := range expenses {
		s.TotalExpenses += e.Amount
	}
	s.OrderCount = len(orders)
	if s.OrderCount > 0 {
		s.AverageOrderValue = s.TotalSales / float64(s.OrderCount)
	}
	s.Profit = s.TotalSales - s.TotalExpenses
	if s.TotalSales > 0 {
		s.ProfitMargin = s.Profit / s.TotalSales * 100
	}
	return s
}
