package reports

import (
	"testing"
	"time"

	"dukaan/internal/core"
)

func orderOn(day core.Date, total float64, lines ...core.OrderLine) core.Order {
	return core.Order{
		ID:    core.NewID(),
		Date:  core.DateTime{Time: day.Add(12 * time.Hour)},
		Items: lines,
		Total: total,
	}
}

func expenseOn(day core.Date, category string, amount float64) core.Expense {
	return core.Expense{ID: core.NewID(), Date: day, Category: category, Amount: amount}
}

func TestValidateRange(t *testing.T) {
	if err := ValidateRange(core.NewDate(2025, 1, 1), core.NewDate(2025, 1, 1)); err != nil {
		t.Fatalf("same-day range should be valid: %v", err)
	}
	if err := ValidateRange(core.NewDate(2025, 1, 2), core.NewDate(2025, 1, 1)); err != core.ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestOrdersInRangeInclusive(t *testing.T) {
	start := core.NewDate(2025, 5, 10)
	end := core.NewDate(2025, 5, 12)
	orders := []core.Order{
		orderOn(core.NewDate(2025, 5, 9), 10),  // day before start
		orderOn(start, 20),                     // exactly on start
		orderOn(core.NewDate(2025, 5, 11), 30), // inside
		orderOn(end, 40),                       // exactly on end
		orderOn(core.NewDate(2025, 5, 13), 50), // day after end
	}

	got := OrdersInRange(orders, start, end)
	if len(got) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(got))
	}
	if got[0].Total != 20 || got[2].Total != 40 {
		t.Fatalf("boundary orders missing: %+v", got)
	}
}

func TestExpensesInRangeInclusive(t *testing.T) {
	start := core.NewDate(2025, 5, 10)
	end := core.NewDate(2025, 5, 12)
	expenses := []core.Expense{
		expenseOn(core.NewDate(2025, 5, 9), "Rent", 1),
		expenseOn(start, "Rent", 2),
		expenseOn(end, "Rent", 3),
		expenseOn(core.NewDate(2025, 5, 13), "Rent", 4),
	}

	got := ExpensesInRange(expenses, start, end)
	if len(got) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(got))
	}
}

func TestSalesByItemMergesByName(t *testing.T) {
	day := core.NewDate(2025, 5, 10)
	orders := []core.Order{
		orderOn(day, 50,
			core.OrderLine{MenuItemID: "a", Name: "Chai", Price: 10, Quantity: 2, Subtotal: 20},
			core.OrderLine{MenuItemID: "b", Name: "Samosa", Price: 10, Quantity: 3, Subtotal: 30},
		),
		// Different menu item id, same name: merges with the first Chai.
		orderOn(day, 10,
			core.OrderLine{MenuItemID: "c", Name: "Chai", Price: 10, Quantity: 1, Subtotal: 10},
		),
	}

	rows := SalesByItem(orders)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Chai" || rows[0].Quantity != 3 || rows[0].Revenue != 30 {
		t.Fatalf("unexpected top row: %+v", rows[0])
	}
	if rows[1].Name != "Samosa" || rows[1].Revenue != 30 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestTopItems(t *testing.T) {
	day := core.NewDate(2025, 5, 10)
	var lines []core.OrderLine
	names := []string{"A", "B", "C"}
	for i, n := range names {
		lines = append(lines, core.OrderLine{Name: n, Price: 1, Quantity: i + 1, Subtotal: float64(i + 1)})
	}
	orders := []core.Order{orderOn(day, 6, lines...)}

	rows := TopItems(orders, 2)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "C" || rows[1].Name != "B" {
		t.Fatalf("expected revenue-descending order, got %+v", rows)
	}
}

func TestExpensesByCategory(t *testing.T) {
	day := core.NewDate(2025, 5, 10)
	expenses := []core.Expense{
		expenseOn(day, "Rent", 500),
		expenseOn(day, "Ingredients", 100),
		expenseOn(day, "Ingredients", 150),
	}

	rows := ExpensesByCategory(expenses)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Category != "Rent" || rows[0].Amount != 500 {
		t.Fatalf("unexpected top row: %+v", rows[0])
	}
	if rows[1].Category != "Ingredients" || rows[1].Amount != 250 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestDailyZeroFills(t *testing.T) {
	start := core.NewDate(2025, 5, 10)
	end := core.NewDate(2025, 5, 12)

	entries := Daily(nil, nil, start, end)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Sales != 0 || e.Expenses != 0 || e.Profit != 0 {
			t.Fatalf("entry %d should be zero-valued: %+v", i, e)
		}
	}
	if entries[0].Date.String() != "2025-05-10" || entries[2].Date.String() != "2025-05-12" {
		t.Fatalf("entries out of order: %+v", entries)
	}
}

func TestDailyProfitSeries(t *testing.T) {
	start := core.NewDate(2025, 5, 1)
	end := core.NewDate(2025, 5, 3)
	expenses := []core.Expense{
		expenseOn(start, "Rent", 100),
		expenseOn(core.NewDate(2025, 5, 3), "Utilities", 200),
	}

	entries := Daily(nil, expenses, start, end)
	want := []float64{-100, 0, -200}
	for i, p := range want {
		if entries[i].Profit != p {
			t.Fatalf("day %d: got profit %v, want %v", i, entries[i].Profit, p)
		}
	}
}

func TestDailyWithSales(t *testing.T) {
	start := core.NewDate(2025, 5, 1)
	end := core.NewDate(2025, 5, 2)
	orders := []core.Order{
		orderOn(start, 80),
		orderOn(start, 20),
	}
	expenses := []core.Expense{expenseOn(core.NewDate(2025, 5, 2), "Ingredients", 30)}

	entries := Daily(orders, expenses, start, end)
	if entries[0].Sales != 100 || entries[0].Profit != 100 {
		t.Fatalf("unexpected first day: %+v", entries[0])
	}
	if entries[1].Expenses != 30 || entries[1].Profit != -30 {
		t.Fatalf("unexpected second day: %+v", entries[1])
	}
}

func TestSummarize(t *testing.T) {
	day := core.NewDate(2025, 5, 1)
	orders := []core.Order{orderOn(day, 60), orderOn(day, 40)}
	expenses := []core.Expense{expenseOn(day, "Rent", 25)}

	s := Summarize(orders, expenses)
	if s.TotalSales != 100 || s.TotalExpenses != 25 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.OrderCount != 2 || s.AverageOrderValue != 50 {
		t.Fatalf("unexpected order metrics: %+v", s)
	}
	if s.Profit != 75 || s.ProfitMargin != 75 {
		t.Fatalf("unexpected profit metrics: %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	if s.AverageOrderValue != 0 || s.ProfitMargin != 0 {
		t.Fatalf("division guards failed: %+v", s)
	}
}
