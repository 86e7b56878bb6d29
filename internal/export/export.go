// Package export flattens orders and expenses into tabular row sets and
// writes them as UTF-8 CSV for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"dukaan/internal/core"
)

// RowSet is a header plus data rows, ready for CSV encoding. A nil RowSet
// means there was nothing to export, so callers can skip offering a
// download instead of producing a header-only file.
type RowSet struct {
	Header []string
	Rows   [][]string
}

// OrderRows flattens orders into one row per order line. Returns nil for
// an empty order list.
func OrderRows(orders []core.Order) *RowSet {
	if len(orders) == 0 {
		return nil
	}
	rs := &RowSet{
		Header: []string{"Order ID", "Date", "Time", "Item", "Quantity", "Price", "Subtotal"},
	}
	for _, o := range orders {
		for _, l := range o.Items {
			rs.Rows = append(rs.Rows, []string{
				o.ID,
				o.Date.Format(core.DateLayout),
				o.Date.Format("15:04:05"),
				l.Name,
				strconv.Itoa(l.Quantity),
				formatAmount(l.Price),
				formatAmount(l.Subtotal),
			})
		}
	}
	return rs
}

// ExpenseRows flattens expenses into one row each. Returns nil for an
// empty expense list.
func ExpenseRows(expenses []core.Expense) *RowSet {
	if len(expenses) == 0 {
		return nil
	}
	rs := &RowSet{
		Header: []string{"Expense ID", "Date", "Category", "Amount", "Description"},
	}
	for _, e := range expenses {
		rs.Rows = append(rs.Rows, []string{
			e.ID,
			e.Date.String(),
			e.Category,
			formatAmount(e.Amount),
			e.Description,
		})
	}
	return rs
}

// WriteCSV encodes the row set, header first.
func (rs *RowSet) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rs.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rs.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SalesReportFilename names the orders export for a date range.
func SalesReportFilename(start, end core.Date) string {
	return fmt.Sprintf("sales_report_%s_to_%s.csv", start, end)
}

// ExpenseReportFilename names the expenses export for a date range.
func ExpenseReportFilename(start, end core.Date) string {
	return fmt.Sprintf("expense_report_%s_to_%s.csv", start, end)
}

// formatAmount renders a numeric amount without a forced decimal tail, so
// whole-rupee values export as "20" rather than "20.000000".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
