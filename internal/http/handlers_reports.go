package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"dukaan/internal/core"
	"dukaan/internal/export"
	"dukaan/internal/reports"
)

type salesReportResponse struct {
	Start   core.Date        `json:"start"`
	End     core.Date        `json:"end"`
	Summary core.Summary     `json:"summary"`
	Items   []core.ItemSales `json:"items"`
}

type expenseReportResponse struct {
	Start      core.Date            `json:"start"`
	End        core.Date            `json:"end"`
	Total      float64              `json:"total"`
	Categories []core.CategoryTotal `json:"categories"`
	Expenses   []core.Expense       `json:"expenses"`
}

type dashboardResponse struct {
	Start    core.Date         `json:"start"`
	End      core.Date         `json:"end"`
	Summary  core.Summary      `json:"summary"`
	Daily    []core.DailyEntry `json:"daily"`
	TopItems []core.ItemSales  `json:"top_items"`
}

func (s *Server) salesReport(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r, defaultSalesWindow)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := rangeKey(start, end)
	if resp, ok := s.salesCache.Get(key); ok {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	orders := reports.OrdersInRange(s.shop.Orders(), start, end)
	resp := salesReportResponse{
		Start:   start,
		End:     end,
		Summary: reports.Summarize(orders, nil),
		Items:   reports.SalesByItem(orders),
	}
	s.salesCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) salesExport(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r, defaultSalesWindow)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	orders := reports.OrdersInRange(s.shop.Orders(), start, end)
	rs := export.OrderRows(orders)
	if rs == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeCSV(w, export.SalesReportFilename(start, end), rs)
}

func (s *Server) expenseReport(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r, defaultExpenseWindow)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := rangeKey(start, end)
	if resp, ok := s.expenseCache.Get(key); ok {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	expenses := reports.ExpensesInRange(s.shop.Expenses(), start, end)
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	resp := expenseReportResponse{
		Start:      start,
		End:        end,
		Total:      total,
		Categories: reports.ExpensesByCategory(expenses),
		Expenses:   expenses,
	}
	s.expenseCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) expenseExport(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r, defaultExpenseWindow)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	expenses := reports.ExpensesInRange(s.shop.Expenses(), start, end)
	rs := export.ExpenseRows(expenses)
	if rs == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeCSV(w, export.ExpenseReportFilename(start, end), rs)
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r, defaultDashboardWindow)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := rangeKey(start, end)
	if resp, ok := s.dashCache.Get(key); ok {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	orders := reports.OrdersInRange(s.shop.Orders(), start, end)
	expenses := reports.ExpensesInRange(s.shop.Expenses(), start, end)
	resp := dashboardResponse{
		Start:    start,
		End:      end,
		Summary:  reports.Summarize(orders, expenses),
		Daily:    reports.Daily(orders, expenses, start, end),
		TopItems: reports.TopItems(orders, 10),
	}
	s.dashCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func writeCSV(w http.ResponseWriter, filename string, rs *export.RowSet) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := rs.WriteCSV(w); err != nil {
		// Headers are already written; nothing left to do but log.
		slog.Error("Failed to stream csv export", "error", err, "filename", filename)
	}
}
