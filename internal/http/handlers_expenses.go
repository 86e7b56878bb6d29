package http

import (
	"net/http"

	"dukaan/internal/core"
)

type createExpenseRequest struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date := core.Today()
	if req.Date != "" {
		var err error
		if date, err = core.ParseDate(req.Date); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	expense, err := s.shop.AddExpense(r.Context(), date, req.Category, req.Amount, req.Description)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidate()
	writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) expenseCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": core.ExpenseCategories})
}
