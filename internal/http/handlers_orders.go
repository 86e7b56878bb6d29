package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dukaan/internal/core"
)

type createOrderRequest struct {
	Items []core.OrderLine `json:"items"`
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Zero-quantity lines are how clients leave an item unselected.
	lines := req.Items[:0]
	for _, l := range req.Items {
		if l.Quantity == 0 {
			continue
		}
		lines = append(lines, l)
	}

	order, err := s.shop.AddOrder(r.Context(), lines)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidate()
	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) recentOrders(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	orders := s.shop.RecentOrders(limit)
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.shop.DeleteOrder(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidate()
	w.WriteHeader(http.StatusNoContent)
}
