package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dukaan/internal/core"
)

type createMenuItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// getMenu returns the menu grouped into sections for the order entry
// view, category order preserved, stray categories under the fallback.
func (s *Server) getMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sections": s.shop.MenuByCategory()})
}

func (s *Server) listMenuItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.shop.MenuItems()})
}

func (s *Server) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var req createMenuItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.shop.AddMenuItem(r.Context(), req.Name, req.Price, req.Category)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidate()
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.shop.DeleteMenuItem(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listMenuCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": s.shop.MenuCategories()})
}

func (s *Server) createMenuCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	added, err := s.shop.AddMenuCategory(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !added {
		writeError(w, http.StatusConflict, core.ErrDuplicateCategory.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"category": req.Name})
}
