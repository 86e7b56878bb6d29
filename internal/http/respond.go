package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"dukaan/internal/core"
	"dukaan/internal/reports"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps domain sentinels onto HTTP statuses. Validation
// failures are 422, bad ranges 400, everything else 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrEmptyOrder),
		errors.Is(err, core.ErrInvalidQuantity),
		errors.Is(err, core.ErrInvalidPrice),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrTotalMismatch),
		errors.Is(err, core.ErrUnknownExpenseCategory):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, core.ErrInvalidDateRange):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// parseRange reads start/end query parameters, defaulting to the last
// windowDays days ending today. Both bounds are inclusive calendar dates.
func parseRange(r *http.Request, windowDays int) (start, end core.Date, err error) {
	end = core.Today()
	start = end.AddDays(-windowDays)

	if v := r.URL.Query().Get("start"); v != "" {
		if start, err = core.ParseDate(v); err != nil {
			return core.Date{}, core.Date{}, err
		}
	}
	if v := r.URL.Query().Get("end"); v != "" {
		if end, err = core.ParseDate(v); err != nil {
			return core.Date{}, core.Date{}, err
		}
	}
	if err = reports.ValidateRange(start, end); err != nil {
		return core.Date{}, core.Date{}, err
	}
	return start, end, nil
}

func rangeKey(start, end core.Date) string {
	return start.String() + "_" + end.String()
}
