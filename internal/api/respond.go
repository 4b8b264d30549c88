package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"codmart-be/internal/cart"
	"codmart-be/internal/catalog"
	"codmart-be/internal/order"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, message string, code int) {
	writeJSON(w, code, map[string]string{"error": message})
}

// writeError maps domain error kinds onto HTTP statuses. Anything
// unrecognized is a 500 with a generic message so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidLookup),
		errors.Is(err, cart.ErrUnknownProduct),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidStatus):
		writeJSONError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		writeJSONError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, order.ErrStorageFailure):
		writeJSONError(w, err.Error(), http.StatusInternalServerError)

	default:
		writeJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
