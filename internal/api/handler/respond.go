package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/arco/demo/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSON decodes exactly one JSON value with no unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errTrailingData
	}
	return nil
}

// mapError translates domain sentinel errors to HTTP status codes.
// All mapping lives here so individual handlers stay concise.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, domain.ErrNotFound.Error())
	case errors.Is(err, domain.ErrConflict):
		respondError(w, http.StatusConflict, domain.ErrConflict.Error())
	case errors.Is(err, domain.ErrInvalidUserID):
		respondError(w, http.StatusUnprocessableEntity, domain.ErrInvalidUserID.Error())
	case errors.Is(err, domain.ErrInvalidName):
		respondError(w, http.StatusUnprocessableEntity, domain.ErrInvalidName.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// MethodNotAllowed is installed as the router's 405 handler.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "method not allowed")
}
