package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pft/internal/core"
)

type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err, "component", "http")
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorBody{Error: msg})
}

// respondDomainError maps the core error taxonomy onto HTTP status codes
// and a short human-readable message.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, core.ErrDuplicateAccount):
		respondError(w, http.StatusConflict, "an account with this email already exists")
	case errors.Is(err, core.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "incorrect password")
	case errors.Is(err, core.ErrUnauthenticated):
		respondError(w, http.StatusUnauthorized, "sign in first")
	case errors.Is(err, core.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	default:
		slog.Error("Unexpected error", "error", err, "component", "http")
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// methodNotAllowed writes the standard 405 response.
func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	respondError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
