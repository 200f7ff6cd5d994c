package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getPathUUID parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: %s is required", ErrInvalidPathParam, paramName)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s has invalid format", ErrInvalidPathParam, paramName)
	}
	return id, nil
}

// getPathIndex parses a non-negative integer path parameter.
func getPathIndex(r *http.Request, paramName string) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, paramName))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidPathParam, paramName)
	}
	return n, nil
}

// getQueryInt parses an optional integer query parameter, returning fallback
// when it is absent.
func getQueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidQueryParam, name)
	}
	return n, nil
}
