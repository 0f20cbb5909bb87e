// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votecast/lifecycle"
	"github.com/danielhkuo/votecast/middleware"
	"github.com/danielhkuo/votecast/store"
)

// respondError maps the error taxonomy onto HTTP statuses so clients
// can tell retryable failures (storage) from usage errors.
//
//	store.ErrNotFound           → 404
//	lifecycle.ValidationError   → 400
//	lifecycle.ErrInvalidTransition → 409
//	store.ErrStorageUnavailable → 503
func respondError(w http.ResponseWriter, err error) {
	var validationErr *lifecycle.ValidationError

	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Vote not found")
	case errors.As(err, &validationErr):
		middleware.ErrorResponse(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrStorageUnavailable):
		slog.Error("storage failure", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Storage unavailable, retry later")
	default:
		slog.Error("unexpected handler error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
