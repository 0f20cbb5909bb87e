// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/votecast/auth"
	"github.com/danielhkuo/votecast/cliparse"
	"github.com/danielhkuo/votecast/lifecycle"
	"github.com/danielhkuo/votecast/middleware"
)

type AdminHandler struct {
	manager *lifecycle.Manager
	cfg     cliparse.Config
}

func NewAdminHandler(manager *lifecycle.Manager, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{manager: manager, cfg: cfg}
}

// requireAdmin validates the X-Admin-Key header. Returns false after
// writing the error response when the key is missing or wrong.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// Validate handles PUT /votes/{id}/validate
// Confirms a pending vote; broadcasts voteValidated on success.
func (h *AdminHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote id is required")
		return
	}

	vote, err := h.manager.Confirm(id)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vote)
}

// Reject handles PUT /votes/{id}/reject
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote id is required")
		return
	}

	vote, err := h.manager.Reject(id)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vote)
}

// Reset handles DELETE /votes
// Clears the entire vote store.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.manager.ResetAll(); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
