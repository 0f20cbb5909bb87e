// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/votecast/catalog"
	"github.com/danielhkuo/votecast/middleware"
	"github.com/danielhkuo/votecast/store"
)

type CandidateHandler struct {
	catalog *catalog.Catalog
	store   *store.VoteStore
}

func NewCandidateHandler(cat *catalog.Catalog, st *store.VoteStore) *CandidateHandler {
	return &CandidateHandler{catalog: cat, store: st}
}

// List handles GET /candidates
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.catalog.List())
}

// Stats handles GET /stats
// Returns confirmed tallies and percentages derived from the current
// vote list.
func (h *CandidateHandler) Stats(w http.ResponseWriter, r *http.Request) {
	votes, err := h.store.List()
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ComputeTallies(votes, h.catalog.List()))
}
