// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votecast/auth"
	"github.com/danielhkuo/votecast/cliparse"
	"github.com/danielhkuo/votecast/lifecycle"
	"github.com/danielhkuo/votecast/middleware"
	"github.com/danielhkuo/votecast/models"
	"github.com/danielhkuo/votecast/store"
)

type VoteHandler struct {
	manager *lifecycle.Manager
	store   *store.VoteStore
	cfg     cliparse.Config
}

func NewVoteHandler(manager *lifecycle.Manager, st *store.VoteStore, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{manager: manager, store: st, cfg: cfg}
}

// List handles GET /votes
func (h *VoteHandler) List(w http.ResponseWriter, r *http.Request) {
	votes, err := h.store.List()
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}

// Get handles GET /votes/{id}
func (h *VoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote id is required")
		return
	}

	vote, err := h.store.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vote)
}

// Mine handles GET /votes/mine
// Returns the votes created with the caller's voter token.
func (h *VoteHandler) Mine(w http.ResponseWriter, r *http.Request) {
	voterToken := r.Header.Get("X-Voter-Token")
	if voterToken == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Voter-Token header required")
		return
	}

	votes, err := h.store.ListByVoter(voterToken)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}

// Create handles POST /votes
// The caller's voter token is taken from X-Voter-Token or minted here;
// either way it is echoed back in the response header so participants
// can find their votes later.
func (h *VoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voterToken := r.Header.Get("X-Voter-Token")
	if voterToken == "" {
		var err error
		voterToken, err = auth.GenerateVoterToken()
		if err != nil {
			slog.Error("failed to generate voter token", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create vote")
			return
		}
	}

	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)
	userAgent := r.UserAgent()

	vote, err := h.manager.CreateVote(req, voterToken, &ipHash, &userAgent)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("X-Voter-Token", voterToken)
	middleware.JSONResponse(w, http.StatusCreated, vote)
}

// AttachReceipt handles POST /votes/{id}/receipt
func (h *VoteHandler) AttachReceipt(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote id is required")
		return
	}

	var req models.AttachReceiptRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	vote, err := h.manager.AttachReceipt(id, req.ReceiptPreviewURL)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vote)
}
