// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/votecast/catalog"
	"github.com/danielhkuo/votecast/cliparse"
	"github.com/danielhkuo/votecast/handlers"
	"github.com/danielhkuo/votecast/lifecycle"
	"github.com/danielhkuo/votecast/middleware"
	"github.com/danielhkuo/votecast/notify"
	"github.com/danielhkuo/votecast/store"
)

func NewRouter(manager *lifecycle.Manager, st *store.VoteStore, broadcaster *notify.Broadcaster, cat *catalog.Catalog, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(manager, st, cfg)
	adminHandler := handlers.NewAdminHandler(manager, cfg)
	candidateHandler := handlers.NewCandidateHandler(cat, st)
	eventsHandler := handlers.NewEventsHandler(broadcaster)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Vote operations (public)
	mux.HandleFunc("GET /votes", middleware.WithLogging(voteHandler.List))
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.Create))
	mux.HandleFunc("GET /votes/mine", middleware.WithLogging(voteHandler.Mine))
	mux.HandleFunc("GET /votes/{id}", middleware.WithLogging(voteHandler.Get))
	mux.HandleFunc("POST /votes/{id}/receipt", middleware.WithLogging(voteHandler.AttachReceipt))

	// Admin decisions (X-Admin-Key)
	mux.HandleFunc("PUT /votes/{id}/validate", middleware.WithLogging(adminHandler.Validate))
	mux.HandleFunc("PUT /votes/{id}/reject", middleware.WithLogging(adminHandler.Reject))
	mux.HandleFunc("DELETE /votes", middleware.WithLogging(adminHandler.Reset))

	// Catalog and derived tallies (public)
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("GET /stats", middleware.WithLogging(candidateHandler.Stats))

	// Live event stream. Not wrapped with the logger: the request only
	// completes when the client disconnects.
	mux.HandleFunc("GET /events", eventsHandler.Stream)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("votecast API v1"))
	})

	return mux
}
