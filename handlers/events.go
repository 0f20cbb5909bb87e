// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votecast/middleware"
	"github.com/danielhkuo/votecast/notify"
)

type EventsHandler struct {
	broadcaster *notify.Broadcaster
}

func NewEventsHandler(b *notify.Broadcaster) *EventsHandler {
	return &EventsHandler{broadcaster: b}
}

// Stream handles GET /events
// Server-sent events: once open, the connection receives one
//
//	event: <kind>
//	data: <json>
//
// frame per vote state change until the client disconnects. There is
// no replay; a client that connects late resynchronizes by re-fetching
// /votes.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := h.broadcaster.Subscribe()
	// Transport close removes the subscription promptly so the
	// registry cannot grow with dead connections.
	defer h.broadcaster.Unsubscribe(sub.ID)

	for {
		select {
		case <-r.Context().Done():
			// Flush whatever was queued before the disconnect.
			for {
				select {
				case event, ok := <-sub.C:
					if !ok {
						return
					}
					if err := writeFrame(w, event); err != nil {
						return
					}
					flusher.Flush()
				default:
					return
				}
			}
		case event, ok := <-sub.C:
			if !ok {
				// Dropped by the broadcaster (slow consumer).
				return
			}
			if err := writeFrame(w, event); err != nil {
				slog.Warn("failed to write event frame", "subscriber_id", sub.ID, "error", err)
				return
			}
			flusher.Flush()
		}
	}
}

func writeFrame(w http.ResponseWriter, event notify.Event) error {
	payload := []byte("{}")
	if event.Vote != nil {
		data, err := json.Marshal(event.Vote)
		if err != nil {
			return err
		}
		payload = data
	}

	_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Kind, payload)
	return err
}
