// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// reconnectDelay between attempts to reopen the event stream.
const reconnectDelay = time.Second

// Listen consumes the server's /events stream and triggers a refresh
// for every received frame. It reconnects after stream errors and
// returns only when ctx is cancelled.
//
// The poll loop alone keeps the view consistent within one interval;
// the stream only lowers perceived latency. Run both in separate
// goroutines.
func (c *Client) Listen(ctx context.Context) {
	for {
		if err := c.consumeStream(ctx); err != nil && ctx.Err() == nil {
			slog.Warn("event stream closed", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (c *Client) consumeStream(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/events", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /events: unexpected status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	// Receipt images travel base64-inline in event payloads.
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	kind := ""
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			kind = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, ":"):
			// comment/keepalive
		case line == "":
			if kind != "" {
				slog.Debug("push event received", "kind", kind)
				if err := c.Refresh(ctx); err != nil {
					slog.Warn("refresh after push failed", "kind", kind, "error", err)
				}
				kind = ""
			}
		}
	}
	return scanner.Err()
}
