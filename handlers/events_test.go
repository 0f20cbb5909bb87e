// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/votecast/models"
	"github.com/danielhkuo/votecast/notify"
	"github.com/danielhkuo/votecast/testutil"
)

// runStream starts the SSE handler on a cancellable request and
// returns a stop function that waits for the handler to finish.
func runStream(t *testing.T, env *testEnv, w *httptest.ResponseRecorder) (stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	req := testutil.MakeRequest("GET", "/events", nil, nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		env.events.Stream(w, req)
	}()

	// Wait for the subscription to land before publishing.
	deadline := time.After(2 * time.Second)
	for env.broadcaster.Count() == 0 {
		select {
		case <-deadline:
			t.Fatal("handler never subscribed")
		case <-time.After(time.Millisecond):
		}
	}

	return func() {
		cancel()
		<-done
	}
}

func TestStreamEmitsEventFrames(t *testing.T) {
	env := setupEnv(t)
	w := httptest.NewRecorder()
	stop := runStream(t, env, w)

	vote := models.Vote{ID: "v1", CandidateID: 2, Status: models.StatusConfirmed}
	env.broadcaster.Publish(notify.Event{Kind: models.EventVoteValidated, Vote: &vote})

	stop()

	if got := w.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("Expected text/event-stream, got %q", got)
	}

	body := w.Body.String()
	if !strings.Contains(body, "event: voteValidated\n") {
		t.Errorf("Missing event line, body: %q", body)
	}
	if !strings.Contains(body, `"id":"v1"`) {
		t.Errorf("Missing payload, body: %q", body)
	}
	if !strings.Contains(body, "\n\n") {
		t.Errorf("Frame must end with a blank line, body: %q", body)
	}
}

func TestStreamResetFrameHasEmptyPayload(t *testing.T) {
	env := setupEnv(t)
	w := httptest.NewRecorder()
	stop := runStream(t, env, w)

	env.broadcaster.Publish(notify.Event{Kind: models.EventVotesReset})

	stop()

	if !strings.Contains(w.Body.String(), "event: votesReset\ndata: {}\n\n") {
		t.Errorf("Expected empty-object data frame, body: %q", w.Body.String())
	}
}

func TestStreamUnsubscribesOnDisconnect(t *testing.T) {
	env := setupEnv(t)
	w := httptest.NewRecorder()
	stop := runStream(t, env, w)

	stop()

	if env.broadcaster.Count() != 0 {
		t.Errorf("Expected prompt unsubscribe on disconnect, %d left", env.broadcaster.Count())
	}
}
