// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/votecast/models"
)

// fakeServer is a minimal stand-in for the votecast API.
type fakeServer struct {
	mu         sync.Mutex
	votes      []models.Vote
	candidates []models.Candidate
	failing    bool

	server *httptest.Server
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	f := &fakeServer{
		candidates: []models.Candidate{
			{ID: 1, Name: "Ada"},
			{ID: 2, Name: "Blaise"},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /votes", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failing {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(f.votes)
	})
	mux.HandleFunc("GET /votes/mine", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		token := r.Header.Get("X-Voter-Token")
		mine := []models.Vote{}
		for _, v := range f.votes {
			if v.VoterToken == token {
				mine = append(mine, v)
			}
		}
		json.NewEncoder(w).Encode(mine)
	})
	mux.HandleFunc("GET /candidates", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		json.NewEncoder(w).Encode(f.candidates)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeServer) setVotes(votes ...models.Vote) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.votes = votes
}

func (f *fakeServer) setFailing(failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = failing
}

// fakeClock lets tests move time past the signal TTL.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestClient(f *fakeServer, cfg Config) (*Client, *fakeClock) {
	cfg.BaseURL = f.server.URL
	c := New(cfg)
	clock := &fakeClock{t: time.Now()}
	c.now = clock.Now
	return c, clock
}

func TestRefreshComputesSummary(t *testing.T) {
	f := newFakeServer(t)
	f.setVotes(
		models.Vote{ID: "a", CandidateID: 1, Status: models.StatusConfirmed},
		models.Vote{ID: "b", CandidateID: 1, Status: models.StatusPending},
		models.Vote{ID: "c", CandidateID: 2, Status: models.StatusConfirmed},
		models.Vote{ID: "d", CandidateID: 2, Status: models.StatusConfirmed},
	)
	c, _ := newTestClient(f, Config{})

	require.NoError(t, c.Refresh(context.Background()))

	s := c.Summary()
	assert.Equal(t, 4, s.TotalVotes)
	assert.Equal(t, 3, s.TotalConfirmed)
	assert.False(t, s.HasVoted)
	assert.Nil(t, s.MyVote)

	require.Len(t, s.Tallies, 2)
	assert.Equal(t, 1, s.Tallies[0].Confirmed)
	assert.Equal(t, float64(33), s.Tallies[0].Percent)
	assert.Equal(t, 2, s.Tallies[1].Confirmed)
	assert.Equal(t, float64(67), s.Tallies[1].Percent)
}

func TestRefreshHandlesEmptyResult(t *testing.T) {
	f := newFakeServer(t)
	c, _ := newTestClient(f, Config{})

	require.NoError(t, c.Refresh(context.Background()))

	s := c.Summary()
	assert.Equal(t, 0, s.TotalVotes)
	assert.False(t, s.HasVoted)
}

func TestConfirmationSignalIsOneShot(t *testing.T) {
	f := newFakeServer(t)
	f.setVotes(models.Vote{ID: "mine", CandidateID: 2, Status: models.StatusPending})
	c, clock := newTestClient(f, Config{SignalTTL: 5 * time.Second})
	c.Track("mine")

	ctx := context.Background()
	require.NoError(t, c.Refresh(ctx))

	s := c.Summary()
	assert.True(t, s.HasVoted)
	require.NotNil(t, s.MyVote)
	assert.Equal(t, models.StatusPending, s.MyVote.Status)
	assert.False(t, s.ShowConfirmation)

	// Transition into confirmed arms the signal.
	f.setVotes(models.Vote{ID: "mine", CandidateID: 2, Status: models.StatusConfirmed})
	require.NoError(t, c.Refresh(ctx))
	assert.True(t, c.Summary().ShowConfirmation)

	// Re-observing confirmed does not extend the window.
	clock.Advance(3 * time.Second)
	require.NoError(t, c.Refresh(ctx))
	assert.True(t, c.Summary().ShowConfirmation)

	clock.Advance(3 * time.Second)
	assert.False(t, c.Summary().ShowConfirmation, "signal must expire after TTL")

	// One-shot: later polls that still see confirmed never re-arm it.
	require.NoError(t, c.Refresh(ctx))
	assert.False(t, c.Summary().ShowConfirmation)
}

func TestNoSignalWhenFirstObservationIsConfirmed(t *testing.T) {
	f := newFakeServer(t)
	f.setVotes(models.Vote{ID: "mine", CandidateID: 1, Status: models.StatusConfirmed})
	c, _ := newTestClient(f, Config{})
	c.Track("mine")

	require.NoError(t, c.Refresh(context.Background()))

	// A client that never saw pending has nothing to announce.
	assert.False(t, c.Summary().ShowConfirmation)
	assert.True(t, c.Summary().HasVoted)
}

func TestTrackedVoteDisappearing(t *testing.T) {
	f := newFakeServer(t)
	f.setVotes(models.Vote{ID: "mine", CandidateID: 1, Status: models.StatusPending})
	c, _ := newTestClient(f, Config{})
	c.Track("mine")

	ctx := context.Background()
	require.NoError(t, c.Refresh(ctx))
	assert.True(t, c.Summary().HasVoted)

	// Administrative reset: the vote list comes back empty.
	f.setVotes()
	require.NoError(t, c.Refresh(ctx))

	s := c.Summary()
	assert.False(t, s.HasVoted, "vanished vote means no vote yet")
	assert.Nil(t, s.MyVote)
	assert.False(t, s.ShowConfirmation)
}

func TestAdoptsOwnLatestVote(t *testing.T) {
	f := newFakeServer(t)
	f.setVotes(
		models.Vote{ID: "other", CandidateID: 1, Status: models.StatusPending, VoterToken: "someone-else"},
		models.Vote{ID: "first", CandidateID: 2, Status: models.StatusRejected, VoterToken: "me"},
		models.Vote{ID: "second", CandidateID: 2, Status: models.StatusPending, VoterToken: "me"},
	)
	c, _ := newTestClient(f, Config{VoterToken: "me"})

	require.NoError(t, c.Refresh(context.Background()))

	s := c.Summary()
	require.True(t, s.HasVoted)
	assert.Equal(t, "second", s.MyVote.ID, "client adopts its most recent vote")
}

func TestRunSurvivesFetchFailures(t *testing.T) {
	f := newFakeServer(t)
	f.setFailing(true)
	c, _ := newTestClient(f, Config{Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	// Let a few failing polls happen, then recover the server.
	time.Sleep(50 * time.Millisecond)
	f.setVotes(models.Vote{ID: "a", CandidateID: 1, Status: models.StatusConfirmed})
	f.setFailing(false)

	require.Eventually(t, func() bool {
		return c.Summary().TotalConfirmed == 1
	}, 2*time.Second, 10*time.Millisecond, "poll loop must recover after transient failures")
}

// A vote confirmed while no push channel is connected must still be
// observed within one polling interval.
func TestMissedPushIsReconciled(t *testing.T) {
	f := newFakeServer(t)
	f.setVotes(models.Vote{ID: "mine", CandidateID: 1, Status: models.StatusPending})
	c, _ := newTestClient(f, Config{Interval: 10 * time.Millisecond})
	c.Track("mine")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	require.Eventually(t, func() bool {
		s := c.Summary()
		return s.HasVoted && s.MyVote.Status == models.StatusPending
	}, 2*time.Second, 5*time.Millisecond)

	// Server-side confirmation happens with no event delivered.
	f.setVotes(models.Vote{ID: "mine", CandidateID: 1, Status: models.StatusConfirmed})

	require.Eventually(t, func() bool {
		s := c.Summary()
		return s.MyVote != nil && s.MyVote.Status == models.StatusConfirmed
	}, 2*time.Second, 5*time.Millisecond)
}
