// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/danielhkuo/votecast/models"
)

// Defaults for the polling cadence and the confirmation signal window.
const (
	DefaultInterval  = 3 * time.Second
	DefaultSignalTTL = 5 * time.Second
)

type Config struct {
	// BaseURL of the votecast server, e.g. "http://localhost:3000".
	BaseURL string

	// Interval between polls. Zero means DefaultInterval.
	Interval time.Duration

	// SignalTTL is how long the one-shot confirmation signal stays
	// visible after the tracked vote turns confirmed. Zero means
	// DefaultSignalTTL.
	SignalTTL time.Duration

	// VoterToken identifies this participant's votes. Optional; when
	// set and no vote is tracked yet, the client adopts the most
	// recent vote returned by /votes/mine.
	VoterToken string

	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

// Summary is the derived view state recomputed on every refresh.
type Summary struct {
	TotalVotes     int
	TotalConfirmed int
	Tallies        []models.CandidateTally

	// HasVoted and MyVote reflect the tracked vote, if any.
	HasVoted bool
	MyVote   *models.Vote

	// ShowConfirmation is true for SignalTTL after the tracked vote
	// transitions into confirmed. One-shot: it never re-arms for the
	// same vote.
	ShowConfirmation bool
}

// Client keeps a locally-held view of the vote list consistent with
// the server within one polling interval. It works with or without the
// push channel being connected; pushes only make it refresh sooner.
type Client struct {
	cfg      Config
	client   *http.Client
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time

	mu          sync.RWMutex
	summary     Summary
	trackedID   string
	lastStatus  string
	confirmedAt time.Time
}

func New(cfg Config) *Client {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ttl := cfg.SignalTTL
	if ttl <= 0 {
		ttl = DefaultSignalTTL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		cfg:      cfg,
		client:   client,
		interval: interval,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Track sets the vote id whose status transitions the client watches.
func (c *Client) Track(voteID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.trackedID == voteID {
		return
	}
	c.trackedID = voteID
	c.lastStatus = ""
	c.confirmedAt = time.Time{}
}

// Run polls until ctx is cancelled. Fetch failures are logged and
// retried on the next tick; they never stop the loop.
func (c *Client) Run(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		slog.Warn("initial reconcile failed", "error", err)
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				slog.Warn("reconcile poll failed", "error", err)
			}
		}
	}
}

// Refresh re-pulls the full vote list and the candidate catalog and
// recomputes the derived view state. Safe to call concurrently with
// Run; merging is idempotent.
func (c *Client) Refresh(ctx context.Context) error {
	var votes []models.Vote
	if err := c.fetchJSON(ctx, "/votes", &votes); err != nil {
		return fmt.Errorf("fetch votes: %w", err)
	}

	var candidates []models.Candidate
	if err := c.fetchJSON(ctx, "/candidates", &candidates); err != nil {
		return fmt.Errorf("fetch candidates: %w", err)
	}

	// Adopt this participant's latest vote when nothing is tracked yet.
	c.mu.RLock()
	needsAdoption := c.trackedID == "" && c.cfg.VoterToken != ""
	c.mu.RUnlock()
	if needsAdoption {
		var mine []models.Vote
		if err := c.fetchJSON(ctx, "/votes/mine", &mine); err != nil {
			return fmt.Errorf("fetch own votes: %w", err)
		}
		if len(mine) > 0 {
			c.Track(mine[len(mine)-1].ID)
		}
	}

	c.apply(votes, candidates)
	return nil
}

// Summary returns a snapshot of the derived view state.
func (c *Client) Summary() Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := c.summary
	s.ShowConfirmation = !c.confirmedAt.IsZero() && c.now().Sub(c.confirmedAt) < c.ttl
	return s
}

func (c *Client) apply(votes []models.Vote, candidates []models.Candidate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	summary := tally(votes, candidates)

	if c.trackedID != "" {
		var tracked *models.Vote
		for i := range votes {
			if votes[i].ID == c.trackedID {
				tracked = &votes[i]
				break
			}
		}

		if tracked == nil {
			// Gone after a reset-all: back to "no vote yet".
			c.trackedID = ""
			c.lastStatus = ""
			c.confirmedAt = time.Time{}
		} else {
			if tracked.Status == models.StatusConfirmed &&
				c.lastStatus != "" && c.lastStatus != models.StatusConfirmed {
				c.confirmedAt = c.now()
			}
			c.lastStatus = tracked.Status
			summary.HasVoted = true
			summary.MyVote = tracked
		}
	}

	c.summary = summary
}

func (c *Client) fetchJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return err
	}
	if c.cfg.VoterToken != "" {
		req.Header.Set("X-Voter-Token", c.cfg.VoterToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// tally mirrors the server-side derivation so the client can rebuild
// its view from /votes alone, with no push channel.
func tally(votes []models.Vote, candidates []models.Candidate) Summary {
	confirmedByCandidate := make(map[int]int)
	totalConfirmed := 0
	for _, v := range votes {
		if v.Status == models.StatusConfirmed {
			confirmedByCandidate[v.CandidateID]++
			totalConfirmed++
		}
	}

	tallies := make([]models.CandidateTally, 0, len(candidates))
	for _, candidate := range candidates {
		confirmed := confirmedByCandidate[candidate.ID]
		percent := 0.0
		if totalConfirmed > 0 {
			percent = math.Round(float64(confirmed) / float64(totalConfirmed) * 100)
		}
		tallies = append(tallies, models.CandidateTally{
			CandidateID: candidate.ID,
			Name:        candidate.Name,
			Confirmed:   confirmed,
			Percent:     percent,
		})
	}

	return Summary{
		TotalVotes:     len(votes),
		TotalConfirmed: totalConfirmed,
		Tallies:        tallies,
	}
}
