// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/votecast/models"
	"github.com/danielhkuo/votecast/testutil"
)

func candidates() []models.Candidate {
	return []models.Candidate{
		{ID: 1, Name: "Ada"},
		{ID: 2, Name: "Blaise"},
		{ID: 3, Name: "Chantal"},
	}
}

func TestComputeTalliesEmpty(t *testing.T) {
	stats := ComputeTallies(nil, candidates())

	if stats.TotalVotes != 0 || stats.TotalConfirmed != 0 {
		t.Errorf("Expected zero totals, got %+v", stats)
	}
	if len(stats.Candidates) != 3 {
		t.Fatalf("Expected a tally per candidate, got %d", len(stats.Candidates))
	}
	for _, tally := range stats.Candidates {
		if tally.Confirmed != 0 || tally.Percent != 0 {
			t.Errorf("Candidate %d: expected zeros, got %+v", tally.CandidateID, tally)
		}
	}
}

func TestComputeTalliesCountsOnlyConfirmed(t *testing.T) {
	votes := []models.Vote{
		{ID: "a", CandidateID: 1, Status: models.StatusConfirmed},
		{ID: "b", CandidateID: 1, Status: models.StatusPending},
		{ID: "c", CandidateID: 1, Status: models.StatusRejected},
		{ID: "d", CandidateID: 2, Status: models.StatusConfirmed},
		{ID: "e", CandidateID: 2, Status: models.StatusConfirmed},
		{ID: "f", CandidateID: 2, Status: models.StatusConfirmed},
	}

	stats := ComputeTallies(votes, candidates())

	if stats.TotalVotes != 6 {
		t.Errorf("Expected 6 total votes, got %d", stats.TotalVotes)
	}
	if stats.TotalConfirmed != 4 {
		t.Errorf("Expected 4 confirmed, got %d", stats.TotalConfirmed)
	}

	byID := make(map[int]models.CandidateTally)
	for _, tally := range stats.Candidates {
		byID[tally.CandidateID] = tally
	}

	if byID[1].Confirmed != 1 || byID[1].Percent != 25 {
		t.Errorf("Candidate 1: expected 1/25%%, got %+v", byID[1])
	}
	if byID[2].Confirmed != 3 || byID[2].Percent != 75 {
		t.Errorf("Candidate 2: expected 3/75%%, got %+v", byID[2])
	}
	if byID[3].Confirmed != 0 || byID[3].Percent != 0 {
		t.Errorf("Candidate 3: expected 0/0%%, got %+v", byID[3])
	}
}

func TestComputeTalliesRoundsPercent(t *testing.T) {
	votes := []models.Vote{
		{ID: "a", CandidateID: 1, Status: models.StatusConfirmed},
		{ID: "b", CandidateID: 2, Status: models.StatusConfirmed},
		{ID: "c", CandidateID: 2, Status: models.StatusConfirmed},
	}

	stats := ComputeTallies(votes, candidates())

	byID := make(map[int]models.CandidateTally)
	for _, tally := range stats.Candidates {
		byID[tally.CandidateID] = tally
	}
	if byID[1].Percent != 33 {
		t.Errorf("Expected 33 after rounding, got %v", byID[1].Percent)
	}
	if byID[2].Percent != 67 {
		t.Errorf("Expected 67 after rounding, got %v", byID[2].Percent)
	}
}

func TestStatsEndpoint(t *testing.T) {
	env := setupEnv(t)
	testutil.CreateTestVote(t, env.store, 1, models.StatusConfirmed, testutil.StrPtr("data:image/png;base64,AAAA"))
	testutil.CreateTestVote(t, env.store, 2, models.StatusPending, nil)

	req := testutil.MakeRequest("GET", "/stats", nil, nil)
	w := httptest.NewRecorder()
	env.candidates.Stats(w, req)

	testutil.AssertStatus(t, w, 200)

	var stats models.StatsResponse
	testutil.AssertJSON(t, w, &stats)
	if stats.TotalVotes != 2 || stats.TotalConfirmed != 1 {
		t.Errorf("Expected 2 votes / 1 confirmed, got %+v", stats)
	}
}

func TestCandidatesEndpoint(t *testing.T) {
	env := setupEnv(t)

	req := testutil.MakeRequest("GET", "/candidates", nil, nil)
	w := httptest.NewRecorder()
	env.candidates.List(w, req)

	testutil.AssertStatus(t, w, 200)

	var list []models.Candidate
	testutil.AssertJSON(t, w, &list)
	if len(list) != 3 {
		t.Errorf("Expected 3 catalog entries, got %d", len(list))
	}
}
