// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"

	"github.com/danielhkuo/votecast/models"
)

// ComputeTallies derives per-candidate confirmed counts and
// percentages from a vote list. Tallies are always derived from the
// store at read time, never cached on the candidate, so they cannot
// drift from the records.
func ComputeTallies(votes []models.Vote, candidates []models.Candidate) models.StatsResponse {
	confirmedByCandidate := make(map[int]int)
	totalConfirmed := 0
	for _, v := range votes {
		if v.Status == models.StatusConfirmed {
			confirmedByCandidate[v.CandidateID]++
			totalConfirmed++
		}
	}

	tallies := make([]models.CandidateTally, 0, len(candidates))
	for _, c := range candidates {
		confirmed := confirmedByCandidate[c.ID]
		percent := 0.0
		if totalConfirmed > 0 {
			percent = math.Round(float64(confirmed) / float64(totalConfirmed) * 100)
		}
		tallies = append(tallies, models.CandidateTally{
			CandidateID: c.ID,
			Name:        c.Name,
			Confirmed:   confirmed,
			Percent:     percent,
		})
	}

	return models.StatsResponse{
		TotalVotes:     len(votes),
		TotalConfirmed: totalConfirmed,
		Candidates:     tallies,
	}
}
