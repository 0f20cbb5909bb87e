// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielhkuo/votecast/models"
)

// Catalog is the read-only list of votable candidates. The core never
// mutates it; tallies are derived from the vote store, not stored here.
type Catalog struct {
	candidates []models.Candidate
	byID       map[int]models.Candidate
}

// Load reads a candidate catalog from a JSON file. An empty path
// returns the built-in sample catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return New(defaultCandidates), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file: %w", err)
	}

	var candidates []models.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidates file: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("candidates file %s is empty", path)
	}

	return New(candidates), nil
}

// New builds a catalog from an in-memory candidate list.
func New(candidates []models.Candidate) *Catalog {
	byID := make(map[int]models.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}
	return &Catalog{candidates: candidates, byID: byID}
}

// List returns all candidates in catalog order.
func (c *Catalog) List() []models.Candidate {
	return c.candidates
}

// Lookup returns the candidate with the given id.
func (c *Catalog) Lookup(id int) (models.Candidate, bool) {
	candidate, ok := c.byID[id]
	return candidate, ok
}

var defaultCandidates = []models.Candidate{
	{ID: 1, Name: "Amara", Age: 19, City: "Douala", PhotoURL: "assets/candidates/amara.jpeg", Description: "Finalist"},
	{ID: 2, Name: "Francine", Age: 19, City: "Douala", PhotoURL: "assets/candidates/francine.jpeg", Description: "Finalist"},
	{ID: 3, Name: "Brandon", Age: 16, City: "Douala", PhotoURL: "assets/candidates/brandon.jpeg", Description: "Finalist"},
	{ID: 4, Name: "Solange", Age: 20, City: "Douala", PhotoURL: "assets/candidates/solange.jpeg", Description: "Finalist"},
}
