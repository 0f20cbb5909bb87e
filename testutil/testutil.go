// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/votecast/catalog"
	"github.com/danielhkuo/votecast/cliparse"
	"github.com/danielhkuo/votecast/db"
	"github.com/danielhkuo/votecast/models"
	"github.com/danielhkuo/votecast/store"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each call gets its own database, so tests stay independent.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := db.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// TestConfig returns a standard test configuration
func TestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3000,
		DatabaseType:    "sqlite",
		DatabaseURL:     ":memory:",
		AdminKey:        "test-admin-key",
		IPHashSalt:      "test-ip-salt",
		ReceiptRequired: true,
	}
}

// TestCatalog returns a small fixed candidate catalog
func TestCatalog() *catalog.Catalog {
	return catalog.New([]models.Candidate{
		{ID: 1, Name: "Ada", Age: 21, City: "Yaoundé", PhotoURL: "assets/ada.jpeg", Description: "Finalist"},
		{ID: 2, Name: "Blaise", Age: 19, City: "Douala", PhotoURL: "assets/blaise.jpeg", Description: "Finalist"},
		{ID: 3, Name: "Chantal", Age: 23, City: "Bafoussam", PhotoURL: "assets/chantal.jpeg", Description: "Finalist"},
	})
}

// CreateTestVote appends a vote and, when status is terminal, drives it
// there through the store's update path.
func CreateTestVote(t *testing.T, st *store.VoteStore, candidateID int, status string, receipt *string) models.Vote {
	t.Helper()

	vote, err := st.Append(models.Vote{
		CandidateID:       candidateID,
		Status:            models.StatusPending,
		ReceiptPreviewURL: receipt,
		VoterToken:        "test-voter-" + uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	if status != models.StatusPending {
		vote, err = st.Update(vote.ID, func(v *models.Vote) error {
			v.Status = status
			return nil
		})
		if err != nil {
			t.Fatalf("Failed to set test vote status: %v", err)
		}
	}

	return vote
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// StrPtr returns a pointer to s. Handy for optional request fields.
func StrPtr(s string) *string {
	return &s
}
