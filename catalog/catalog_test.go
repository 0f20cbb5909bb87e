// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/votecast/models"
)

func TestLoadDefaultCatalog(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	if len(cat.List()) == 0 {
		t.Fatal("Built-in catalog should not be empty")
	}

	first := cat.List()[0]
	if _, ok := cat.Lookup(first.ID); !ok {
		t.Errorf("Lookup(%d) should find the first catalog entry", first.ID)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")
	content := `[
		{"id": 10, "name": "Nadia", "age": 22, "city": "Yaoundé", "photoUrl": "assets/nadia.jpeg", "description": "Finalist"},
		{"id": 11, "name": "Paul", "age": 18, "city": "Limbe", "photoUrl": "assets/paul.jpeg", "description": "Finalist"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write catalog fixture: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cat.List()) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(cat.List()))
	}

	candidate, ok := cat.Lookup(11)
	if !ok {
		t.Fatal("Lookup(11) should find Paul")
	}
	if candidate.Name != "Paul" || candidate.City != "Limbe" {
		t.Errorf("Unexpected candidate: %+v", candidate)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("/no/such/file.json"); err == nil {
		t.Error("Expected error for missing file")
	}

	badPath := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(badPath, []byte("{not json"), 0o600)
	if _, err := Load(badPath); err == nil {
		t.Error("Expected error for malformed JSON")
	}

	emptyPath := filepath.Join(t.TempDir(), "empty.json")
	os.WriteFile(emptyPath, []byte("[]"), 0o600)
	if _, err := Load(emptyPath); err == nil {
		t.Error("Expected error for empty candidate list")
	}
}

func TestLookupUnknown(t *testing.T) {
	cat := New([]models.Candidate{{ID: 1, Name: "Ada"}})

	if _, ok := cat.Lookup(99); ok {
		t.Error("Lookup(99) should not find anything")
	}
}

func TestListPreservesOrder(t *testing.T) {
	cat := New([]models.Candidate{
		{ID: 3, Name: "C"},
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	})

	got := cat.List()
	want := []string{"C", "A", "B"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("List()[%d] = %s, want %s", i, got[i].Name, name)
		}
	}
}
