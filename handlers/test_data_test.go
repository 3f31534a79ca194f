package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"orgportal/backend/models"
	"orgportal/backend/services/content"
)

func TestSeedContentHandler(t *testing.T) {
	store := content.NewStore(content.Options{})
	handler := SeedContentHandler(store)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/test/seed-content?links=8", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Links   int  `json:"links"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Links != 8 {
		t.Errorf("Unexpected response %+v", resp)
	}

	snap := store.Snapshot()
	if len(snap.Links) != 8 {
		t.Fatalf("Expected 8 seeded links, got %d", len(snap.Links))
	}
	if snap.Organization.Name == "" {
		t.Error("Expected a generated organization name")
	}

	seen := map[string]bool{}
	for _, l := range snap.Links {
		if l.ID == "" || seen[l.ID] {
			t.Errorf("Seeded link ids must be unique and non-empty, got %q", l.ID)
		}
		seen[l.ID] = true
		if l.Category != models.CategoryContact && l.Category != models.CategorySocial {
			t.Errorf("Seeded link has invalid category %q", l.Category)
		}
	}
}

func TestSeedContentHandlerRejectsBadCount(t *testing.T) {
	store := content.NewStore(content.Options{})
	handler := SeedContentHandler(store)

	for _, q := range []string{"links=0", "links=31", "links=abc"} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/test/seed-content?"+q, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for %q, got %d", q, w.Code)
		}
	}
}
