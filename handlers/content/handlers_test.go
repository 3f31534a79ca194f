package content

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"orgportal/backend/models"
	"orgportal/backend/services/content"
)

func newTestRouter(store *content.Store) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/content", GetContentHandler(store)).Methods("GET")
	r.HandleFunc("/api/content/organization", UpdateOrganizationHandler(store)).Methods("PUT")
	r.HandleFunc("/api/content/links", AddLinkHandler(store)).Methods("POST")
	r.HandleFunc("/api/content/links/{id}", UpdateLinkHandler(store)).Methods("PUT")
	r.HandleFunc("/api/content/links/{id}", RemoveLinkHandler(store)).Methods("DELETE")
	r.HandleFunc("/api/content/save", SaveHandler(store)).Methods("POST")
	r.HandleFunc("/api/edit-mode/toggle", ToggleEditModeHandler(store)).Methods("POST")
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetContentReturnsFullSnapshot(t *testing.T) {
	store := content.NewStore(content.Options{})
	r := newTestRouter(store)

	w := doJSON(t, r, http.MethodGet, "/api/content", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Content   models.ContentSnapshot `json:"content"`
		IsLoading bool                   `json:"isLoading"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Content.Podcast.Title == "" {
		t.Error("Expected a fully-populated snapshot")
	}
	if !resp.IsLoading {
		t.Error("Expected isLoading true before Load completes")
	}
}

func TestLinkLifecycleOverHTTP(t *testing.T) {
	store := content.NewStore(content.Options{})
	r := newTestRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/content/links", map[string]string{"category": "social"})
	if w.Code != http.StatusOK {
		t.Fatalf("AddLink: expected 200, got %d", w.Code)
	}
	var link models.SocialLink
	if err := json.NewDecoder(w.Body).Decode(&link); err != nil {
		t.Fatalf("decode link: %v", err)
	}
	if link.Category != models.CategorySocial || link.IconName != "Globe" {
		t.Errorf("Unexpected social defaults: %+v", link)
	}

	w = doJSON(t, r, http.MethodPut, "/api/content/links/"+link.ID,
		map[string]string{"field": "title", "value": "Instagram Kami"})
	if w.Code != http.StatusOK {
		t.Fatalf("UpdateLink: expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/content/links/"+link.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("RemoveLink: expected 204, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/content/links/"+link.ID,
		map[string]string{"field": "title", "value": "x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for removed link, got %d", w.Code)
	}
}

func TestAddLinkRejectsUnknownCategory(t *testing.T) {
	store := content.NewStore(content.Options{})
	r := newTestRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/content/links", map[string]string{"category": "banner"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown category, got %d", w.Code)
	}
}

func TestSaveWithoutSessionSignalsAuthRequired(t *testing.T) {
	store := content.NewStore(content.Options{})
	r := newTestRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/content/save", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", w.Code)
	}

	var resp struct {
		Success      bool   `json:"success"`
		Message      string `json:"message"`
		AuthRequired bool   `json:"authRequired"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || !resp.AuthRequired {
		t.Errorf("Expected authRequired failure, got %+v", resp)
	}
	if resp.Message != "Sesi habis. Silakan login ulang." {
		t.Errorf("Unexpected message %q", resp.Message)
	}
}

func TestToggleEditModeAnonymousOpensAuthPrompt(t *testing.T) {
	store := content.NewStore(content.Options{})
	r := newTestRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/edit-mode/toggle", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", w.Code)
	}
	var resp struct {
		AuthRequired bool `json:"authRequired"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.AuthRequired {
		t.Error("Expected authRequired in response")
	}
}

func TestUpdateOrganizationUnknownField(t *testing.T) {
	store := content.NewStore(content.Options{})
	r := newTestRouter(store)

	w := doJSON(t, r, http.MethodPut, "/api/content/organization",
		map[string]string{"field": "nope", "value": "x"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown field, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/content/organization",
		map[string]string{"field": "name", "value": "HMP Bisnis Digital"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if got := store.Snapshot().Organization.Name; got != "HMP Bisnis Digital" {
		t.Errorf("Expected name updated, got %q", got)
	}
}
