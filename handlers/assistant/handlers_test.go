package assistant

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orgportal/backend/services/assistant"
)

func TestChatHandlerAlwaysReplies(t *testing.T) {
	// An unconfigured client exercises the fail-soft path: the widget still
	// gets presentable text, never an error status.
	handler := ChatHandler(assistant.NewClient("", ""))

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/chat",
		strings.NewReader(`{"message":"Halo, apa itu HMP?"}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var msg ChatMessage
	if err := json.NewDecoder(w.Body).Decode(&msg); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if msg.Role != "model" {
		t.Errorf("Expected model role, got %q", msg.Role)
	}
	if msg.Text == "" {
		t.Error("Expected a non-empty reply even without configuration")
	}
}

func TestChatHandlerBadBody(t *testing.T) {
	handler := ChatHandler(assistant.NewClient("", ""))

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/chat", strings.NewReader("{"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", w.Code)
	}
}
