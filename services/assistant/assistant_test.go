package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateReplyNoConfig(t *testing.T) {
	c := NewClient("", "")
	reply := c.GenerateReply(context.Background(), "Halo")
	if reply != fallbackNoConfig {
		t.Errorf("Expected no-config fallback, got %q", reply)
	}
}

func TestGenerateReplyTransportErrorNeverThrows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	c := NewClient("key", "")
	c.Endpoint = srv.URL

	reply := c.GenerateReply(context.Background(), "Halo")
	if reply == "" {
		t.Fatal("Expected a non-empty fallback reply on transport failure")
	}
	if reply != fallbackTransport {
		t.Errorf("Expected transport fallback, got %q", reply)
	}
}

func TestGenerateReplyUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("key", "")
	c.Endpoint = srv.URL

	if reply := c.GenerateReply(context.Background(), "Halo"); reply != fallbackTransport {
		t.Errorf("Expected transport fallback for non-200, got %q", reply)
	}
}

func TestGenerateReplyEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer srv.Close()

	c := NewClient("key", "")
	c.Endpoint = srv.URL

	if reply := c.GenerateReply(context.Background(), "Halo"); reply != fallbackEmpty {
		t.Errorf("Expected empty-response fallback, got %q", reply)
	}
}

func TestGenerateReplySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-goog-api-key"); got != "key" {
			t.Errorf("Expected api key header, got %q", got)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Bad request body: %v", err)
		}
		if req.GenerationConfig.Temperature != 0.7 || req.GenerationConfig.MaxOutputTokens != 300 {
			t.Errorf("Unexpected sampling config: %+v", req.GenerationConfig)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "Apa itu HMP?" {
			t.Errorf("Unexpected contents: %+v", req.Contents)
		}
		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "Halo! HMP adalah himpunan mahasiswa."}}}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("key", "")
	c.Endpoint = srv.URL

	reply := c.GenerateReply(context.Background(), "Apa itu HMP?")
	if reply != "Halo! HMP adalah himpunan mahasiswa." {
		t.Errorf("Unexpected reply %q", reply)
	}
}
