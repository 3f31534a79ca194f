// Package assistant wraps the generative text service behind the public
// chat widget. The contract is fail-soft: GenerateReply always returns
// presentable text, never an error, because the widget must not dead-end a
// conversation on a backend hiccup.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const systemInstruction = "You are the AI assistant for HMP Bisnis Digital UPY (Himpunan Mahasiswa Program Studi Bisnis Digital Universitas PGRI Yogyakarta), specifically for 'Kabinet 4.0'. Your role is to help students and partners connect with the organization. Use a friendly, youthful, and professional tone."

// Fixed fallback replies, one per failure class.
const (
	fallbackNoConfig  = "Maaf, asisten belum aktif saat ini. Silakan hubungi kami lewat kontak resmi di halaman ini."
	fallbackEmpty     = "Maaf, saya sedang mengalami gangguan koneksi. Silakan hubungi admin."
	fallbackTransport = "Maaf, terjadi kesalahan teknis. Silakan coba lagi nanti atau hubungi kontak resmi kami."
)

type Client struct {
	APIKey     string
	Model      string
	Endpoint   string // override for tests; empty means the public API
	HTTPClient *http.Client
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Client{
		APIKey: apiKey,
		Model:  model,
		// The widget shows a typing indicator while waiting; a bounded
		// request keeps a wedged upstream from pinning it forever.
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	SystemInstruction content   `json:"system_instruction"`
	Contents          []content `json:"contents"`
	GenerationConfig  struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateReply asks the model for a reply to one user message. Sampling is
// fixed: temperature 0.7, at most 300 output tokens.
func (c *Client) GenerateReply(ctx context.Context, userMessage string) string {
	if c.APIKey == "" {
		return fallbackNoConfig
	}

	reqBody := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: userMessage}}}},
	}
	reqBody.GenerationConfig.Temperature = 0.7
	reqBody.GenerationConfig.MaxOutputTokens = 300

	payload, err := json.Marshal(reqBody)
	if err != nil {
		log.Printf("assistant: marshal request: %v", err)
		return fallbackTransport
	}

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf(
			"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", c.Model)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		log.Printf("assistant: build request: %v", err)
		return fallbackTransport
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("assistant: request failed: %v", err)
		return fallbackTransport
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("assistant: upstream status %d", resp.StatusCode)
		return fallbackTransport
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("assistant: decode response: %v", err)
		return fallbackTransport
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 ||
		out.Candidates[0].Content.Parts[0].Text == "" {
		return fallbackEmpty
	}
	return out.Candidates[0].Content.Parts[0].Text
}
