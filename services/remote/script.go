package remote

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"orgportal/backend/models"
)

// ScriptClient talks to a spreadsheet-backed script deployment. The script
// exposes a single URL: GET returns the stored document (or {"empty":true}),
// POST takes an action envelope {action, password, ...}.
//
// The script only accepts text/plain bodies; sending application/json
// triggers a preflight the deployment cannot answer.
type ScriptClient struct {
	Endpoint string
	Client   *http.Client
}

func NewScriptClient(endpoint string) *ScriptClient {
	return &ScriptClient{
		Endpoint: endpoint,
		Client:   http.DefaultClient,
	}
}

type scriptEnvelope struct {
	Action   string                  `json:"action"`
	Password string                  `json:"password"`
	Data     *models.ContentSnapshot `json:"data,omitempty"`
	Image    string                  `json:"image,omitempty"`
	MimeType string                  `json:"mimeType,omitempty"`
}

func (c *ScriptClient) FetchContent(ctx context.Context) (*models.ContentSnapshot, error) {
	if c.Endpoint == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}

	// The script answers {"empty":true} for a sheet that has never been
	// saved to. Distinguish it before decoding into the snapshot shape.
	var probe struct {
		Empty bool `json:"empty"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("fetch content: decode: %w", err)
	}
	if probe.Empty {
		return nil, nil
	}

	var snap models.ContentSnapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("fetch content: decode: %w", err)
	}
	return &snap, nil
}

func (c *ScriptClient) Authenticate(ctx context.Context, cred Credential) (AuthResult, error) {
	var res AuthResult
	err := c.post(ctx, scriptEnvelope{Action: "login", Password: cred.Password}, &res)
	return res, err
}

func (c *ScriptClient) Persist(ctx context.Context, snap models.ContentSnapshot, cred Credential) (SaveResult, error) {
	var res SaveResult
	err := c.post(ctx, scriptEnvelope{Action: "save", Password: cred.Password, Data: &snap}, &res)
	return res, err
}

func (c *ScriptClient) UploadMedia(ctx context.Context, data []byte, mimeType string, cred Credential) (string, error) {
	var res struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
		Message string `json:"message"`
	}
	env := scriptEnvelope{
		Action:   "upload",
		Password: cred.Password,
		Image:    base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	}
	if err := c.post(ctx, env, &res); err != nil {
		return "", err
	}
	if !res.Success {
		log.Printf("script upload rejected: %s", res.Message)
		return "", fmt.Errorf("%w: %s", ErrRejected, res.Message)
	}
	return res.URL, nil
}

func (c *ScriptClient) post(ctx context.Context, env scriptEnvelope, out interface{}) error {
	if c.Endpoint == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("script %s: %w", env.Action, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("script %s: decode: %w", env.Action, err)
	}
	return nil
}
