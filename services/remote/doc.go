package remote

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"orgportal/backend/models"
)

// DocClient talks to an Appwrite-style hosted document database. The whole
// page content lives as serialized JSON inside one attribute of one
// well-known document, so reads and writes stay a single round trip like
// the script backend.
type DocClient struct {
	Endpoint     string // e.g. https://cloud.appwrite.io/v1
	ProjectID    string
	DatabaseID   string
	CollectionID string
	DocumentID   string
	Client       *http.Client
}

func NewDocClient(endpoint, projectID, databaseID, collectionID, documentID string) *DocClient {
	return &DocClient{
		Endpoint:     endpoint,
		ProjectID:    projectID,
		DatabaseID:   databaseID,
		CollectionID: collectionID,
		DocumentID:   documentID,
		Client:       http.DefaultClient,
	}
}

func (c *DocClient) documentURL() string {
	return fmt.Sprintf("%s/databases/%s/collections/%s/documents/%s",
		c.Endpoint, c.DatabaseID, c.CollectionID, c.DocumentID)
}

// corsHint translates the project-level rejection the hosted service sends
// for unregistered platforms into something an admin can act on.
const corsHint = "platform/domain not registered with the hosted backend; add this host in the project console"

func (c *DocClient) do(req *http.Request, cred *Credential) (*http.Response, error) {
	req.Header.Set("X-Appwrite-Project", c.ProjectID)
	req.Header.Set("Content-Type", "application/json")
	if cred != nil {
		// Basic credentials on every call: the document API is not assumed
		// to hold a session between requests.
		req.SetBasicAuth(cred.Email, cred.Password)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusForbidden {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrRejected, corsHint)
	}
	return resp, nil
}

func (c *DocClient) FetchContent(ctx context.Context) (*models.ContentSnapshot, error) {
	if c.Endpoint == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.documentURL(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()

	// A missing document means nothing has been saved yet, not a failure.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch document: status %d", resp.StatusCode)
	}

	var doc struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("fetch document: decode: %w", err)
	}
	if doc.Content == "" {
		return nil, nil
	}

	var snap models.ContentSnapshot
	if err := json.Unmarshal([]byte(doc.Content), &snap); err != nil {
		return nil, fmt.Errorf("fetch document: decode content: %w", err)
	}
	return &snap, nil
}

func (c *DocClient) Authenticate(ctx context.Context, cred Credential) (AuthResult, error) {
	if c.Endpoint == "" {
		return AuthResult{}, ErrNotConfigured
	}

	payload, _ := json.Marshal(map[string]string{
		"email":    cred.Email,
		"password": cred.Password,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.Endpoint+"/account/sessions/email", bytes.NewReader(payload))
	if err != nil {
		return AuthResult{}, err
	}
	resp, err := c.do(req, nil)
	if err != nil {
		return AuthResult{}, fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK {
		return AuthResult{Success: true}, nil
	}

	var apiErr struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&apiErr)
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("login failed (status %d)", resp.StatusCode)
	}
	return AuthResult{Success: false, Message: apiErr.Message}, nil
}

func (c *DocClient) Persist(ctx context.Context, snap models.ContentSnapshot, cred Credential) (SaveResult, error) {
	if c.Endpoint == "" {
		return SaveResult{}, ErrNotConfigured
	}

	content, err := json.Marshal(snap)
	if err != nil {
		return SaveResult{}, err
	}
	payload, _ := json.Marshal(map[string]interface{}{
		"data": map[string]string{"content": string(content)},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.documentURL(), bytes.NewReader(payload))
	if err != nil {
		return SaveResult{}, err
	}
	resp, err := c.do(req, &cred)
	if err != nil {
		return SaveResult{}, fmt.Errorf("persist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return SaveResult{Success: true}, nil
	}

	var apiErr struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&apiErr)
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("save failed (status %d)", resp.StatusCode)
	}
	return SaveResult{Success: false, Message: apiErr.Message}, nil
}

// UploadMedia stores the bytes through the storage bucket API and returns a
// viewable URL.
func (c *DocClient) UploadMedia(ctx context.Context, data []byte, mimeType string, cred Credential) (string, error) {
	if c.Endpoint == "" {
		return "", ErrNotConfigured
	}

	payload, _ := json.Marshal(map[string]string{
		"fileId":   "unique()",
		"file":     base64.StdEncoding.EncodeToString(data),
		"mimeType": mimeType,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.Endpoint+"/storage/buckets/"+c.DatabaseID+"/files", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	resp, err := c.do(req, &cred)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("%w: %s", ErrRejected, apiErr.Message)
	}

	var file struct {
		ID string `json:"$id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return "", fmt.Errorf("upload: decode: %w", err)
	}
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		c.Endpoint, c.DatabaseID, file.ID, c.ProjectID), nil
}
