// Package remote wraps the configured content backend: a spreadsheet script
// endpoint or a hosted document database, depending on deployment. The
// backend is treated as an opaque JSON content store reached over HTTP.
package remote

import (
	"context"
	"errors"

	"orgportal/backend/models"
)

// Credential is what the admin typed into the login form. The script backend
// only checks Password; the document backend wants Email as well. Every
// write re-sends it: neither backend keeps a server-side session, so each
// call authorizes itself.
type Credential struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// AuthResult carries the backend's verdict. Message is the human-readable
// reason on failure and must be preserved for the login form.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SaveResult mirrors AuthResult for persist calls.
type SaveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

var (
	// ErrNotConfigured means no backend endpoint is set; the portal runs
	// standalone and callers should skip remote calls entirely.
	ErrNotConfigured = errors.New("remote backend not configured")
	// ErrRejected means the backend answered but refused the operation.
	ErrRejected = errors.New("rejected by backend")
)

// Gateway is the portal's only window onto the content backend.
//
// FetchContent returns (nil, nil) when the backend explicitly reports it
// holds no document yet; callers must not treat that as an error. Transport
// and parse failures propagate.
type Gateway interface {
	FetchContent(ctx context.Context) (*models.ContentSnapshot, error)
	Authenticate(ctx context.Context, cred Credential) (AuthResult, error)
	Persist(ctx context.Context, snap models.ContentSnapshot, cred Credential) (SaveResult, error)
	UploadMedia(ctx context.Context, data []byte, mimeType string, cred Credential) (string, error)
}
