// Package mediastore holds the standalone-mode upload backends. When a
// remote content backend is configured, uploads go through it instead and
// this package is not involved.
package mediastore

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryUploader stores media in a Cloudinary account identified by a
// CLOUDINARY_URL-style connection string.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		// "auto" lets Cloudinary accept both image and video headers.
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	log.Printf("mediastore: uploaded %s (%d bytes) as %s", mimeType, len(data), res.PublicID)
	return res.SecureURL, nil
}

// LocalUploader writes media under a directory served as /uploads/.
type LocalUploader struct {
	Dir     string
	BaseURL string
}

func NewLocalUploader(dir, baseURL string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{Dir: dir, BaseURL: baseURL}, nil
}

func (u *LocalUploader) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	// A generated name avoids collisions and keeps caller-supplied names
	// out of the filesystem.
	ext := ".bin"
	if exts, _ := mime.ExtensionsByType(mimeType); len(exts) > 0 {
		ext = exts[0]
	}
	name := uuid.NewString() + ext

	if err := os.WriteFile(filepath.Join(u.Dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return fmt.Sprintf("%s/uploads/%s", u.BaseURL, name), nil
}
