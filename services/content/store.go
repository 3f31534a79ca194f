// Package content owns the page's editable state: the current snapshot, the
// admin session, edit mode, and the active toast. Every mutation goes
// through the store; handlers never touch the snapshot directly.
package content

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"orgportal/backend/models"
	"orgportal/backend/services/remote"
)

var (
	// ErrAuthRequired means the caller must open the login prompt.
	ErrAuthRequired = errors.New("authentication required")
	// ErrSessionExpired aborts save/upload before any network call.
	ErrSessionExpired = errors.New("session expired")
	ErrLinkNotFound   = errors.New("link not found")
	ErrFileTooLarge   = errors.New("file exceeds size limit")
	ErrBadFileType    = errors.New("file type not allowed")
	ErrUnknownField   = errors.New("unknown field")
)

// Cacher is the local fallback tier.
type Cacher interface {
	Load() (*models.ContentSnapshot, error)
	Store(models.ContentSnapshot) error
}

// Uploader stores header media when no remote backend handles uploads
// (standalone mode).
type Uploader interface {
	Upload(ctx context.Context, data []byte, mimeType string) (string, error)
}

// Options wires the store's collaborators. Gateway, Cache and Uploader may
// each be nil; the store degrades tier by tier instead of failing.
type Options struct {
	Gateway  remote.Gateway
	Cache    Cacher
	Uploader Uploader

	// AdminPasswordHash (bcrypt) authenticates logins in standalone mode.
	AdminPasswordHash string

	MaxUploadBytes   int64
	AllowedMimeTypes map[string]bool

	// ToastTTL defaults to 4 seconds.
	ToastTTL time.Duration
}

type Store struct {
	mu sync.Mutex

	gateway  remote.Gateway
	cache    Cacher
	uploader Uploader

	adminHash    string
	maxUpload    int64
	allowedTypes map[string]bool
	toastTTL     time.Duration

	snapshot   models.ContentSnapshot
	cred       *remote.Credential
	isEditing  bool
	isLoading  bool
	toast      *models.Toast
	toastTimer *time.Timer
}

func NewStore(opts Options) *Store {
	if opts.MaxUploadBytes == 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	if opts.AllowedMimeTypes == nil {
		opts.AllowedMimeTypes = map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/gif":  true,
			"image/webp": true,
			"video/mp4":  true,
		}
	}
	if opts.ToastTTL == 0 {
		opts.ToastTTL = 4 * time.Second
	}
	return &Store{
		gateway:      opts.Gateway,
		cache:        opts.Cache,
		uploader:     opts.Uploader,
		adminHash:    opts.AdminPasswordHash,
		maxUpload:    opts.MaxUploadBytes,
		allowedTypes: opts.AllowedMimeTypes,
		toastTTL:     opts.ToastTTL,
		snapshot:     models.DefaultSnapshot(),
		isLoading:    true,
	}
}

// Load runs the three-tier fallback: remote, then local cache, then the
// built-in defaults. It always leaves the store Ready with a fully-populated
// snapshot; nothing on this path surfaces an error to the user.
func (s *Store) Load(ctx context.Context) {
	var remoteSnap, cachedSnap *models.ContentSnapshot

	if s.gateway != nil {
		snap, err := s.gateway.FetchContent(ctx)
		if err != nil {
			log.Printf("content: remote fetch failed, falling back: %v", err)
		} else if snap == nil {
			log.Printf("content: remote store is empty, falling back")
		} else {
			remoteSnap = snap
		}
	}

	if remoteSnap == nil && s.cache != nil {
		snap, err := s.cache.Load()
		if err != nil {
			log.Printf("content: no usable local cache: %v", err)
		} else {
			cachedSnap = snap
		}
	}

	merged := Reconcile(remoteSnap, cachedSnap, models.DefaultSnapshot())

	s.mu.Lock()
	s.snapshot = merged
	s.isLoading = false
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current content.
func (s *Store) Snapshot() models.ContentSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone()
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *Store) IsEditing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isEditing
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred != nil
}

// Authenticate verifies the credential against the gateway (or the local
// admin hash in standalone mode). On success the session is set and edit
// mode turns on. On failure the backend's specific message is preserved in
// the result; the session stays unset.
func (s *Store) Authenticate(ctx context.Context, cred remote.Credential) (remote.AuthResult, error) {
	var res remote.AuthResult
	if s.gateway != nil {
		var err error
		res, err = s.gateway.Authenticate(ctx, cred)
		if err != nil {
			return remote.AuthResult{}, err
		}
	} else {
		if s.adminHash == "" {
			return remote.AuthResult{}, remote.ErrNotConfigured
		}
		if bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(cred.Password)) == nil {
			res = remote.AuthResult{Success: true}
		} else {
			res = remote.AuthResult{Success: false, Message: "Password salah"}
		}
	}

	if !res.Success {
		if res.Message == "" {
			res.Message = "Login gagal. Periksa kembali kredensial Anda."
		}
		return res, nil
	}

	s.mu.Lock()
	c := cred
	s.cred = &c
	s.isEditing = true
	s.showToastLocked("Login berhasil. Mode edit aktif.", models.ToastSuccess)
	s.mu.Unlock()
	return res, nil
}

// Logout clears the session and forces edit mode off.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	s.isEditing = false
}

// ToggleEditMode flips edit mode for an authenticated session. Anonymous
// callers get ErrAuthRequired so the login prompt opens instead of a silent
// no-op.
func (s *Store) ToggleEditMode() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return false, ErrAuthRequired
	}
	s.isEditing = !s.isEditing
	return s.isEditing, nil
}

// Save pushes the whole snapshot to the backend with the session credential
// and, on success, mirrors it into the local cache. Without a session it
// aborts immediately: no network call, a "session expired" toast, and
// ErrSessionExpired for the caller to open the login prompt. Saves are never
// retried automatically.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.cred == nil {
		s.showToastLocked("Sesi habis. Silakan login ulang.", models.ToastWarning)
		s.mu.Unlock()
		return ErrSessionExpired
	}
	snap := s.snapshot.Clone()
	cred := *s.cred
	s.mu.Unlock()

	if s.gateway == nil {
		// Standalone: the local cache is the store of record.
		if s.cache != nil {
			if err := s.cache.Store(snap); err != nil {
				log.Printf("content: standalone save failed: %v", err)
				s.ShowToast("Gagal menyimpan data secara lokal.", models.ToastError)
				return err
			}
		}
		s.ShowToast("Sukses! Data tersimpan.", models.ToastSuccess)
		return nil
	}

	res, err := s.gateway.Persist(ctx, snap, cred)
	if err != nil {
		log.Printf("content: save failed: %v", err)
		s.ShowToast("Error koneksi. Data belum tersimpan.", models.ToastError)
		return err
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "Server menolak penyimpanan."
		}
		s.ShowToast("Gagal menyimpan: "+msg, models.ToastError)
		return fmt.Errorf("%w: %s", remote.ErrRejected, msg)
	}

	if s.cache != nil {
		if err := s.cache.Store(snap); err != nil {
			// The remote save already succeeded; a cache write failure only
			// weakens the fallback tier.
			log.Printf("content: cache mirror failed: %v", err)
		}
	}
	s.ShowToast("Sukses! Data tersimpan.", models.ToastSuccess)
	return nil
}

// UploadHeaderMedia validates and stores header media, then points the
// organization's header field at the returned URL. Size and type are checked
// before any network call. Video uploads get the video fragment tag so the
// renderer can tell them apart from images.
func (s *Store) UploadHeaderMedia(ctx context.Context, data []byte, mimeType string) (string, error) {
	s.mu.Lock()
	if s.cred == nil {
		s.showToastLocked("Sesi habis. Silakan login ulang.", models.ToastWarning)
		s.mu.Unlock()
		return "", ErrSessionExpired
	}
	cred := *s.cred
	s.mu.Unlock()

	if int64(len(data)) > s.maxUpload {
		s.ShowToast(fmt.Sprintf("File terlalu besar. Maksimal %dMB.", s.maxUpload>>20), models.ToastError)
		return "", ErrFileTooLarge
	}
	if !s.allowedTypes[mimeType] {
		s.ShowToast("Tipe file tidak didukung.", models.ToastError)
		return "", ErrBadFileType
	}

	var (
		url string
		err error
	)
	switch {
	case s.gateway != nil:
		url, err = s.gateway.UploadMedia(ctx, data, mimeType, cred)
	case s.uploader != nil:
		url, err = s.uploader.Upload(ctx, data, mimeType)
	default:
		err = remote.ErrNotConfigured
	}
	if err != nil {
		log.Printf("content: upload failed: %v", err)
		s.ShowToast("Upload gagal. Coba lagi nanti.", models.ToastError)
		return "", err
	}

	if strings.HasPrefix(mimeType, "video/") && !strings.Contains(url, models.VideoFragment) {
		url += models.VideoFragment
	}

	s.mu.Lock()
	s.snapshot.Organization.HeaderImage = url
	s.showToastLocked("Media berhasil diupload.", models.ToastSuccess)
	s.mu.Unlock()
	return url, nil
}

// UpdateOrganization sets one organization field by key.
func (s *Store) UpdateOrganization(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch field {
	case "name":
		s.snapshot.Organization.Name = value
	case "tagline":
		s.snapshot.Organization.Tagline = value
	case "description":
		s.snapshot.Organization.Description = value
	case "headerImage":
		s.snapshot.Organization.HeaderImage = value
	case "sectionTitle":
		s.snapshot.Organization.SectionTitle = value
	default:
		return fmt.Errorf("%w: organization.%s", ErrUnknownField, field)
	}
	return nil
}

// UpdatePodcast sets one podcast field by key.
func (s *Store) UpdatePodcast(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch field {
	case "title":
		s.snapshot.Podcast.Title = value
	case "videoUrl":
		s.snapshot.Podcast.VideoURL = value
	default:
		return fmt.Errorf("%w: podcast.%s", ErrUnknownField, field)
	}
	return nil
}

// UpdateThemeColor sets one theme slot. Values are taken as-is; color
// correctness is the renderer's concern.
func (s *Store) UpdateThemeColor(slot, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch slot {
	case "background":
		s.snapshot.Theme.Background = value
	case "cardBackground":
		s.snapshot.Theme.CardBackground = value
	case "textMain":
		s.snapshot.Theme.TextMain = value
	case "primaryButton":
		s.snapshot.Theme.PrimaryButton = value
	case "buttonText":
		s.snapshot.Theme.ButtonText = value
	case "accent":
		s.snapshot.Theme.Accent = value
	case "navbar":
		s.snapshot.Theme.Navbar = value
	default:
		return fmt.Errorf("%w: theme.%s", ErrUnknownField, slot)
	}
	return nil
}

// AddLink appends a new link seeded with category defaults and returns it.
func (s *Store) AddLink(category models.LinkCategory) models.SocialLink {
	link := models.SocialLink{
		ID:       uuid.NewString(),
		URL:      "https://",
		Category: category,
	}
	if category == models.CategoryContact {
		link.Title = "Link Baru"
		link.IconName = "Phone"
		link.Highlight = true
	} else {
		link.Title = "Sosmed"
		link.IconName = "Globe"
	}

	s.mu.Lock()
	s.snapshot.Links = append(s.snapshot.Links, link)
	s.mu.Unlock()
	return link
}

// RemoveLink deletes a link by id.
func (s *Store) RemoveLink(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.snapshot.Links {
		if l.ID == id {
			s.snapshot.Links = append(s.snapshot.Links[:i], s.snapshot.Links[i+1:]...)
			return nil
		}
	}
	return ErrLinkNotFound
}

// UpdateLink sets one field of one link by id. Only that link changes.
func (s *Store) UpdateLink(id, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snapshot.Links {
		if s.snapshot.Links[i].ID != id {
			continue
		}
		switch field {
		case "title":
			s.snapshot.Links[i].Title = value
		case "url":
			s.snapshot.Links[i].URL = value
		case "iconName":
			s.snapshot.Links[i].IconName = value
		case "category":
			s.snapshot.Links[i].Category = models.LinkCategory(value)
		case "highlight":
			s.snapshot.Links[i].Highlight = value == "true"
		default:
			return fmt.Errorf("%w: link.%s", ErrUnknownField, field)
		}
		return nil
	}
	return ErrLinkNotFound
}

// ReplaceSnapshot swaps in a whole new snapshot. Used by the demo seeder;
// edits from the admin UI go through the field operations above.
func (s *Store) ReplaceSnapshot(snap models.ContentSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap.Clone()
}

// ShowToast replaces the active toast and arms the auto-dismiss timer.
func (s *Store) ShowToast(message string, kind models.ToastKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showToastLocked(message, kind)
}

func (s *Store) showToastLocked(message string, kind models.ToastKind) {
	if s.toastTimer != nil {
		s.toastTimer.Stop()
	}
	s.toast = &models.Toast{Message: message, Kind: kind, IsVisible: true}
	s.toastTimer = time.AfterFunc(s.toastTTL, s.DismissToast)
}

// DismissToast hides the active toast, if any.
func (s *Store) DismissToast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.toastTimer != nil {
		s.toastTimer.Stop()
		s.toastTimer = nil
	}
	s.toast = nil
}

// ActiveToast returns a copy of the live toast, or nil.
func (s *Store) ActiveToast() *models.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.toast == nil {
		return nil
	}
	t := *s.toast
	return &t
}
