// Package content exposes the store's read and mutation surface to the
// page and the admin UI.
package content

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"orgportal/backend/models"
	"orgportal/backend/services/content"
)

type fieldUpdate struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type contentResponse struct {
	Content   models.ContentSnapshot `json:"content"`
	IsEditing bool                   `json:"isEditing"`
	IsLoading bool                   `json:"isLoading"`
	Toast     *models.Toast          `json:"toast,omitempty"`
}

// GetContentHandler returns the current snapshot plus UI state. Public: the
// page itself renders from this.
func GetContentHandler(store *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(contentResponse{
			Content:   store.Snapshot(),
			IsEditing: store.IsEditing(),
			IsLoading: store.IsLoading(),
			Toast:     store.ActiveToast(),
		})
	}
}

// UpdateOrganizationHandler sets one organization field.
func UpdateOrganizationHandler(store *content.Store) http.HandlerFunc {
	return updateHandler(store.UpdateOrganization)
}

// UpdatePodcastHandler sets one podcast field.
func UpdatePodcastHandler(store *content.Store) http.HandlerFunc {
	return updateHandler(store.UpdatePodcast)
}

// UpdateThemeHandler sets one theme color slot.
func UpdateThemeHandler(store *content.Store) http.HandlerFunc {
	return updateHandler(store.UpdateThemeColor)
}

func updateHandler(update func(field, value string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fieldUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := update(req.Field, req.Value); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// AddLinkHandler creates a link seeded with category defaults and returns it.
func AddLinkHandler(store *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req struct {
			Category models.LinkCategory `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Category != models.CategoryContact && req.Category != models.CategorySocial {
			http.Error(w, "Invalid category. Must be 'contact' or 'social'", http.StatusBadRequest)
			return
		}

		link := store.AddLink(req.Category)
		json.NewEncoder(w).Encode(link)
	}
}

// RemoveLinkHandler deletes a link by id.
func RemoveLinkHandler(store *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := store.RemoveLink(id); err != nil {
			http.Error(w, "Link not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// UpdateLinkHandler sets one field of one link by id.
func UpdateLinkHandler(store *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var req fieldUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		err := store.UpdateLink(id, req.Field, req.Value)
		if errors.Is(err, content.ErrLinkNotFound) {
			http.Error(w, "Link not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// SaveHandler pushes the snapshot upstream. An expired session comes back as
// 401 with authRequired so the UI reopens the login prompt.
func SaveHandler(store *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := store.Save(r.Context())
		if errors.Is(err, content.ErrSessionExpired) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success":      false,
				"message":      "Sesi habis. Silakan login ulang.",
				"authRequired": true,
			})
			return
		}
		if err != nil {
			log.Printf("save: %v", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}
}

// ToggleEditModeHandler flips edit mode; anonymous callers are told to open
// the login prompt instead of silently doing nothing.
func ToggleEditModeHandler(store *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		editing, err := store.ToggleEditMode()
		if errors.Is(err, content.ErrAuthRequired) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"authRequired": true})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"isEditing": editing})
	}
}

// DismissToastHandler closes the active toast ahead of its auto-dismiss.
func DismissToastHandler(store *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.DismissToast()
		w.WriteHeader(http.StatusOK)
	}
}
