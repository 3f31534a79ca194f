package media

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"orgportal/backend/services/content"
)

// UploadResponse represents the response for a successful upload
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UploadHeaderHandler receives header media as a multipart form and hands it
// to the store, which enforces the session, size and type preconditions
// before anything goes over the network.
func UploadHeaderHandler(store *content.Store, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		// One extra MB of headroom so the store sees the real size and can
		// report the specific size-exceeded message itself.
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+(1<<20))
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			json.NewEncoder(w).Encode(ErrorResponse{Message: "File terlalu besar."})
			return
		}

		file, handler, err := r.FormFile("file")
		if err != nil {
			json.NewEncoder(w).Encode(ErrorResponse{Message: "No file uploaded"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "Failed to read file", http.StatusInternalServerError)
			return
		}

		url, err := store.UploadHeaderMedia(r.Context(), data, handler.Header.Get("Content-Type"))
		switch {
		case errors.Is(err, content.ErrSessionExpired):
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Sesi habis. Silakan login ulang."})
		case errors.Is(err, content.ErrFileTooLarge):
			json.NewEncoder(w).Encode(ErrorResponse{Message: "File terlalu besar."})
		case errors.Is(err, content.ErrBadFileType):
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Tipe file tidak didukung."})
		case err != nil:
			log.Printf("upload header: %v", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Upload gagal."})
		default:
			json.NewEncoder(w).Encode(UploadResponse{Success: true, URL: url})
		}
	}
}
