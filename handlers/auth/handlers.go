package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"orgportal/backend/services/content"
	"orgportal/backend/services/remote"
)

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

// LoginHandler submits the typed credential to the content store. On success
// the store holds the session (edit mode turns on) and the browser gets a
// JWT for the admin API. On failure the backend's specific message is passed
// through so the login form can show it.
func LoginHandler(store *content.Store, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var cred remote.Credential
		if err := json.NewDecoder(r.Body).Decode(&cred); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginResponse{Success: false, Message: "Invalid request body"})
			return
		}

		res, err := store.Authenticate(r.Context(), cred)
		if err != nil {
			log.Printf("login: %v", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(LoginResponse{Success: false, Message: "Error koneksi ke server login."})
			return
		}
		if !res.Success {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LoginResponse{Success: false, Message: res.Message})
			return
		}

		token, err := GenerateToken(secret)
		if err != nil {
			log.Printf("login: generate token: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LoginResponse{Success: false, Message: "Error generating token"})
			return
		}

		json.NewEncoder(w).Encode(LoginResponse{Success: true, Token: token})
	}
}

// LogoutHandler clears the store session and forces edit mode off.
func LogoutHandler(store *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Logout()
		w.WriteHeader(http.StatusOK)
	}
}
