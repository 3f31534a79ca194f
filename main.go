package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"orgportal/backend/config"
	"orgportal/backend/handlers"
	"orgportal/backend/handlers/assistant"
	"orgportal/backend/handlers/auth"
	contenthandlers "orgportal/backend/handlers/content"
	"orgportal/backend/handlers/media"
	assistantsvc "orgportal/backend/services/assistant"
	"orgportal/backend/services/cache"
	"orgportal/backend/services/content"
	"orgportal/backend/services/mediastore"
	"orgportal/backend/services/remote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("PORTAL_JWTSECRET must be set")
	}

	// Content backend, per configured revision.
	var gateway remote.Gateway
	switch cfg.Backend {
	case "script":
		gateway = remote.NewScriptClient(cfg.ScriptURL)
		log.Printf("using spreadsheet script backend")
	case "doc":
		gateway = remote.NewDocClient(cfg.DocEndpoint, cfg.DocProjectID,
			cfg.DocDatabaseID, cfg.DocCollectionID, cfg.DocDocumentID)
		log.Printf("using hosted document backend (project %s)", cfg.DocProjectID)
	default:
		log.Printf("no remote backend configured, running standalone")
	}

	localCache, err := cache.Open(cfg.CachePath)
	if err != nil {
		// The cache is a fallback tier, not a requirement.
		log.Printf("Warning: local cache unavailable: %v", err)
		localCache = nil
	} else {
		defer localCache.Close()
	}

	var uploader content.Uploader
	if gateway == nil {
		if cfg.CloudinaryURL != "" {
			cu, err := mediastore.NewCloudinaryUploader(cfg.CloudinaryURL)
			if err != nil {
				log.Fatalf("cloudinary: %v", err)
			}
			uploader = cu
		} else {
			lu, err := mediastore.NewLocalUploader(cfg.UploadDir, cfg.BaseURL)
			if err != nil {
				log.Fatalf("local uploads: %v", err)
			}
			uploader = lu
		}
	}

	maxUpload := cfg.MaxUploadMB << 20

	opts := content.Options{
		Gateway:           gateway,
		Uploader:          uploader,
		AdminPasswordHash: cfg.AdminPasswordHash,
		MaxUploadBytes:    maxUpload,
	}
	if localCache != nil {
		opts.Cache = localCache
	}
	store := content.NewStore(opts)

	// Initial load runs in the background, like the page itself: the server
	// answers immediately and reports isLoading until the fallback chain
	// settles.
	go store.Load(context.Background())

	aiClient := assistantsvc.NewClient(cfg.AssistantAPIKey, cfg.AssistantModel)

	r := mux.NewRouter()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	})

	// Public routes (no auth required)
	r.HandleFunc("/api/content", contenthandlers.GetContentHandler(store)).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/auth/login", auth.LoginHandler(store, cfg.JWTSecret)).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/auth/logout", auth.LogoutHandler(store)).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/assistant/chat", assistant.ChatHandler(aiClient)).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/test/seed-content", handlers.SeedContentHandler(store)).Methods("POST", "OPTIONS")
	r.HandleFunc("/ws/assistant", assistant.HandleWebSocket(aiClient))

	// Admin routes behind the browser session token
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(auth.Middleware(cfg.JWTSecret))

	protected.HandleFunc("/content/organization", contenthandlers.UpdateOrganizationHandler(store)).Methods("PUT", "OPTIONS")
	protected.HandleFunc("/content/podcast", contenthandlers.UpdatePodcastHandler(store)).Methods("PUT", "OPTIONS")
	protected.HandleFunc("/content/theme", contenthandlers.UpdateThemeHandler(store)).Methods("PUT", "OPTIONS")
	protected.HandleFunc("/content/links", contenthandlers.AddLinkHandler(store)).Methods("POST", "OPTIONS")
	protected.HandleFunc("/content/links/{id}", contenthandlers.UpdateLinkHandler(store)).Methods("PUT", "OPTIONS")
	protected.HandleFunc("/content/links/{id}", contenthandlers.RemoveLinkHandler(store)).Methods("DELETE", "OPTIONS")
	protected.HandleFunc("/content/save", contenthandlers.SaveHandler(store)).Methods("POST", "OPTIONS")
	protected.HandleFunc("/edit-mode/toggle", contenthandlers.ToggleEditModeHandler(store)).Methods("POST", "OPTIONS")
	protected.HandleFunc("/toast/dismiss", contenthandlers.DismissToastHandler(store)).Methods("POST", "OPTIONS")
	protected.HandleFunc("/upload/header", media.UploadHeaderHandler(store, maxUpload)).Methods("POST", "OPTIONS")

	// Page assets. The admin login prompt opens client-side via ?mode=admin.
	if gateway == nil && cfg.CloudinaryURL == "" {
		r.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	}
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))

	log.Printf("Server starting on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, c.Handler(r)))
}
