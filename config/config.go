// Package config layers the portal's settings: built-in defaults, an
// optional config.yaml next to the binary, then environment variables (a
// .env file is honored when present).
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"port"`
	StaticDir string `mapstructure:"staticDir"`

	// Backend selects the content store: "script" (spreadsheet script
	// deployment), "doc" (hosted document database) or "standalone"
	// (local cache only).
	Backend   string `mapstructure:"backend"`
	ScriptURL string `mapstructure:"scriptUrl"`

	DocEndpoint     string `mapstructure:"docEndpoint"`
	DocProjectID    string `mapstructure:"docProjectId"`
	DocDatabaseID   string `mapstructure:"docDatabaseId"`
	DocCollectionID string `mapstructure:"docCollectionId"`
	DocDocumentID   string `mapstructure:"docDocumentId"`

	JWTSecret         string `mapstructure:"jwtSecret"`
	AdminPasswordHash string `mapstructure:"adminPasswordHash"`

	CachePath string `mapstructure:"cachePath"`

	MaxUploadMB   int64  `mapstructure:"maxUploadMb"`
	CloudinaryURL string `mapstructure:"cloudinaryUrl"`
	UploadDir     string `mapstructure:"uploadDir"`
	BaseURL       string `mapstructure:"baseUrl"`

	AssistantAPIKey string `mapstructure:"assistantApiKey"`
	AssistantModel  string `mapstructure:"assistantModel"`
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("staticDir", "./static")
	v.SetDefault("backend", "standalone")
	v.SetDefault("docEndpoint", "https://cloud.appwrite.io/v1")
	v.SetDefault("docDatabaseId", "org_portal_db")
	v.SetDefault("docCollectionId", "site_settings")
	v.SetDefault("docDocumentId", "main_config")
	v.SetDefault("cachePath", "./portal_cache.db")
	v.SetDefault("maxUploadMb", 10)
	v.SetDefault("uploadDir", "./uploads")
	v.SetDefault("baseUrl", "http://localhost:8080")
	v.SetDefault("assistantModel", "gemini-2.0-flash")

	// Secret-ish keys default empty so AutomaticEnv can still fill them
	// during Unmarshal.
	for _, key := range []string{
		"scriptUrl", "docProjectId", "jwtSecret", "adminPasswordHash",
		"cloudinaryUrl", "assistantApiKey",
	} {
		v.SetDefault(key, "")
	}

	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("PORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	switch cfg.Backend {
	case "script":
		if cfg.ScriptURL == "" {
			return Config{}, fmt.Errorf("backend %q requires scriptUrl", cfg.Backend)
		}
	case "doc":
		if cfg.DocProjectID == "" {
			return Config{}, fmt.Errorf("backend %q requires docProjectId", cfg.Backend)
		}
	case "standalone":
		// Nothing upstream to check.
	default:
		return Config{}, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	return cfg, nil
}
