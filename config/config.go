package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DatabaseURL string
	UploadDir   string
	JWTSecret   string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		DatabaseURL: get("DATABASE_URL", "herdbook.db"),
		UploadDir:   get("UPLOAD_DIR", "tmp"),
		JWTSecret:   get("JWT_SECRET", "dev-secret-change-me"),
	}
	log.Printf("[cfg] port=%s db=%s upload=%s", cfg.Port, cfg.DatabaseURL, cfg.UploadDir)
	return cfg
}
