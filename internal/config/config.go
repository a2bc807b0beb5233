// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port        string
	GinMode     string
	DatabaseDSN string
	BaseURL     string

	StorageBackend string // "local" or "minio"
	StorageRoot    string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	MaxUploadSize    int64
	AllowedMimeTypes []string
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=jobapp port=5432 sslmode=disable"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),

		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		StorageRoot:    getEnv("STORAGE_ROOT", "./data/storage"),

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "jobapp"),
		MinIOUseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",

		MaxUploadSize:    getEnvInt64("MAX_UPLOAD_SIZE", 10<<20),
		AllowedMimeTypes: getEnvList("ALLOWED_MIME_TYPES", []string{"application/pdf"}),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
