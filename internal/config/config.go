// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// Transient storage areas, sibling directories of the working directory.
	UploadDir    string
	ProcessedDir string

	// Static assets served at the root path.
	StaticDir string

	MaxUploadMB    int64
	FFmpegPath     string
	ConvertWorkers int

	// Orphaned-artifact sweep: anything older than ArtifactTTL in either
	// storage area is removed.
	ArtifactTTL   time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	workers := getEnvInt("CONVERT_WORKERS", 0)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),

		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		ProcessedDir: getEnv("PROCESSED_DIR", "compressed"),
		StaticDir:    getEnv("STATIC_DIR", "public"),

		MaxUploadMB:    int64(getEnvInt("MAX_UPLOAD_MB", 200)),
		FFmpegPath:     getEnv("FFMPEG_PATH", "ffmpeg"),
		ConvertWorkers: workers,

		ArtifactTTL:   getEnvDuration("ARTIFACT_TTL", time.Hour),
		SweepInterval: getEnvDuration("SWEEP_INTERVAL", 10*time.Minute),
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
