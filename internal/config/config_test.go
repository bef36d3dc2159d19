package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "3000")
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("UploadDir = %q, want %q", cfg.UploadDir, "uploads")
	}
	if cfg.ProcessedDir != "compressed" {
		t.Errorf("ProcessedDir = %q, want %q", cfg.ProcessedDir, "compressed")
	}
	if cfg.StaticDir != "public" {
		t.Errorf("StaticDir = %q, want %q", cfg.StaticDir, "public")
	}
	if cfg.MaxUploadMB != 200 {
		t.Errorf("MaxUploadMB = %d, want 200", cfg.MaxUploadMB)
	}
	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("FFmpegPath = %q, want %q", cfg.FFmpegPath, "ffmpeg")
	}
	if cfg.ConvertWorkers < 1 {
		t.Errorf("ConvertWorkers = %d, want >= 1", cfg.ConvertWorkers)
	}
	if cfg.ArtifactTTL != time.Hour {
		t.Errorf("ArtifactTTL = %s, want 1h", cfg.ArtifactTTL)
	}
	if cfg.SweepInterval != 10*time.Minute {
		t.Errorf("SweepInterval = %s, want 10m", cfg.SweepInterval)
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true for default env")
	}
}

func TestLoadOverrides(t *testing.T) {
	env := map[string]string{
		"PORT":            "8080",
		"APP_ENV":         "production",
		"UPLOAD_DIR":      "in",
		"PROCESSED_DIR":   "out",
		"MAX_UPLOAD_MB":   "50",
		"FFMPEG_PATH":     "/usr/local/bin/ffmpeg",
		"CONVERT_WORKERS": "3",
		"ARTIFACT_TTL":    "30m",
		"SWEEP_INTERVAL":  "1m",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if cfg.UploadDir != "in" || cfg.ProcessedDir != "out" {
		t.Errorf("dirs = %q/%q, want in/out", cfg.UploadDir, cfg.ProcessedDir)
	}
	if cfg.MaxUploadMB != 50 {
		t.Errorf("MaxUploadMB = %d, want 50", cfg.MaxUploadMB)
	}
	if cfg.FFmpegPath != "/usr/local/bin/ffmpeg" {
		t.Errorf("FFmpegPath = %q", cfg.FFmpegPath)
	}
	if cfg.ConvertWorkers != 3 {
		t.Errorf("ConvertWorkers = %d, want 3", cfg.ConvertWorkers)
	}
	if cfg.ArtifactTTL != 30*time.Minute {
		t.Errorf("ArtifactTTL = %s, want 30m", cfg.ArtifactTTL)
	}
	if cfg.SweepInterval != time.Minute {
		t.Errorf("SweepInterval = %s, want 1m", cfg.SweepInterval)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	t.Setenv("ARTIFACT_TTL", "soon")
	t.Setenv("CONVERT_WORKERS", "-2")

	cfg := Load()

	if cfg.MaxUploadMB != 200 {
		t.Errorf("MaxUploadMB = %d, want fallback 200", cfg.MaxUploadMB)
	}
	if cfg.ArtifactTTL != time.Hour {
		t.Errorf("ArtifactTTL = %s, want fallback 1h", cfg.ArtifactTTL)
	}
	if cfg.ConvertWorkers < 1 {
		t.Errorf("ConvertWorkers = %d, want >= 1", cfg.ConvertWorkers)
	}
}
