package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if cfg.ProjectID != "default" {
		t.Errorf("expected default project id, got %q", cfg.ProjectID)
	}
	if cfg.APILatency() != time.Second {
		t.Errorf("expected 1s api latency, got %v", cfg.APILatency())
	}
	if cfg.OAuthLatency() != 1500*time.Millisecond {
		t.Errorf("expected 1.5s oauth latency, got %v", cfg.OAuthLatency())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "PROJECT_ID=apollo\nAPI_LATENCY_MS=5\nOAUTH_LATENCY_MS=10\nLOG_LEVEL=debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.ProjectID != "apollo" {
		t.Errorf("expected apollo, got %q", cfg.ProjectID)
	}
	if cfg.APILatency() != 5*time.Millisecond {
		t.Errorf("expected 5ms, got %v", cfg.APILatency())
	}
	if cfg.OAuthLatency() != 10*time.Millisecond {
		t.Errorf("expected 10ms, got %v", cfg.OAuthLatency())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel)
	}
}

func TestNewLogger(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("should not panic")

	cfg.LogLevel = "not-a-level"
	if _, err := config.NewLogger(cfg); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestNewLoggerWithFile(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cfg.LogFile = filepath.Join(t.TempDir(), "app.log")

	logger, err := config.NewLogger(cfg)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello")
	if err := logger.Sync(); err != nil {
		// Sync on stdout can fail on some platforms; the file write is
		// what matters here.
		t.Logf("sync: %v", err)
	}

	if _, err := os.Stat(cfg.LogFile); err != nil {
		t.Errorf("expected log file to exist: %v", err)
	}
}
