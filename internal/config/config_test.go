package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Provider != "dict" {
		t.Errorf("provider: got %q, want %q", cfg.Provider, "dict")
	}
	if cfg.Filling.Enabled {
		t.Error("filling should default to disabled")
	}
	if cfg.Filling.WindowTarget != 32768 {
		t.Errorf("window target: got %d, want 32768", cfg.Filling.WindowTarget)
	}
	if cfg.Filling.FillRatio != 0.95 {
		t.Errorf("fill ratio: got %v, want 0.95", cfg.Filling.FillRatio)
	}
	if cfg.Filling.SafetyMargin != 100 {
		t.Errorf("safety margin: got %d, want 100", cfg.Filling.SafetyMargin)
	}
	if cfg.Filling.EstimationMethod != "precise" {
		t.Errorf("estimation method: got %q, want precise", cfg.Filling.EstimationMethod)
	}
	if cfg.Interfere.Enabled {
		t.Error("interference should default to disabled")
	}
	if cfg.Interfere.Level != "medium" {
		t.Errorf("interference level: got %q, want medium", cfg.Interfere.Level)
	}
	if cfg.Interfere.Target != "translation" {
		t.Errorf("interference target: got %q, want translation", cfg.Interfere.Target)
	}
	if !cfg.History.Enabled {
		t.Error("history should default to enabled")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CONTEXT_FILLING_ENABLED", "true")
	t.Setenv("CONTEXT_WINDOW_TARGET", "1000")
	t.Setenv("CONTEXT_FILLING_RATIO", "0.5")
	t.Setenv("SAFETY_MARGIN_TOKENS", "50")
	t.Setenv("TOKEN_ESTIMATION_METHOD", "heuristic")
	t.Setenv("INTERFERENCE_ENABLED", "1")
	t.Setenv("INTERFERENCE_LEVEL", "heavy")
	t.Setenv("INTERFERENCE_TARGET", "all")
	t.Setenv("TRANSLATION_PROVIDER", "baidu")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.Filling.Enabled {
		t.Error("CONTEXT_FILLING_ENABLED not applied")
	}
	if cfg.Filling.WindowTarget != 1000 {
		t.Errorf("window target: got %d, want 1000", cfg.Filling.WindowTarget)
	}
	if cfg.Filling.FillRatio != 0.5 {
		t.Errorf("fill ratio: got %v, want 0.5", cfg.Filling.FillRatio)
	}
	if cfg.Filling.SafetyMargin != 50 {
		t.Errorf("safety margin: got %d, want 50", cfg.Filling.SafetyMargin)
	}
	if cfg.Filling.EstimationMethod != "heuristic" {
		t.Errorf("estimation method: got %q", cfg.Filling.EstimationMethod)
	}
	if !cfg.Interfere.Enabled {
		t.Error("INTERFERENCE_ENABLED not applied")
	}
	if cfg.Interfere.Level != "heavy" {
		t.Errorf("level: got %q, want heavy", cfg.Interfere.Level)
	}
	if cfg.Interfere.Target != "all" {
		t.Errorf("target: got %q, want all", cfg.Interfere.Target)
	}
	if cfg.Provider != "baidu" {
		t.Errorf("provider: got %q, want baidu", cfg.Provider)
	}
}

func TestLoad_MalformedEnvIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CONTEXT_WINDOW_TARGET", "not-a-number")
	t.Setenv("CONTEXT_FILLING_RATIO", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Filling.WindowTarget != 32768 {
		t.Errorf("malformed int should keep default, got %d", cfg.Filling.WindowTarget)
	}
	if cfg.Filling.FillRatio != 0.95 {
		t.Errorf("malformed float should keep default, got %v", cfg.Filling.FillRatio)
	}
}

func TestPath(t *testing.T) {
	path, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %q", path)
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected config.toml, got %q", filepath.Base(path))
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	// Point HOME at a temp dir so Save/Load stay isolated.
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.Provider = "openai"
	cfg.Filling.Enabled = true
	cfg.Filling.WindowTarget = 4096

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Provider != "openai" {
		t.Errorf("provider: got %q, want openai", loaded.Provider)
	}
	if !loaded.Filling.Enabled {
		t.Error("filling enabled not persisted")
	}
	if loaded.Filling.WindowTarget != 4096 {
		t.Errorf("window target: got %d, want 4096", loaded.Filling.WindowTarget)
	}
}
