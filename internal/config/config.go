// Package config manages the lingopad configuration: a global TOML file
// (~/.config/lingopad/config.toml) with process-environment overrides
// for the recognized runtime options.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all process-wide settings. It is loaded once at startup
// and treated as immutable afterwards.
type Config struct {
	Provider  string          `toml:"provider"`
	Filling   FillingConfig   `toml:"filling"`
	Interfere InterfereConfig `toml:"interference"`
	Providers ProvidersConfig `toml:"providers"`
	History   HistoryConfig   `toml:"history"`
}

// FillingConfig controls the context-filling padding engine.
type FillingConfig struct {
	Enabled          bool    `toml:"enabled"`
	WindowTarget     int     `toml:"window_target"`
	FillRatio        float64 `toml:"fill_ratio"`
	SafetyMargin     int     `toml:"safety_margin_tokens"`
	EstimationMethod string  `toml:"estimation_method"`
}

// InterfereConfig controls zero-width interference injection, used when
// context filling is disabled.
type InterfereConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`  // light, medium, heavy
	Target  string `toml:"target"` // translation, all
}

// ProvidersConfig holds upstream translation provider credentials.
type ProvidersConfig struct {
	Baidu BaiduConfig `toml:"baidu"`
	Keys  KeysConfig  `toml:"keys"`
}

type BaiduConfig struct {
	AppID     string `toml:"app_id"`
	SecretKey string `toml:"secret_key"`
}

type KeysConfig struct {
	OpenAI    string `toml:"openai"`
	Anthropic string `toml:"anthropic"`
}

// HistoryConfig controls the SQLite translation history and cache.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns sensible defaults: dictionary translation, padding
// disabled, a 32k window target for when filling is switched on.
func Default() Config {
	return Config{
		Provider: "dict",
		Filling: FillingConfig{
			Enabled:          false,
			WindowTarget:     32768,
			FillRatio:        0.95,
			SafetyMargin:     100,
			EstimationMethod: "precise",
		},
		Interfere: InterfereConfig{
			Enabled: false,
			Level:   "medium",
			Target:  "translation",
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Path returns the global config file path.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lingopad", "config.toml"), nil
}

// HistoryDBPath returns the default path for the translation history
// database.
func HistoryDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "lingopad", "history.db"), nil
}

// Load reads the global config, applying defaults for missing values and
// letting environment variables override the recognized options.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, decErr := toml.DecodeFile(path, &cfg); decErr != nil {
				return cfg, fmt.Errorf("config: load: %w", decErr)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Save writes the config to the global path.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// applyEnv overlays recognized environment variables onto cfg.
func applyEnv(cfg *Config) {
	envBool("CONTEXT_FILLING_ENABLED", &cfg.Filling.Enabled)
	envInt("CONTEXT_WINDOW_TARGET", &cfg.Filling.WindowTarget)
	envFloat("CONTEXT_FILLING_RATIO", &cfg.Filling.FillRatio)
	envInt("SAFETY_MARGIN_TOKENS", &cfg.Filling.SafetyMargin)
	envString("TOKEN_ESTIMATION_METHOD", &cfg.Filling.EstimationMethod)

	envBool("INTERFERENCE_ENABLED", &cfg.Interfere.Enabled)
	envString("INTERFERENCE_LEVEL", &cfg.Interfere.Level)
	envString("INTERFERENCE_TARGET", &cfg.Interfere.Target)

	envString("TRANSLATION_PROVIDER", &cfg.Provider)
	envString("BAIDU_TRANSLATE_APP_ID", &cfg.Providers.Baidu.AppID)
	envString("BAIDU_TRANSLATE_SECRET_KEY", &cfg.Providers.Baidu.SecretKey)
	envString("OPENAI_API_KEY", &cfg.Providers.Keys.OpenAI)
	envString("ANTHROPIC_API_KEY", &cfg.Providers.Keys.Anthropic)
}

func envString(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func envBool(name string, dst *bool) {
	if v := os.Getenv(name); v != "" {
		*dst = strings.EqualFold(v, "true") || v == "1"
	}
}

func envInt(name string, dst *int) {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envFloat(name string, dst *float64) {
	if v := os.Getenv(name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
