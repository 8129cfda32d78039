package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings Waypoint reads at startup.
type Config struct {
	StartRoute    string
	LogFile       string
	LogLevel      string
	HistoryLimit  int
	LegacyArchive bool
	Language      string
}

const (
	defaultConfigPath = "~/.config/waypoint/config.toml"
	defaultLogFile    = "~/.local/state/waypoint/waypoint.log"
	defaultStartRoute = "Home"
	defaultLogLevel   = "info"
	defaultLanguage   = "en"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		StartRoute: defaultStartRoute,
		LogFile:    mustExpand(defaultLogFile),
		LogLevel:   defaultLogLevel,
		Language:   defaultLanguage,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		StartRoute    string `toml:"start_route"`
		LogFile       string `toml:"log_file"`
		LogLevel      string `toml:"log_level"`
		HistoryLimit  int    `toml:"history_limit"`
		LegacyArchive bool   `toml:"legacy_archive"`
		Language      string `toml:"language"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.StartRoute); v != "" {
		cfg.StartRoute = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.Language); v != "" {
		cfg.Language = v
	}
	if raw.HistoryLimit < 0 {
		return Config{}, fmt.Errorf("history_limit must be >= 0, got %d", raw.HistoryLimit)
	}
	cfg.HistoryLimit = raw.HistoryLimit
	cfg.LegacyArchive = raw.LegacyArchive

	return cfg, nil
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
