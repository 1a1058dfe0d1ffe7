package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings Pokedex reads at startup. Environment
// variables override values from the TOML file.
type Config struct {
	BaseURL  string `env:"POKEDEX_BASE_URL"`
	LogFile  string `env:"POKEDEX_LOG_FILE"`
	LogLevel string `env:"POKEDEX_LOG_LEVEL"`
}

const (
	defaultConfigPath = "~/.config/pokedex/config.toml"
	defaultBaseURL    = "https://pokeapi.co/api/v2"
	defaultLogFile    = "~/.local/state/pokedex/pokedex.log"
	defaultLogLevel   = "info"
)

// Default returns the configuration used when no file or environment
// overrides exist.
func Default() Config {
	cfg := Config{BaseURL: defaultBaseURL, LogFile: defaultLogFile, LogLevel: defaultLogLevel}
	cfg.normalize()
	return cfg
}

// Load locates and parses the config file, falling back to defaults when it
// is missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{BaseURL: defaultBaseURL, LogFile: defaultLogFile, LogLevel: defaultLogLevel}

	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL  *string `toml:"base_url"`
		LogFile  *string `toml:"log_file"`
		LogLevel *string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if raw.BaseURL != nil {
		cfg.BaseURL = *raw.BaseURL
	}
	if raw.LogFile != nil {
		cfg.LogFile = *raw.LogFile
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	return nil
}

// Override applies command-line values on top of file and environment
// settings. Blank values leave the current setting alone.
func (c *Config) Override(baseURL, logLevel string) {
	if v := strings.TrimSpace(baseURL); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(logLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

func (c *Config) normalize() {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	// "-" disables the log file.
	c.LogFile = strings.TrimSpace(c.LogFile)
	switch c.LogFile {
	case "-":
		c.LogFile = ""
	case "":
		c.LogFile = mustExpand(defaultLogFile)
	default:
		c.LogFile = mustExpand(c.LogFile)
	}
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
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
