package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	dirName        = ".coldpitch"
	configFileName = "config.yaml"
)

// Config holds user preferences. Everything is optional.
type Config struct {
	// Sender prefills "Your Name" when no value is given at start.
	Sender string       `yaml:"sender"`
	Theme  string       `yaml:"theme"` // classic | neon | mono
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty = stderr for one-shot commands
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func Default() *Config {
	return &Config{
		Theme:  "classic",
		Log:    LogConfig{Level: "warn"},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
	}
}

// DefaultPath is $HOME/.coldpitch/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName, configFileName), nil
}

// Load reads path over the defaults. A missing file is not an error.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	return cfg, cfg.Validate()
}

// LoadFile is Load without environment overrides, for editing the file itself.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the directory with 0700.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.Sender, "COLDPITCH_SENDER")
	set(&c.Theme, "COLDPITCH_THEME")
	set(&c.Log.Level, "COLDPITCH_LOG_LEVEL")
	set(&c.Log.File, "COLDPITCH_LOG_FILE")
	set(&c.Server.Addr, "COLDPITCH_ADDR")
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "", "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q (want classic, neon or mono)", c.Theme)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
