package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// DefaultStateFile is where the active session is kept when no
// override is configured. It lives in the working directory.
const DefaultStateFile = ".notion_timer_state.json"

type Config struct {
	Token      string `toml:"token" env:"NOTION_TOKEN"`
	DatabaseID string `toml:"database_id" env:"NOTION_DATABASE_ID"`
	StateFile  string `toml:"state_file" env:"NOTION_TIMER_STATE_FILE"`
}

// MissingError reports a required credential that was not provided.
type MissingError struct {
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing required %s. Provide it via environment variable or CLI flag", e.Name)
}

// Load resolves configuration from defaults, an optional TOML file,
// and environment variables, in that order.
func Load() (*Config, error) {
	cfg := &Config{
		StateFile: DefaultStateFile,
	}

	if configPath := configFilePath(); configPath != "" {
		var fc Config
		if _, err := toml.DecodeFile(configPath, &fc); err == nil {
			if fc.Token != "" {
				cfg.Token = fc.Token
			}
			if fc.DatabaseID != "" {
				cfg.DatabaseID = fc.DatabaseID
			}
			if fc.StateFile != "" {
				cfg.StateFile = fc.StateFile
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return cfg, nil
}

// ValidateCredentials checks that the Notion credentials needed to
// write an entry are present. It has no side effects.
func (c *Config) ValidateCredentials() error {
	if c.Token == "" {
		return &MissingError{Name: "NOTION_TOKEN"}
	}
	if c.DatabaseID == "" {
		return &MissingError{Name: "NOTION_DATABASE_ID"}
	}
	return nil
}

// FilePath returns the config file path that Load consults, whether or
// not it exists. Used by doctor output.
func FilePath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

func configFilePath() string {
	path := FilePath()
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "notion-timer")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "notion-timer")
	}
	return ""
}
