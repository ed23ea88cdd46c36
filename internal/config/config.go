package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration
type Config struct {
	// Seed for the deck shuffle, 0 means a fresh random deck every time
	Seed         int64  `toml:"seed" envconfig:"seed"`
	Participants []int  `toml:"participants" envconfig:"participants"`
	LogLevel     string `toml:"log_level" envconfig:"log_level"`
	LogJSON      bool   `toml:"log_json" envconfig:"log_json"`
	Color        bool   `toml:"color" envconfig:"color"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Participants: []int{1, 2},
		LogLevel:     "info",
		Color:        true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "trucoworld", "config.toml")
}

// Load reads the config file, if any, and applies TRUCO_* environment overrides
func Load() (*Config, error) {
	config := Default()

	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := envconfig.Process("truco", config); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	return config, nil
}

// Init writes the default config file if it doesn't exist and returns its path
func Init() (string, error) {
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("error reading config file: %w", err)
	}

	if err := Save(Default()); err != nil {
		return "", err
	}

	return configPath, nil
}

// Save writes the config to the config file
func Save(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
