package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "CARDPLAY_"

// Config represents the application configuration
type Config struct {
	// Color enables ANSI colours for red suits.
	Color bool `toml:"color" env:"COLOR"`
	// Symbols renders suits as ♠ ♥ ♦ ♣ instead of letters.
	Symbols bool `toml:"symbols" env:"SYMBOLS"`
	// Packs is the number of standard packs in the default deck.
	Packs int `toml:"packs" env:"PACKS"`
	// HandsFile is the hand file used when none is given on the command line.
	HandsFile string `toml:"hands_file" env:"HANDS_FILE"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Color:     true,
		Symbols:   false,
		Packs:     1,
		HandsFile: filepath.Join(GetDataPath(), "hands.toml"),
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
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

// GetDataPath returns the directory holding hand files and decks
func GetDataPath() string {
	return filepath.Join(GetXDGDataHome(), "cardplay")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardplay", "config.toml")
}

// LoadConfig loads the config file and applies environment overrides.
// A default config file is created if none exists.
func LoadConfig() (*Config, error) {
	config, err := LoadFile()
	if err != nil {
		return nil, err
	}

	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	return config, nil
}

// LoadFile loads the config file as stored, without environment overrides.
// Use it when the config is going to be written back.
func LoadFile() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to the config file path
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

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
