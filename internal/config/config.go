package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	DefaultVariant string `toml:"default_variant"`
	Shuffles       int    `toml:"shuffles"`
	Seed           uint64 `toml:"seed"` // 0 seeds from the clock
	Color          bool   `toml:"color"`
	NamesFile      string `toml:"names_file"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DefaultVariant: "standard",
		Shuffles:       7,
		Color:          true,
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
	return filepath.Join(GetXDGConfigHome(), "riffle", "config.toml")
}

// LoadConfig loads the config file at the default path
func LoadConfig() (*Config, error) {
	return Load(GetConfigFilePath())
}

// Load reads the config file at path, creating it with defaults if it does not
// exist, then applies environment overrides. A .env file in the working
// directory is loaded first if present.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config, err := read(configPath)
	if err != nil {
		return nil, err
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// read decodes the config file at configPath without environment overrides
func read(configPath string) (*Config, error) {
	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// applyEnv overrides fields from RIFFLE_* environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv("RIFFLE_VARIANT"); v != "" {
		c.DefaultVariant = v
	}
	if v := os.Getenv("RIFFLE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: RIFFLE_SEED: %v", ErrInvalidConfig, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("RIFFLE_SHUFFLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: RIFFLE_SHUFFLES: %v", ErrInvalidConfig, err)
		}
		c.Shuffles = n
	}
	return nil
}

// Validate checks field ranges
func (c *Config) Validate() error {
	if c.DefaultVariant == "" {
		return fmt.Errorf("%w: default_variant is required", ErrInvalidConfig)
	}
	if c.Shuffles < 0 {
		return fmt.Errorf("%w: shuffles must not be negative, got %d", ErrInvalidConfig, c.Shuffles)
	}
	return nil
}

// createDefaultConfig writes a default config file to configPath
func createDefaultConfig(configPath string) (*Config, error) {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()
	if err := Save(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save encodes config as TOML to configPath
func Save(configPath string, config *Config) error {
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

// SetDefaultVariant sets the default variant in the config file at configPath
func SetDefaultVariant(configPath, variant string) error {
	config, err := read(configPath)
	if err != nil {
		return err
	}

	config.DefaultVariant = variant
	return Save(configPath, config)
}
