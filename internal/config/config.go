package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir     string `yaml:"data_dir" mapstructure:"data_dir"`
	DefaultBook string `yaml:"default_book" mapstructure:"default_book"`
	PageSize    int    `yaml:"page_size" mapstructure:"page_size"`
	Theme       string `yaml:"theme" mapstructure:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:     defaultDataDir(),
		DefaultBook: "contacts",
		PageSize:    10,
		Theme:       "green",
	}
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "rolodex")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "rolodex")
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rolodex")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rolodex")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths
	viper.AddConfigPath(".")
	viper.AddConfigPath(configDir())

	// Environment variables
	viper.SetEnvPrefix("ROLODEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors and repairs out-of-range
// numeric settings.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("config: data_dir is required")
	}
	if c.DefaultBook == "" {
		c.DefaultBook = "contacts"
	}
	if c.PageSize < 1 {
		c.PageSize = 10
	}
	return nil
}

// WriteDefault writes a starter config file if none exists yet, and
// returns its path.
func WriteDefault() (string, error) {
	dir := configDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config: %s already exists", path)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0o644)
}
