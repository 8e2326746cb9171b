// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for foliogen.
type Config struct {
	Theme       string `mapstructure:"theme" yaml:"theme"`
	OutputDir   string `mapstructure:"output_dir" yaml:"output_dir"`
	OpenPreview bool   `mapstructure:"open_preview" yaml:"open_preview"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	DraftsDB    string `mapstructure:"drafts_db" yaml:"drafts_db"`
	Port        int    `mapstructure:"port" yaml:"port"`
	AuthorName  string `mapstructure:"author_name" yaml:"author_name"`
	AuthorEmail string `mapstructure:"author_email" yaml:"author_email"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("foliogen")

	v.SetDefault("theme", "dark")
	v.SetDefault("output_dir", ".")
	v.SetDefault("open_preview", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("drafts_db", DefaultDraftsDB())
	v.SetDefault("port", 8080)
	v.SetDefault("author_name", "")
	v.SetDefault("author_email", "")

	// Setup ENV binding with FOLIOGEN_ prefix
	v.SetEnvPrefix("FOLIOGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better bool/int parsing
	for _, key := range []string{
		"theme", "output_dir", "open_preview", "log_level",
		"log_file", "drafts_db", "port", "author_name", "author_email",
	} {
		envName := "FOLIOGEN_" + strings.ToUpper(key)
		if err := v.BindEnv(key, envName); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/foliogen/foliogen.yml or $XDG_CONFIG_HOME/foliogen/foliogen.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "foliogen", "foliogen.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "foliogen", "foliogen.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./foliogen.yml in the current working directory.
func ProjectPath() string {
	return "foliogen.yml"
}

// DefaultDraftsDB returns the default location for the draft database,
// next to the global config file.
func DefaultDraftsDB() string {
	return filepath.Join(filepath.Dir(GlobalPath()), "drafts.db")
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ProjectPath(), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
