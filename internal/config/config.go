// Package config resolves rulebook settings. Precedence: flags > env >
// config file > defaults. A Config value is built once at the CLI layer
// and passed down; nothing reads ambient state after that.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	// LibraryDir is the root of the template library.
	LibraryDir string `mapstructure:"library_dir"`
	// OutputDir is the default destination for generated files.
	OutputDir string `mapstructure:"output_dir"`
	// Targets are the default render targets for generate.
	Targets []string `mapstructure:"targets"`
	// PriorityMode is the default comparison direction for priority
	// filtering ("at-least" or "at-most").
	PriorityMode string `mapstructure:"priority_mode"`
}

// DefaultLibraryDir returns ~/.rulebook, or the current directory when
// the home directory cannot be resolved.
func DefaultLibraryDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".rulebook"
	}
	return filepath.Join(homeDir, ".rulebook")
}

// Load resolves configuration. libraryFlag, when non-empty, wins over
// env and file settings and also decides where the config file is read
// from.
func Load(libraryFlag string) (*Config, error) {
	v := viper.New()
	v.SetDefault("library_dir", DefaultLibraryDir())
	v.SetDefault("output_dir", ".")
	v.SetDefault("targets", []string{"cursor", "copilot", "claude"})
	v.SetDefault("priority_mode", "at-least")

	// RULEBOOK_DIR / RULEBOOK_OUTPUT env overrides
	v.BindEnv("library_dir", "RULEBOOK_DIR")
	v.BindEnv("output_dir", "RULEBOOK_OUTPUT")

	libraryDir := libraryFlag
	if libraryDir == "" {
		libraryDir = v.GetString("library_dir")
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(libraryDir)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if libraryFlag != "" {
		cfg.LibraryDir = libraryFlag
	}
	return &cfg, nil
}
