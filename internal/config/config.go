package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = "docsite.yaml"

// Config represents the resolved build configuration. It is constructed once at
// startup, validated, and then passed by pointer to every build component, which
// must treat it as read-only.
type Config struct {
	Name           string               `yaml:"name"`                     // Site title ({{name}})
	Source         string               `yaml:"source"`                   // Source root to mirror
	Output         string               `yaml:"output"`                   // Build output directory (wiped on every build)
	Skip           []string             `yaml:"skip"`                     // Entry names never copied
	Verbose        bool                 `yaml:"verbose,omitempty"`        // Debug logging
	Languages      []string             `yaml:"languages"`                // Prism languages embedded in index.html
	Version        string               `yaml:"version,omitempty"`        // Tool version used for footer and body classes
	Classification []ClassificationRule `yaml:"classification,omitempty"` // Extra extension → language tag rules
	Sidebar        SidebarConfig        `yaml:"sidebar"`
	Logging        LoggingConfig        `yaml:"logging"`
	Watch          WatchConfig          `yaml:"watch"`
}

// SidebarConfig controls sidebar synthesis.
type SidebarConfig struct {
	ReservedFolders []string `yaml:"reserved_folders"` // Root-level folders left out of the sidebar
	Index           string   `yaml:"index"`            // Landing page file name per folder
}

// LoggingConfig controls the slog handler installed by the CLI.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Override adjusts a configuration after it was read and before defaults apply, so
// derived defaults (such as the site name) follow overridden values.
type Override func(*Config)

// Load reads the configuration file at configPath, applies overrides and defaults,
// and validates the result.
func Load(configPath string, overrides ...Override) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "configuration file not found").
				WithContext("path", configPath).Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).Build()
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			WithContext("path", configPath).Build()
	}
	return finalize(&cfg, overrides)
}

// LoadOrDefault behaves like Load but falls back to the built-in defaults when no file
// exists at configPath. The tool is usable without any configuration file.
func LoadOrDefault(configPath string, overrides ...Override) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		slog.Debug("No configuration file, using defaults", logfields.Path(configPath))
		return Default(overrides...)
	}
	return Load(configPath, overrides...)
}

// Default returns a validated configuration with every default applied.
func Default(overrides ...Override) (*Config, error) {
	loadEnvFile()
	return finalize(&Config{}, overrides)
}

func finalize(cfg *Config, overrides []Override) (*Config, error) {
	for _, o := range overrides {
		o(cfg)
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize re-applies defaults and validation after command-line overrides were merged in.
func (c *Config) Finalize() error {
	if err := applyDefaults(c); err != nil {
		return err
	}
	return ValidateConfig(c)
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		Name:      "My Documentation",
		Source:    ".",
		Output:    "_build",
		Skip:      []string{"node_modules", "vendor"},
		Languages: []string{"bash", "php", "velocity", "xml", "ini"},
		Classification: []ClassificationRule{
			{Extension: "sh", Tag: "bash"},
		},
		Sidebar: SidebarConfig{
			ReservedFolders: []string{"img", "docs"},
			Index:           "README.md",
		},
		Logging: LoggingConfig{Level: string(LogLevelInfo), Format: string(LogFormatText)},
		Watch:   WatchConfig{Debounce: "300ms"},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	// #nosec G306 -- configuration holds no secrets
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
