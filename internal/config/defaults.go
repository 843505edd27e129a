package config

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/docsite/internal/version"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

var defaultAppliers = []DefaultApplier{
	&pathsDefaultApplier{},
	&contentDefaultApplier{},
	&sidebarDefaultApplier{},
	&loggingDefaultApplier{},
	&watchDefaultApplier{},
}

func applyDefaults(cfg *Config) error {
	for _, applier := range defaultAppliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("apply %s defaults: %w", applier.Domain(), err)
		}
	}
	return nil
}

// pathsDefaultApplier resolves source and output to absolute paths relative to the
// working directory and derives the site name from the source directory.
type pathsDefaultApplier struct{}

func (p *pathsDefaultApplier) Domain() string { return "paths" }

func (p *pathsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Source == "" {
		cfg.Source = "."
	}
	if cfg.Output == "" {
		cfg.Output = "_build"
	}
	src, err := filepath.Abs(cfg.Source)
	if err != nil {
		return fmt.Errorf("resolve source: %w", err)
	}
	out, err := filepath.Abs(cfg.Output)
	if err != nil {
		return fmt.Errorf("resolve output: %w", err)
	}
	cfg.Source, cfg.Output = src, out
	if cfg.Name == "" {
		cfg.Name = filepath.Base(src)
		if cfg.Name == string(os.PathSeparator) || cfg.Name == "." {
			cfg.Name = "Documentation"
		}
	}
	return nil
}

// contentDefaultApplier fills the skip list, embedded languages and tool version.
// Nil slices mean "not configured"; an explicit empty list is respected.
type contentDefaultApplier struct{}

func (c *contentDefaultApplier) Domain() string { return "content" }

func (c *contentDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Skip == nil {
		cfg.Skip = []string{"node_modules"}
	}
	if cfg.Languages == nil {
		cfg.Languages = []string{"bash", "php", "velocity", "xml", "ini"}
	}
	if cfg.Version == "" {
		cfg.Version = version.Version
	}
	return nil
}

type sidebarDefaultApplier struct{}

func (s *sidebarDefaultApplier) Domain() string { return "sidebar" }

func (s *sidebarDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Sidebar.ReservedFolders == nil {
		cfg.Sidebar.ReservedFolders = []string{"img", "docs"}
	}
	if cfg.Sidebar.Index == "" {
		cfg.Sidebar.Index = "README.md"
	}
	return nil
}

type loggingDefaultApplier struct{}

func (l *loggingDefaultApplier) Domain() string { return "logging" }

func (l *loggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = string(LogLevelInfo)
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = string(LogFormatText)
	}
	return nil
}

type watchDefaultApplier struct{}

func (w *watchDefaultApplier) Domain() string { return "watch" }

func (w *watchDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = defaultDebounce.String()
	}
	return nil
}
