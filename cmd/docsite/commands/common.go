package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// Global carries state shared by all subcommands.
type Global struct {
	// Out receives user-facing progress messages; nil means stdout.
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"${config_file}"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" help:"Build the documentation site (wipes the output directory)"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
	Sidebar  SidebarCmd  `cmd:"" help:"Regenerate the sidebar of an existing build"`
	Watch    WatchCmd    `cmd:"" help:"Build, then rebuild on every source change"`
	Workflow WorkflowCmd `cmd:"" help:"Write a GitHub Pages deployment workflow"`
}

// Vars returns the kong variables the CLI definition refers to.
func Vars(ver string) kong.Vars {
	return kong.Vars{
		"version":     ver,
		"config_file": config.DefaultConfigFile,
	}
}

// AfterApply runs after flag parsing and installs the default logger. The level is
// refined once the configuration file is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	setupLogging(config.LoggingConfig{}, c.Verbose)
	return nil
}

func setupLogging(lc config.LoggingConfig, verbose bool) {
	opts := &slog.HandlerOptions{Level: lc.SlogLevel(verbose)}
	var handler slog.Handler
	if config.NormalizeLogFormat(lc.Format) == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// SiteFlags are the command-line overrides shared by commands that build.
type SiteFlags struct {
	Source string   `short:"s" help:"Source directory (default: config value or .)"`
	Output string   `short:"o" help:"Output directory (default: config value or _build)"`
	Name   string   `short:"n" help:"Site title (default: name of the source directory)"`
	Skip   []string `help:"Entry names never copied; replaces the configured list"`
	Lang   []string `help:"Prism languages embedded in index.html; replaces the configured list"`
}

func (f SiteFlags) override(verbose bool) config.Override {
	return func(cfg *config.Config) {
		if f.Source != "" {
			cfg.Source = f.Source
		}
		if f.Output != "" {
			cfg.Output = f.Output
		}
		if f.Name != "" {
			cfg.Name = f.Name
		}
		if f.Skip != nil {
			cfg.Skip = f.Skip
		}
		if f.Lang != nil {
			cfg.Languages = f.Lang
		}
		if verbose {
			cfg.Verbose = true
		}
	}
}

// LoadConfig resolves the configuration for root, applying overrides. The default
// configuration file is optional; an explicitly named one must exist.
func LoadConfig(root *CLI, overrides ...config.Override) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if root.Config == "" || root.Config == config.DefaultConfigFile {
		cfg, err = config.LoadOrDefault(config.DefaultConfigFile, overrides...)
	} else {
		cfg, err = config.Load(root.Config, overrides...)
	}
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.Logging, root.Verbose || cfg.Verbose)
	return cfg, nil
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
