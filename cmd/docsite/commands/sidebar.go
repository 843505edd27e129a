package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/build"
)

// SidebarCmd implements the 'sidebar' command.
type SidebarCmd struct {
	Output string `short:"o" help:"Build directory (default: config value or _build)"`
	Name   string `short:"n" help:"Site title used in template tokens"`
}

func (s *SidebarCmd) Run(g *Global, root *CLI) error {
	flags := SiteFlags{Output: s.Output, Name: s.Name}
	cfg, err := LoadConfig(root, flags.override(root.Verbose))
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	report, err := build.New(cfg).RebuildSidebar(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Sidebar written with %d entries\n", report.SidebarEntries)
	return nil
}
