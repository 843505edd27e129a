package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/build"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	SiteFlags
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := LoadConfig(root, b.override(root.Verbose))
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	report, err := build.New(cfg).Run(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Built %s into %s: %d copied, %d wrapped, %d skipped, %d index pages generated\n",
		cfg.Name, cfg.Output, report.Copied, report.Wrapped, report.Skipped, report.SynthesizedIndexes)
	return nil
}
