package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/templates"
)

// WorkflowCmd implements the 'workflow' command.
type WorkflowCmd struct {
	Source string `short:"s" help:"Project root receiving .github/workflows (default: config source or .)"`
	Force  bool   `help:"Overwrite an existing workflow file"`
}

func (w *WorkflowCmd) Run(g *Global, root *CLI) error {
	flags := SiteFlags{Source: w.Source}
	cfg, err := LoadConfig(root, flags.override(root.Verbose))
	if err != nil {
		return err
	}
	path, err := templates.WriteWorkflow(cfg.Source, w.Force)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Workflow written to %s\n", path)
	return nil
}
