package commands

import (
	"git.home.luguber.info/inful/docsite/internal/build"
	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/daemon"
	"git.home.luguber.info/inful/docsite/internal/metrics"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	SiteFlags
	Addr     string `help:"Serve the output and /metrics on this address, e.g. :3000"`
	Schedule string `help:"Cron expression or interval (e.g. 1h) for additional periodic full rebuilds"`
	Debounce string `help:"Quiet period before a change triggers a rebuild, e.g. 500ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root, w.override(root.Verbose), func(c *config.Config) {
		if w.Addr != "" {
			c.Watch.Addr = w.Addr
		}
		if w.Schedule != "" {
			c.Watch.Schedule = w.Schedule
		}
		if w.Debounce != "" {
			c.Watch.Debounce = w.Debounce
		}
	})
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	reg := metrics.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)
	builder := build.New(cfg).WithRecorder(rec)
	return daemon.New(cfg, builder).WithMetrics(rec, reg).Run(ctx)
}
