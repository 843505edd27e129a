package daemon

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsite/internal/build"
	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/observability"
)

const shutdownTimeout = 5 * time.Second

// SiteBuilder runs one complete build.
type SiteBuilder interface {
	Run(ctx context.Context) (*build.Report, error)
}

// Daemon rebuilds the site on source changes and on an optional schedule. Rebuilds
// never overlap: requests arriving while a build runs collapse into one follow-up.
type Daemon struct {
	cfg      *config.Config
	builder  SiteBuilder
	recorder metrics.Recorder
	registry *prom.Registry

	requests chan string
	status   buildStatus

	mu     sync.Mutex
	server *Server
}

// New creates a daemon for cfg driving builder.
func New(cfg *config.Config, builder SiteBuilder) *Daemon {
	return &Daemon{
		cfg:      cfg,
		builder:  builder,
		recorder: metrics.NoopRecorder{},
		requests: make(chan string, 1),
	}
}

// WithMetrics sets the recorder for rebuild counters and the registry served on /metrics.
func (d *Daemon) WithMetrics(rec metrics.Recorder, reg *prom.Registry) *Daemon {
	if rec != nil {
		d.recorder = rec
	}
	d.registry = reg
	return d
}

// ServerAddr returns the preview server address once it is listening.
func (d *Daemon) ServerAddr() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.server == nil {
		return ""
	}
	return d.server.Addr()
}

// Request queues a rebuild. It never blocks; a request made while one is already
// queued is dropped.
func (d *Daemon) Request(trigger string) {
	select {
	case d.requests <- trigger:
	default:
		slog.Debug("Rebuild already pending", slog.String("trigger", trigger))
	}
}

// Run performs the initial build and then serves rebuild requests until ctx is
// canceled. A failing build is logged and does not stop the daemon.
func (d *Daemon) Run(ctx context.Context) error {
	quiet, err := d.cfg.Watch.DebounceDuration()
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid watch configuration").Build()
	}

	d.rebuild(ctx, metrics.TriggerInitial)

	debouncer, err := NewDebouncer(quiet, func() { d.Request(metrics.TriggerWatch) })
	if err != nil {
		return err
	}
	watcher, err := NewWatcher(d.cfg.Source, d.cfg.Output, d.cfg.Skip, debouncer.Trigger)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to watch source directory").
			WithContext("source", d.cfg.Source).Build()
	}

	var sched *Scheduler
	if expr := d.cfg.Watch.Schedule; expr != "" {
		if sched, err = d.startScheduler(expr); err != nil {
			debouncer.Stop()
			_ = watcher.Close()
			return err
		}
	}

	if addr := d.cfg.Watch.Addr; addr != "" {
		srv := NewServer(addr, d.cfg.Output, &d.status, d.registry)
		if err := srv.Start(); err != nil {
			debouncer.Stop()
			_ = watcher.Close()
			if sched != nil {
				_ = sched.Stop(ctx)
			}
			return ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to start preview server").Build()
		}
		d.mu.Lock()
		d.server = srv
		d.mu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		d.worker(ctx)
	}()
	go func() {
		defer wg.Done()
		_ = watcher.Run(ctx)
	}()

	slog.Info("Watching for changes", logfields.Path(d.cfg.Source), logfields.Dest(d.cfg.Output))
	<-ctx.Done()
	slog.Info("Shutting down watcher...")

	debouncer.Stop()
	var errs []error
	if err := watcher.Close(); err != nil {
		errs = append(errs, err)
	}
	if sched != nil {
		if err := sched.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if srv := d.serverOrNil(); srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}

func (d *Daemon) serverOrNil() *Server {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.server
}

func (d *Daemon) startScheduler(expr string) (*Scheduler, error) {
	sched, err := NewScheduler()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to create scheduler").Build()
	}
	task := func() { d.Request(metrics.TriggerSchedule) }
	// A plain duration ("15m") runs at a fixed interval; anything else is a cron expression.
	if every, perr := time.ParseDuration(expr); perr == nil {
		_, err = sched.ScheduleEvery("scheduled-rebuild", every, task)
	} else {
		_, err = sched.ScheduleCron("scheduled-rebuild", expr, task)
	}
	if err != nil {
		_ = sched.Stop(context.Background())
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "invalid watch schedule").
			WithContext("schedule", expr).Build()
	}
	sched.Start()
	return sched, nil
}

func (d *Daemon) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case trigger := <-d.requests:
			d.rebuild(ctx, trigger)
		}
	}
}

func (d *Daemon) rebuild(ctx context.Context, trigger string) {
	ctx = observability.WithTrigger(ctx, trigger)
	d.recorder.IncRebuild(trigger)
	if trigger != metrics.TriggerInitial {
		observability.InfoContext(ctx, "Change detected; rebuilding site")
	}
	report, err := d.builder.Run(ctx)
	d.status.record(report, err)
	if err != nil {
		observability.WarnContext(ctx, "Rebuild failed", logfields.Error(err))
	}
}
