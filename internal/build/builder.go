package build

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/observability"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/templates"
	"git.home.luguber.info/inful/docsite/internal/workspace"
)

// ErrNotBuilt indicates the output directory holds no previous build.
var ErrNotBuilt = errors.New("output directory has not been built")

// HasBeenBuilt reports whether dir contains a scaffolded site.
func HasBeenBuilt(dir string) bool {
	return workspace.Exists(filepath.Join(dir, templates.AssetIndexHTML))
}

// Builder runs builds for one resolved configuration. The configuration is never
// modified.
type Builder struct {
	cfg      *config.Config
	recorder metrics.Recorder
	now      func() time.Time
}

// New creates a Builder for cfg with metrics disabled.
func New(cfg *config.Config) *Builder {
	return &Builder{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
	}
}

// WithRecorder sets the metrics recorder.
func (b *Builder) WithRecorder(r metrics.Recorder) *Builder {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	b.recorder = r
	return b
}

// WithClock replaces the time source used for durations and the sidebar footer.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

type stage struct {
	name string
	run  func(ctx context.Context, r *Report) error
}

// Run performs a full build. The returned report is never nil, even on failure.
func (b *Builder) Run(ctx context.Context) (*Report, error) {
	bindings := templates.NewBindings(b.cfg)
	synth := site.NewSynthesizer(b.cfg, bindings).WithClock(b.now)

	observability.InfoContext(ctx, "Initializing doc-site project...",
		logfields.Path(b.cfg.Source), logfields.Dest(b.cfg.Output))

	return b.execute(ctx, []stage{
		{StagePrepare, func(context.Context, *Report) error {
			return workspace.Prepare(b.cfg.Output)
		}},
		{StageScaffold, func(context.Context, *Report) error {
			return templates.Scaffold(b.cfg.Output, bindings)
		}},
		{StageMaterialize, func(_ context.Context, r *Report) error {
			stats, err := site.NewMaterializer(b.cfg).Materialize(b.cfg.Source, b.cfg.Output)
			r.Stats = stats
			return err
		}},
		{StageSidebar, b.sidebarStage(synth)},
	})
}

// RebuildSidebar regenerates only the sidebar of an existing build.
func (b *Builder) RebuildSidebar(ctx context.Context) (*Report, error) {
	if !HasBeenBuilt(b.cfg.Output) {
		return nil, ferrors.WrapError(ErrNotBuilt, ferrors.CategoryNotFound, "run a build before regenerating the sidebar").
			WithContext("output", b.cfg.Output).Build()
	}
	synth := site.NewSynthesizer(b.cfg, templates.NewBindings(b.cfg)).WithClock(b.now)
	return b.execute(ctx, []stage{{StageSidebar, b.sidebarStage(synth)}})
}

func (b *Builder) sidebarStage(synth *site.Synthesizer) func(context.Context, *Report) error {
	return func(_ context.Context, r *Report) error {
		entries, err := synth.Write(b.cfg.Output)
		r.SidebarEntries = len(entries)
		r.SynthesizedIndexes = synth.Synthesized()
		return err
	}
}

func (b *Builder) execute(ctx context.Context, stages []stage) (*Report, error) {
	report := &Report{
		ID:     uuid.NewString(),
		Source: b.cfg.Source,
		Output: b.cfg.Output,
		Start:  b.now(),
	}
	ctx = observability.WithBuildID(ctx, report.ID)

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			b.recorder.IncStageResult(s.name, metrics.ResultCanceled)
			return b.abort(ctx, report, s.name, StatusCanceled,
				ferrors.WrapError(err, ferrors.CategoryRuntime, "build canceled").WithContext("stage", s.name).Build())
		}

		stageCtx := observability.WithStage(ctx, s.name)
		observability.DebugContext(stageCtx, "Stage started")
		stageStart := b.now()
		err := s.run(stageCtx, report)
		d := b.now().Sub(stageStart)
		report.Stages = append(report.Stages, StageTiming{Name: s.name, Duration: d})
		b.recorder.ObserveStageDuration(s.name, d)

		if err != nil {
			b.recorder.IncStageResult(s.name, metrics.ResultFatal)
			return b.abort(ctx, report, s.name, StatusFailed, classify(err, s.name))
		}
		b.recorder.IncStageResult(s.name, metrics.ResultSuccess)
	}

	report.finish(StatusSuccess, b.now())
	b.recordTotals(report)
	b.recorder.IncBuildOutcome(metrics.BuildOutcomeSuccess)
	observability.InfoContext(ctx, "Build complete", report.LogAttrs()...)
	return report, nil
}

func (b *Builder) abort(ctx context.Context, report *Report, stageName string, status Status, err error) (*Report, error) {
	report.FailedStage = stageName
	report.finish(status, b.now())
	b.recordTotals(report)
	outcome := metrics.BuildOutcomeFailed
	if status == StatusCanceled {
		outcome = metrics.BuildOutcomeCanceled
	}
	b.recorder.IncBuildOutcome(outcome)
	observability.ErrorContext(ctx, "Build failed", append(report.LogAttrs(), logfields.Error(err))...)
	return report, err
}

func (b *Builder) recordTotals(r *Report) {
	b.recorder.ObserveBuildDuration(r.Duration)
	b.recorder.AddEntries(site.ActionDescend.String(), r.Directories)
	b.recorder.AddEntries(site.ActionCopy.String(), r.Copied)
	b.recorder.AddEntries(site.ActionWrap.String(), r.Wrapped)
	b.recorder.AddEntries(site.ActionSkip.String(), r.Skipped)
	b.recorder.AddSynthesizedIndexes(r.SynthesizedIndexes)
	if r.FailedStage == "" {
		b.recorder.SetSidebarEntries(r.SidebarEntries)
	}
}

// classify keeps classified errors as they are and files everything else under the
// build category.
func classify(err error, stageName string) error {
	if ferrors.IsClassified(err) {
		return err
	}
	return ferrors.WrapError(err, ferrors.CategoryBuild, "build stage failed").
		WithContext("stage", stageName).Fatal().Build()
}
