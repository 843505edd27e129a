package build

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// StageTiming records how long one stage ran.
type StageTiming struct {
	Name     string
	Duration time.Duration
}

// Report summarizes a build run.
type Report struct {
	ID     string
	Status Status
	Source string
	Output string

	Start    time.Time
	End      time.Time
	Duration time.Duration
	Stages   []StageTiming

	site.Stats
	SynthesizedIndexes int
	SidebarEntries     int

	// FailedStage names the stage that aborted the run, if any.
	FailedStage string
}

func (r *Report) finish(status Status, now time.Time) {
	r.Status = status
	r.End = now
	r.Duration = r.End.Sub(r.Start)
}

// LogAttrs returns the report as structured log attributes.
func (r *Report) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		logfields.BuildID(r.ID),
		slog.String("status", string(r.Status)),
		logfields.DurationMS(float64(r.Duration.Microseconds()) / 1000),
		slog.Int("directories", r.Directories),
		slog.Int("copied", r.Copied),
		slog.Int("wrapped", r.Wrapped),
		slog.Int("skipped", r.Skipped),
		slog.Int("synthesized_indexes", r.SynthesizedIndexes),
		slog.Int("sidebar_entries", r.SidebarEntries),
	}
	if r.FailedStage != "" {
		attrs = append(attrs, logfields.Stage(r.FailedStage))
	}
	return attrs
}
