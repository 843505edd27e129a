package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFatal    ResultLabel = "fatal"
	ResultCanceled ResultLabel = "canceled"
)

// BuildOutcomeLabel is the final status of a build run.
type BuildOutcomeLabel string

const (
	BuildOutcomeSuccess  BuildOutcomeLabel = "success"
	BuildOutcomeFailed   BuildOutcomeLabel = "failed"
	BuildOutcomeCanceled BuildOutcomeLabel = "canceled"
)

// Rebuild triggers reported by IncRebuild.
const (
	TriggerInitial  = "initial"
	TriggerWatch    = "watch"
	TriggerSchedule = "schedule"
)

// Recorder defines observability hooks for build and stage metrics. NoopRecorder
// is the default when metrics are not configured.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncBuildOutcome(outcome BuildOutcomeLabel)
	AddEntries(action string, n int) // action: copy|wrap|skip|descend
	AddSynthesizedIndexes(n int)
	SetSidebarEntries(n int)
	IncRebuild(trigger string)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncBuildOutcome(BuildOutcomeLabel)          {}
func (NoopRecorder) AddEntries(string, int)                     {}
func (NoopRecorder) AddSynthesizedIndexes(int)                  {}
func (NoopRecorder) SetSidebarEntries(int)                      {}
func (NoopRecorder) IncRebuild(string)                          {}
