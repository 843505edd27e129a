package build

// Status represents the outcome of a build run.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusCanceled Status = "canceled"
)

// IsSuccess reports whether the build completed.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// Stage names used in logs, reports and metrics.
const (
	StagePrepare     = "prepare"
	StageScaffold    = "scaffold"
	StageMaterialize = "materialize"
	StageSidebar     = "sidebar"
)

// Stages lists the build stages in execution order.
var Stages = []string{StagePrepare, StageScaffold, StageMaterialize, StageSidebar}
