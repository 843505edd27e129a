package daemon

import (
	"sync"
	"time"

	"git.home.luguber.info/inful/docsite/internal/build"
)

// buildStatus tracks the outcome of the most recent rebuild.
type buildStatus struct {
	mu           sync.RWMutex
	lastError    error
	lastReport   *build.Report
	hasGoodBuild bool
	builds       int
}

func (bs *buildStatus) record(report *build.Report, err error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.builds++
	bs.lastError = err
	if report != nil {
		bs.lastReport = report
	}
	if err == nil {
		bs.hasGoodBuild = true
	}
}

// StatusSnapshot is the JSON body served on /healthz.
type StatusSnapshot struct {
	Status       string    `json:"status"`
	Builds       int       `json:"builds"`
	HasGoodBuild bool      `json:"has_good_build"`
	LastBuildID  string    `json:"last_build_id,omitempty"`
	LastBuildEnd time.Time `json:"last_build_end,omitzero"`
	Error        string    `json:"error,omitempty"`
}

func (bs *buildStatus) snapshot() StatusSnapshot {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	s := StatusSnapshot{Status: "ok", Builds: bs.builds, HasGoodBuild: bs.hasGoodBuild}
	if bs.lastReport != nil {
		s.LastBuildID = bs.lastReport.ID
		s.LastBuildEnd = bs.lastReport.End
	}
	if bs.lastError != nil {
		s.Status = "error"
		s.Error = bs.lastError.Error()
	}
	return s
}
