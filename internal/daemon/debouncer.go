package daemon

import (
	"sync"
	"time"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Debouncer coalesces bursts of Trigger calls into one call of fire, made once no
// trigger arrived for the quiet window.
type Debouncer struct {
	quiet time.Duration
	fire  func()

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewDebouncer creates a debouncer calling fire after quiet of inactivity.
func NewDebouncer(quiet time.Duration, fire func()) (*Debouncer, error) {
	if quiet <= 0 {
		return nil, ferrors.ValidationError("quiet window must be > 0").Build()
	}
	if fire == nil {
		return nil, ferrors.ValidationError("fire callback is required").Build()
	}
	return &Debouncer{quiet: quiet, fire: fire}, nil
}

// Trigger restarts the quiet window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

// Stop cancels a pending fire. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
