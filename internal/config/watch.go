package config

import (
	"fmt"
	"time"
)

// WatchConfig controls the long-running watch mode.
type WatchConfig struct {
	Debounce string `yaml:"debounce,omitempty"` // Quiet period before a change triggers a rebuild
	Schedule string `yaml:"schedule,omitempty"` // Optional cron expression or interval ("1h") for periodic full rebuilds
	Addr     string `yaml:"addr,omitempty"`     // Optional listen address serving the site and /metrics
}

const defaultDebounce = 300 * time.Millisecond

// DebounceDuration parses Debounce, falling back to the default for an empty value.
func (w WatchConfig) DebounceDuration() (time.Duration, error) {
	if w.Debounce == "" {
		return defaultDebounce, nil
	}
	d, err := time.ParseDuration(w.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch.debounce %q: %w", w.Debounce, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("watch.debounce must be positive, got %s", w.Debounce)
	}
	return d, nil
}
