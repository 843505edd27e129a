package daemon

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	var fired atomic.Int32
	d, err := NewDebouncer(30*time.Millisecond, func() { fired.Add(1) })
	require.NoError(t, err)
	t.Cleanup(d.Stop)

	for range 5 {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return fired.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncerStopCancelsPendingFire(t *testing.T) {
	var fired atomic.Int32
	d, err := NewDebouncer(20*time.Millisecond, func() { fired.Add(1) })
	require.NoError(t, err)

	d.Trigger()
	d.Stop()
	d.Trigger()
	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestNewDebouncerValidation(t *testing.T) {
	_, err := NewDebouncer(0, func() {})
	require.Error(t, err)
	_, err = NewDebouncer(time.Second, nil)
	require.Error(t, err)
}
