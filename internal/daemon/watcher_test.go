package daemon

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherShouldIgnore(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "site")
	w, err := NewWatcher(root, out, []string{"node_modules"}, func() {})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	cases := map[string]bool{
		"guide.md":              false,
		"config.ini":            false,
		"~Makefile":             false,
		".git":                  true,
		"_drafts":               true,
		"guide.md~":             true,
		".guide.md.swp":         true,
		"guide.md.swx":          true,
		"#guide.md#":            true,
		"node_modules":          true,
		"site":                  true,
		"site/index.html":       true,
		"site-notes/index.md":   false,
		"nested/Thumbs.db":      true,
		"nested/deeper/page.md": false,
	}
	for rel, want := range cases {
		assert.Equal(t, want, w.shouldIgnore(filepath.Join(root, filepath.FromSlash(rel))), rel)
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "site")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o750))
	require.NoError(t, os.MkdirAll(out, 0o750))

	var changes atomic.Int32
	w, err := NewWatcher(root, out, nil, func() { changes.Add(1) })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
		_ = w.Close()
	})

	require.NoError(t, os.WriteFile(filepath.Join(out, "index.html"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0o600))
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, changes.Load(), "output and hidden files are ignored")

	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "page.md"), []byte("x"), 0o600))
	require.Eventually(t, func() bool { return changes.Load() > 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	var changes atomic.Int32
	w, err := NewWatcher(root, filepath.Join(t.TempDir(), "out"), nil, func() { changes.Add(1) })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
		_ = w.Close()
	})

	newDir := filepath.Join(root, "added")
	require.NoError(t, os.MkdirAll(newDir, 0o750))
	require.Eventually(t, func() bool { return changes.Load() > 0 }, 5*time.Second, 10*time.Millisecond)
	// Give the watcher time to register the new directory.
	time.Sleep(50 * time.Millisecond)

	before := changes.Load()
	require.NoError(t, os.WriteFile(filepath.Join(newDir, "page.md"), []byte("x"), 0o600))
	require.Eventually(t, func() bool { return changes.Load() > before }, 5*time.Second, 10*time.Millisecond)
}

func TestNewWatcherMissingRoot(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), "", nil, func() {})
	require.Error(t, err)
}
