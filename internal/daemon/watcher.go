package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// Watcher reports changes below a source root that can affect the build.
type Watcher struct {
	root     string
	exclude  string
	skip     map[string]struct{}
	fsw      *fsnotify.Watcher
	onChange func()
}

// NewWatcher watches root recursively and calls onChange for every relevant event.
// Events under exclude (the output directory) and names in skip are ignored.
func NewWatcher(root, exclude string, skip []string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	w := &Watcher{
		root:     filepath.Clean(root),
		exclude:  filepath.Clean(exclude),
		skip:     make(map[string]struct{}, len(skip)),
		fsw:      fsw,
		onChange: onChange,
	}
	for _, s := range skip {
		w.skip[s] = struct{}{}
	}
	if err := w.addDirsRecursive(w.root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run processes filesystem events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if w.shouldIgnore(ev.Name) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = w.addDirsRecursive(ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	w.onChange()
}

func (w *Watcher) addDirsRecursive(root string) error {
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != w.root && w.shouldIgnore(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			slog.Warn("Watch add failed", logfields.Dir(path), logfields.Error(err))
		}
		return nil
	})
}

// shouldIgnore reports whether a change to path cannot affect the build: hidden and
// skipped names, editor swap files, and anything inside the output directory.
func (w *Watcher) shouldIgnore(path string) bool {
	clean := filepath.Clean(path)
	if clean == w.exclude || strings.HasPrefix(clean, w.exclude+string(filepath.Separator)) {
		return true
	}
	base := filepath.Base(clean)
	if _, ok := w.skip[base]; ok {
		return true
	}
	return isEditorArtifact(base)
}

func isEditorArtifact(base string) bool {
	switch {
	case strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_"):
		return true
	case strings.HasSuffix(base, "~") && !strings.HasPrefix(base, "~"):
		return true
	case strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swx"):
		return true
	case strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#"):
		return true
	case base == "Thumbs.db":
		return true
	}
	return false
}
