package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/workspace"
)

// Action is what the materializer does with one source entry.
type Action int

const (
	ActionSkip    Action = iota // Leave the entry out of the build
	ActionDescend               // Create the directory and recurse
	ActionCopy                  // Copy the file byte for byte
	ActionWrap                  // Wrap the file into <name>.md
)

func (a Action) String() string {
	switch a {
	case ActionDescend:
		return "descend"
	case ActionCopy:
		return "copy"
	case ActionWrap:
		return "wrap"
	default:
		return "skip"
	}
}

// Skip reasons reported in Decision.Reason.
const (
	ReasonHidden      = "hidden"
	ReasonExcluded    = "excluded"
	ReasonOutput      = "output directory"
	ReasonSymlinkDir  = "symlinked directory"
	ReasonUnsupported = "unsupported file type"
)

// Decision is the classification of a single source entry.
type Decision struct {
	Action Action
	Reason string
}

// Stats counts what a materialization produced.
type Stats struct {
	Directories int
	Copied      int
	Wrapped     int
	Skipped     int
}

// Materializer mirrors a source tree into a build directory.
type Materializer struct {
	skip       map[string]struct{}
	classifier *Classifier
}

// NewMaterializer creates a materializer for cfg's skip list and classification table.
func NewMaterializer(cfg *config.Config) *Materializer {
	skip := make(map[string]struct{}, len(cfg.Skip))
	for _, s := range cfg.Skip {
		skip[s] = struct{}{}
	}
	return &Materializer{
		skip:       skip,
		classifier: NewClassifier(cfg.ClassificationRules()),
	}
}

// Classify decides what to do with an entry named name. Rules apply in order:
// hidden names, the skip list, directories, Markdown/PNG files, wrappable files.
func (m *Materializer) Classify(name string, isDir bool) Decision {
	switch {
	case strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_"):
		return Decision{Action: ActionSkip, Reason: ReasonHidden}
	case m.isSkipped(name):
		return Decision{Action: ActionSkip, Reason: ReasonExcluded}
	case isDir:
		return Decision{Action: ActionDescend}
	case strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".png"):
		return Decision{Action: ActionCopy}
	case m.classifier.Supports(name):
		return Decision{Action: ActionWrap}
	default:
		return Decision{Action: ActionSkip, Reason: ReasonUnsupported}
	}
}

func (m *Materializer) isSkipped(name string) bool {
	_, ok := m.skip[name]
	return ok
}

// Materialize recursively mirrors sourceDir into destDir, which must already exist
// and be empty. Any read, write or copy failure aborts the walk; files written so
// far are left in place.
func (m *Materializer) Materialize(sourceDir, destDir string) (Stats, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return Stats{}, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot access source directory").
			WithContext("path", sourceDir).Fatal().Build()
	}
	if !info.IsDir() {
		return Stats{}, fmt.Errorf("%w: %s", ErrSourceNotDirectory, sourceDir)
	}

	w := &walk{m: m, exclude: cleanAbs(destDir)}
	if err := w.copyDirectory(sourceDir, destDir); err != nil {
		return w.stats, err
	}
	return w.stats, nil
}

// walk carries per-run state so a Materializer can be reused.
type walk struct {
	m       *Materializer
	exclude string
	stats   Stats
}

func (w *walk) copyDirectory(source, dest string) error {
	slog.Debug("Copying files", logfields.Path(source), logfields.Dest(dest))

	entries, err := os.ReadDir(source)
	if err != nil {
		return ferrors.WrapError(fmt.Errorf("%w: %w", ErrWalkFailed, err), ferrors.CategoryFileSystem, "failed to list directory").
			WithContext("path", source).Fatal().Build()
	}

	for _, entry := range entries {
		name := entry.Name()
		srcPath := filepath.Join(source, name)
		dstPath := filepath.Join(dest, name)

		decision := w.decide(entry, srcPath)
		switch decision.Action {
		case ActionSkip:
			w.stats.Skipped++
			slog.Debug("Skipping entry", logfields.File(name), logfields.Reason(decision.Reason))
		case ActionDescend:
			slog.Debug("Recursive copy of directory", logfields.Dir(name))
			if err := workspace.EnsureDir(dstPath); err != nil {
				return err
			}
			w.stats.Directories++
			if err := w.copyDirectory(srcPath, dstPath); err != nil {
				return err
			}
		case ActionCopy:
			slog.Debug("Copying file", logfields.File(name))
			if err := workspace.CopyFile(srcPath, dstPath); err != nil {
				return err
			}
			w.stats.Copied++
		case ActionWrap:
			if err := w.wrap(srcPath, dstPath+WrappedSuffix); err != nil {
				return err
			}
			w.stats.Wrapped++
		}
	}
	return nil
}

// decide classifies entry, resolving symlinks and guarding the output directory.
func (w *walk) decide(entry os.DirEntry, srcPath string) Decision {
	isDir := entry.IsDir()
	if entry.Type()&os.ModeSymlink != 0 {
		if target, err := os.Stat(srcPath); err == nil && target.IsDir() {
			if d := w.m.Classify(entry.Name(), true); d.Action == ActionSkip {
				return d
			}
			return Decision{Action: ActionSkip, Reason: ReasonSymlinkDir}
		}
	}
	if isDir && cleanAbs(srcPath) == w.exclude {
		return Decision{Action: ActionSkip, Reason: ReasonOutput}
	}
	return w.m.Classify(entry.Name(), isDir)
}

func (w *walk) wrap(srcPath, dstPath string) error {
	content, err := TransformToMarkdown(srcPath, w.m.classifier)
	if err != nil {
		return err
	}
	slog.Debug("Wrapping file as markdown",
		logfields.File(filepath.Base(srcPath)),
		logfields.Language(w.m.classifier.TagFor(filepath.Base(srcPath))))
	return workspace.WriteFile(dstPath, content)
}

func cleanAbs(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
