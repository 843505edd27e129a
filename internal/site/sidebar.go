package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/templates"
	"git.home.luguber.info/inful/docsite/internal/version"
	"git.home.luguber.info/inful/docsite/internal/workspace"
)

// SidebarFile is the navigation file docsify loads from the build root.
const SidebarFile = "_sidebar.md"

// FolderGlyph prefixes folders whose landing page was generated.
const FolderGlyph = "📁 "

// LastUpdatedLayout formats the footer timestamp.
const LastUpdatedLayout = "2006-01-02 15:04:05"

// SidebarEntry is one line of the navigation list.
type SidebarEntry struct {
	DisplayName   string
	TargetPath    string // slash-separated link relative to the build root; empty when unlinked
	IndentLevel   int
	IsLandingPage bool
}

// String renders the entry as a docsify sidebar list item.
func (e SidebarEntry) String() string {
	indent := strings.Repeat("  ", e.IndentLevel)
	if e.TargetPath == "" {
		return indent + "- " + FolderGlyph + e.DisplayName
	}
	return indent + "- [" + e.DisplayName + "](" + e.TargetPath + ")"
}

// Synthesizer derives the sidebar from a materialized build directory.
type Synthesizer struct {
	index        string
	reserved     []string
	toolVersion  string
	bindings     templates.Bindings
	defaultIndex []byte
	now          func() time.Time

	synthesized int
}

// NewSynthesizer creates a sidebar synthesizer for cfg.
func NewSynthesizer(cfg *config.Config, bindings templates.Bindings) *Synthesizer {
	return &Synthesizer{
		index:        cfg.Sidebar.Index,
		reserved:     cfg.Sidebar.ReservedFolders,
		toolVersion:  cfg.Version,
		bindings:     bindings,
		defaultIndex: templates.DefaultIndex(),
		now:          time.Now,
	}
}

// WithClock replaces the footer time source.
func (s *Synthesizer) WithClock(now func() time.Time) *Synthesizer {
	s.now = now
	return s
}

// Synthesized returns how many default landing pages were created so far.
func (s *Synthesizer) Synthesized() int {
	return s.synthesized
}

// BuildSidebar walks buildRoot and returns the ordered sidebar entries. Folders
// without a landing page get a copy of the default index as a side effect.
//
// The first entry always links the root landing page as "Overview". Root-level
// Markdown pages follow as links, and every non-reserved root folder contributes
// its folder block, in directory order. Other root files are not linked.
func (s *Synthesizer) BuildSidebar(buildRoot string) ([]SidebarEntry, error) {
	entries := []SidebarEntry{{
		DisplayName:   "Overview",
		TargetPath:    strings.TrimSuffix(s.index, ".md"),
		IsLandingPage: true,
	}}

	dirEntries, err := readDir(buildRoot)
	if err != nil {
		return nil, err
	}
	for _, de := range dirEntries {
		name := de.Name()
		switch {
		case isHiddenName(name):
			continue
		case de.IsDir():
			if slices.Contains(s.reserved, name) {
				continue
			}
			block, err := s.FolderSidebar(buildRoot, filepath.Join(buildRoot, name), 0)
			if err != nil {
				return nil, err
			}
			entries = append(entries, block...)
		case strings.HasSuffix(name, ".md") && name != s.index:
			entries = append(entries, SidebarEntry{DisplayName: DisplayName(name), TargetPath: name})
		}
	}
	return entries, nil
}

// FolderSidebar returns the block for dir: the folder's own landing line at depth,
// then its contents at depth+1 in directory order, with each subfolder's block
// spliced in where the subfolder appears.
//
// If dir has no landing page, the default index is copied in and the folder line
// is emitted unlinked.
func (s *Synthesizer) FolderSidebar(buildRoot, dir string, depth int) ([]SidebarEntry, error) {
	rel, err := filepath.Rel(buildRoot, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWalkFailed, err)
	}
	rel = filepath.ToSlash(rel)

	folder := SidebarEntry{
		DisplayName:   DisplayName(filepath.Base(dir)),
		IndentLevel:   depth,
		IsLandingPage: true,
	}
	indexPath := filepath.Join(dir, s.index)
	if workspace.Exists(indexPath) {
		folder.TargetPath = rel + "/" + s.index
	} else {
		if err := workspace.WriteFile(indexPath, s.defaultIndex); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIndexSynthesisFailed, err)
		}
		s.synthesized++
		slog.Debug("Synthesized default landing page", logfields.Dir(rel))
	}
	entries := []SidebarEntry{folder}

	dirEntries, err := readDir(dir)
	if err != nil {
		return nil, err
	}
	for _, de := range dirEntries {
		name := de.Name()
		switch {
		case isHiddenName(name):
			continue
		case de.IsDir():
			nested, err := s.FolderSidebar(buildRoot, filepath.Join(dir, name), depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, nested...)
		case !strings.EqualFold(name, s.index):
			entries = append(entries, SidebarEntry{
				DisplayName: DisplayName(name),
				TargetPath:  rel + "/" + name,
				IndentLevel: depth + 1,
			})
		}
	}
	return entries, nil
}

// Render joins the entry lines with the version footer and applies the template
// bindings.
func (s *Synthesizer) Render(entries []SidebarEntry) string {
	lines := make([]string, 0, len(entries)+7)
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	lines = append(lines, "", "")
	lines = append(lines, s.footer()...)
	return templates.ApplyReplacements(strings.Join(lines, "\n"), s.bindings)
}

func (s *Synthesizer) footer() []string {
	lines := []string{"<div id='sidebar-version'>"}
	if version.IsKnown(s.toolVersion) {
		lines = append(lines, "Built with docsite version "+s.toolVersion+"<br/>")
	}
	lines = append(lines,
		"Last Updated: "+s.now().Local().Format(LastUpdatedLayout),
		"</div>")
	return lines
}

// Write builds the sidebar for buildRoot and persists it as _sidebar.md.
func (s *Synthesizer) Write(buildRoot string) ([]SidebarEntry, error) {
	slog.Info("Building sidebar...")
	entries, err := s.BuildSidebar(buildRoot)
	if err != nil {
		return nil, err
	}
	if err := workspace.WriteFile(filepath.Join(buildRoot, SidebarFile), []byte(s.Render(entries))); err != nil {
		return nil, err
	}
	return entries, nil
}

func readDir(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ferrors.WrapError(fmt.Errorf("%w: %w", ErrWalkFailed, err), ferrors.CategoryFileSystem, "failed to list directory").
			WithContext("path", dir).Fatal().Build()
	}
	return entries, nil
}

func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
