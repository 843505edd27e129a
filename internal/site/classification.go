package site

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// ForcePrefix marks a file that must be wrapped as a code document even when its
// extension is not in the classification table. It is stripped from titles.
const ForcePrefix = "~"

// Classifier answers which Markdown language tag a file extension maps to.
type Classifier struct {
	tags map[string]string
}

// NewClassifier builds a lookup from an ordered rule table. Later rules for the
// same extension win.
func NewClassifier(rules []config.ClassificationRule) *Classifier {
	tags := make(map[string]string, len(rules))
	for _, r := range rules {
		tags[strings.ToLower(r.Extension)] = r.Tag
	}
	return &Classifier{tags: tags}
}

// LanguageTag returns the tag for ext (without the leading dot, any case) and
// whether the extension is supported.
func (c *Classifier) LanguageTag(ext string) (string, bool) {
	tag, ok := c.tags[strings.ToLower(ext)]
	return tag, ok
}

// Supports reports whether name should be wrapped: its extension is in the table or
// it carries the force-include prefix.
func (c *Classifier) Supports(name string) bool {
	if strings.HasPrefix(name, ForcePrefix) {
		return true
	}
	_, ok := c.LanguageTag(Extension(name))
	return ok
}

// TagFor returns the fence tag for name, empty when the extension is unknown.
func (c *Classifier) TagFor(name string) string {
	tag, _ := c.LanguageTag(Extension(name))
	return tag
}

// Extension returns the lowercased extension of name without the dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
