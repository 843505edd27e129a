package templates

import (
	"strings"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/version"
)

// Template keys understood by the docsify assets.
const (
	KeyName             = "name"
	KeyHighlights       = "highlights"
	KeyBodyVersionClass = "body-version-class"
)

const prismComponentURL = "//cdn.jsdelivr.net/npm/prismjs@1/components/prism-"

// NewBindings derives the template bindings for cfg.
func NewBindings(cfg *config.Config) Bindings {
	return Bindings{
		KeyName:             cfg.Name,
		KeyHighlights:       Highlights(cfg.Languages),
		KeyBodyVersionClass: BodyVersionClass(cfg.Version),
	}
}

// Highlights renders one Prism component script tag per language, concatenated.
func Highlights(languages []string) string {
	var b strings.Builder
	for _, l := range languages {
		b.WriteString(`<script src="`)
		b.WriteString(prismComponentURL)
		b.WriteString(l)
		b.WriteString(`.min.js"></script>`)
	}
	return b.String()
}

// BodyVersionClass renders " v-<x_y_z>" for every UI breakpoint v has reached.
// Each class carries its own leading space so the value can follow an existing class.
func BodyVersionClass(v string) string {
	var b strings.Builder
	for _, bp := range version.BodyClasses(v) {
		b.WriteString(" v-")
		b.WriteString(strings.ReplaceAll(bp, ".", "_"))
	}
	return b.String()
}
