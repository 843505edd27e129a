package templates

import (
	"slices"
	"strings"
)

// Bindings maps template keys (without braces) to their replacement values.
type Bindings map[string]string

// ApplyReplacements replaces every occurrence of "{{key}}" in text with the bound
// value. Tokens without a binding are left untouched. Substitution is a single pass,
// so values are never re-scanned for tokens.
func ApplyReplacements(text string, bindings Bindings) string {
	if len(bindings) == 0 {
		return text
	}
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{{"+k+"}}", bindings[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
