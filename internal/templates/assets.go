// Package templates provides the fixed docsify assets written into every build and
// the token substitution applied to them.
//
// Assets may contain {{key}} tokens. Recognised keys are "name" (site title),
// "highlights" (Prism script tags for the configured languages) and
// "body-version-class" (CSS classes derived from the tool version).
package templates

import (
	"embed"
	"fmt"
)

//go:embed assets/index.html assets/README.md assets/default-index.md assets/theme-overrides.css assets/workflows/static.yml
var assetFS embed.FS

// Asset names relative to the embedded assets directory.
const (
	AssetIndexHTML    = "index.html"
	AssetReadme       = "README.md"
	AssetDefaultIndex = "default-index.md"
	AssetThemeCSS     = "theme-overrides.css"
	AssetWorkflow     = "workflows/static.yml"
)

// Asset returns the raw content of an embedded asset.
func Asset(name string) ([]byte, error) {
	data, err := assetFS.ReadFile("assets/" + name)
	if err != nil {
		return nil, fmt.Errorf("embedded asset %s: %w", name, err)
	}
	return data, nil
}

// DefaultIndex returns the landing page copied into folders without one.
func DefaultIndex() []byte {
	data, err := Asset(AssetDefaultIndex)
	if err != nil {
		panic(err) // embedded at compile time
	}
	return data
}
