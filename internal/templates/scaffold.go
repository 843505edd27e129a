package templates

import (
	"log/slog"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/workspace"
)

// scaffoldFile describes one asset written into the build root.
type scaffoldFile struct {
	asset  string
	render bool // apply bindings before writing
}

var scaffoldFiles = []scaffoldFile{
	{asset: AssetIndexHTML, render: true},
	{asset: AssetReadme, render: true},
	{asset: AssetThemeCSS, render: false},
}

// Scaffold writes the docsify shell (index.html, README.md, theme-overrides.css) into
// outputDir, which must exist. Templated assets have bindings applied.
func Scaffold(outputDir string, bindings Bindings) error {
	for _, f := range scaffoldFiles {
		data, err := Asset(f.asset)
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryTemplate, "missing scaffold asset").
				WithContext("asset", f.asset).Fatal().Build()
		}
		if f.render {
			data = []byte(ApplyReplacements(string(data), bindings))
		}
		dest := filepath.Join(outputDir, f.asset)
		if err := workspace.WriteFile(dest, data); err != nil {
			return err
		}
		slog.Debug("Wrote scaffold file", logfields.Path(dest))
	}
	return nil
}
