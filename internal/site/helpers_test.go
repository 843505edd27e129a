package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// testConfig returns a default configuration rooted in a temp directory.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := &config.Config{
		Source:  filepath.Join(base, "src"),
		Output:  filepath.Join(base, "_build"),
		Version: "unknown",
	}
	require.NoError(t, cfg.Finalize())
	require.NoError(t, os.MkdirAll(cfg.Source, 0o750))
	require.NoError(t, os.MkdirAll(cfg.Output, 0o750))
	return cfg
}
