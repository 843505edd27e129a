package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/build"
	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/templates"
	"git.home.luguber.info/inful/docsite/internal/testutil"
)

// run parses args and executes the selected command, returning its stdout.
func run(t *testing.T, args ...string) (string, *CLI, error) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Name("docsite"), Vars("test"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	if err != nil {
		return "", cli, err
	}
	var out bytes.Buffer
	err = ctx.Run(&Global{Out: &out}, cli)
	return out.String(), cli, err
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	testutil.WriteTree(t, filepath.Join(dir, "docs-src"), map[string]string{
		"a.md":      "# A",
		"b.ini":     "k=v",
		"sub/d.xml": "<d/>",
	})

	out, _, err := run(t, "build", "--source", "docs-src", "--output", "site", "--name", "Handbook")
	require.NoError(t, err)
	assert.Contains(t, out, "Built Handbook into "+filepath.Join(dir, "site"))
	assert.Contains(t, out, "1 copied, 2 wrapped, 0 skipped, 1 index pages generated")

	assert.True(t, build.HasBeenBuilt(filepath.Join(dir, "site")))
	assert.FileExists(t, filepath.Join(dir, "site", "b.ini.md"))
	assert.FileExists(t, filepath.Join(dir, "site", site.SidebarFile))
}

func TestBuildCommandUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	testutil.WriteTree(t, dir, map[string]string{
		config.DefaultConfigFile: "name: From File\nsource: src\noutput: public\n",
		"src/page.md":            "# Page",
	})

	out, _, err := run(t, "build")
	require.NoError(t, err)
	assert.Contains(t, out, "Built From File into "+filepath.Join(dir, "public"))
}

func TestBuildCommandExplicitConfigMustExist(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := run(t, "build", "--config", "missing.yaml")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestBuildCommandRejectsOutputContainingSource(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "site", "src"), 0o750))

	_, _, err := run(t, "build", "--source", "site/src", "--output", "site")
	require.Error(t, err)
	assert.Equal(t, 2, ferrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, _, err := run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized successfully")
	assert.FileExists(t, filepath.Join(dir, config.DefaultConfigFile))

	_, _, err = run(t, "init")
	require.Error(t, err, "existing file is not overwritten")

	_, _, err = run(t, "init", "--force")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.DefaultConfigFile))
	require.NoError(t, err)
	assert.Equal(t, "My Documentation", cfg.Name)
}

func TestSidebarCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	testutil.WriteTree(t, filepath.Join(dir, "src"), map[string]string{"a.md": "# A"})

	_, _, err := run(t, "sidebar", "--output", "site")
	require.Error(t, err)
	assert.True(t, errors.Is(err, build.ErrNotBuilt))

	_, _, err = run(t, "build", "--source", "src", "--output", "site")
	require.NoError(t, err)
	testutil.WriteTree(t, filepath.Join(dir, "site"), map[string]string{"extra.md": "# Extra"})

	out, _, err := run(t, "sidebar", "--output", "site")
	require.NoError(t, err)
	assert.Contains(t, out, "Sidebar written with 3 entries")

	// #nosec G304 -- test fixture
	data, err := os.ReadFile(filepath.Join(dir, "site", site.SidebarFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "- [Extra](extra.md)")
}

func TestWorkflowCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, _, err := run(t, "workflow")
	require.NoError(t, err)
	path := filepath.Join(dir, templates.WorkflowPath)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, _, err = run(t, "workflow")
	require.ErrorIs(t, err, templates.ErrWorkflowExists)

	_, _, err = run(t, "workflow", "--force")
	require.NoError(t, err)
}

func TestSiteFlagsOverride(t *testing.T) {
	cfg := &config.Config{Name: "Kept", Skip: []string{"a"}}
	SiteFlags{Output: "out", Lang: []string{"go"}}.override(true)(cfg)

	assert.Equal(t, "Kept", cfg.Name)
	assert.Equal(t, "out", cfg.Output)
	assert.Equal(t, []string{"a"}, cfg.Skip)
	assert.Equal(t, []string{"go"}, cfg.Languages)
	assert.True(t, cfg.Verbose)
}

func TestVerboseFlagParses(t *testing.T) {
	t.Chdir(t.TempDir())
	_, cli, err := run(t, "-v", "init")
	require.NoError(t, err)
	assert.True(t, cli.Verbose)
}
