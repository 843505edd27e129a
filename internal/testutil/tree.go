// Package testutil contains filesystem fixtures and assertions shared by tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testDirPermissions  = 0o750
	testFilePermissions = 0o600
)

// WriteTree creates files under root. Keys are slash-separated relative paths;
// parent directories are created as needed.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), testDirPermissions))
		require.NoError(t, os.WriteFile(path, []byte(content), testFilePermissions))
	}
}

// ReadTree returns every regular file under root keyed by slash-separated relative path.
func ReadTree(t testing.TB, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		// #nosec G304 -- test fixture
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}

// ReadFile returns the content of path, failing the test when it cannot be read.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	// #nosec G304 -- test fixture
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
