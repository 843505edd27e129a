package workspace

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

const (
	dirMode  fs.FileMode = 0o755
	fileMode fs.FileMode = 0o644
)

// Prepare makes dir an empty directory, removing any previous contents.
func Prepare(dir string) error {
	slog.Debug("Creating directory", logfields.Dir(dir))
	if _, err := os.Stat(dir); err == nil {
		slog.Debug("Directory exists, wiping contents", logfields.Dir(dir))
		if err := os.RemoveAll(dir); err != nil {
			return fsError(err, "failed to wipe directory", dir)
		}
	}
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fsError(err, "failed to create directory", dir)
	}
	return nil
}

// EnsureDir creates dir and any missing parents without touching existing content.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fsError(err, "failed to create directory", dir)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile returns the content of path, or nil without error when path does not exist.
func ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- paths come from walking the configured source tree
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fsError(err, "failed to read file", path)
	}
	return data, nil
}

// WriteFile writes data to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	// #nosec G306 -- generated site content is public
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return fsError(err, "failed to write file", path)
	}
	return nil
}

// CopyFile copies src to dst byte for byte, preserving the source permissions.
func CopyFile(src, dst string) error {
	// #nosec G304 -- src comes from walking the configured source tree
	srcFile, err := os.Open(src)
	if err != nil {
		return fsError(err, "failed to open source file", src)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	info, err := srcFile.Stat()
	if err != nil {
		return fsError(err, "failed to stat source file", src)
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fsError(err, "failed to create destination file", dst)
	}
	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fsError(err, "failed to copy file", filepath.Clean(src))
	}
	if err := dstFile.Close(); err != nil {
		return fsError(err, "failed to close destination file", dst)
	}
	return nil
}

func fsError(err error, msg, path string) error {
	return ferrors.WrapError(err, ferrors.CategoryFileSystem, msg).
		WithContext("path", path).
		Fatal().
		Build()
}
