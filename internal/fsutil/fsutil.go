// Package fsutil wraps the filesystem operations the scaffolder performs.
package fsutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/tacogips/sitekit/internal/debug"
)

// WriteFile writes content to path, creating parent directories if needed.
// Writes atomically using a temporary file and rename, so an existing file is
// either fully replaced or left intact.
func WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[fsutil] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	if err := CreateDir(filepath.Dir(path)); err != nil {
		return err
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return newError(OpWrite, path, "failed to create temporary file", err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newError(OpWrite, path, "failed to write file content", err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newError(OpWrite, path, "failed to close file", closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newError(OpWrite, path, "failed to rename temporary file", err)
	}

	return nil
}

// CreateDir creates a directory and any necessary parents with 0755 permissions.
func CreateDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return newError(OpMkdir, path, "failed to create directory", err)
	}
	return nil
}

// ReplaceDir removes path and everything below it, then recreates it empty.
func ReplaceDir(path string) error {
	if Exists(path) {
		debug.Debug("[fsutil] Replacing existing directory: %s", path)
		if err := os.RemoveAll(path); err != nil {
			return newError(OpRemove, path, "failed to remove existing directory", err)
		}
	}
	return CreateDir(path)
}

// Exists checks if a file or directory exists at the given path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CopyFile copies src to dst byte for byte, overwriting dst.
// The source permissions are kept.
func CopyFile(src, dst string) error {
	debug.Debug("[fsutil] Copying %s -> %s", src, dst)

	srcFile, err := os.Open(src)
	if err != nil {
		return newError(OpCopy, src, "failed to open source file", err)
	}
	defer func() { _ = srcFile.Close() }()

	info, err := srcFile.Stat()
	if err != nil {
		return newError(OpCopy, src, "failed to stat source file", err)
	}

	if err := CreateDir(filepath.Dir(dst)); err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return newError(OpCopy, dst, "failed to create destination file", err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return newError(OpCopy, dst, "failed to copy file content", err)
	}
	if err := dstFile.Close(); err != nil {
		return newError(OpCopy, dst, "failed to close destination file", err)
	}

	return nil
}
