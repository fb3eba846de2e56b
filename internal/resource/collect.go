package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/sitekit/internal/debug"
	"github.com/tacogips/sitekit/internal/fsutil"
)

var (
	// ErrNotFound is returned for resource or favicon paths that do not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrNotSVG is returned when the favicon is not an svg file.
	ErrNotSVG = errors.New("favicon must be an svg file")
)

// MissingError lists requested resource paths that are neither files nor directories.
type MissingError struct {
	Paths []string
}

// Error implements the error interface.
func (e *MissingError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotFound, strings.Join(e.Paths, ", "))
}

// Unwrap makes errors.Is(err, ErrNotFound) hold.
func (e *MissingError) Unwrap() error {
	return ErrNotFound
}

// Resolve makes path absolute, interpreting relative paths against baseDir.
func Resolve(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return filepath.Clean(path)
}

// Collect expands the requested paths into a flat list of file entries.
// Files are taken as given, directories are walked recursively. Every file is
// listed once even when reachable from several requested paths.
//
// Paths that do not exist are reported in a *MissingError alongside the
// entries that were found; a walk failure is returned as a plain error.
func Collect(paths []string, baseDir string) ([]Entry, error) {
	var (
		entries []Entry
		missing []string
		seen    = make(map[string]bool)
	)

	add := func(path string) {
		if seen[path] {
			return
		}
		seen[path] = true
		entries = append(entries, NewEntry(path))
	}

	for _, p := range paths {
		abs := Resolve(p, baseDir)
		switch {
		case fsutil.IsFile(abs):
			add(abs)
		case fsutil.IsDir(abs):
			err := filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.Type().IsRegular() {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("failed to walk resource directory %s: %w", abs, err)
			}
		default:
			debug.Debug("[resource] Requested path not found: %s", abs)
			missing = append(missing, abs)
		}
	}

	debug.Debug("[resource] Collected %d files from %d paths", len(entries), len(paths))

	if len(missing) > 0 {
		return entries, &MissingError{Paths: missing}
	}
	return entries, nil
}

// ResolveFavicon validates a favicon path and returns the file to import.
// A directory is taken to contain a favicon.svg.
func ResolveFavicon(path, baseDir string) (string, error) {
	abs := Resolve(path, baseDir)
	if fsutil.IsDir(abs) {
		abs = filepath.Join(abs, "favicon.svg")
	}

	if strings.ToLower(filepath.Ext(abs)) != ".svg" {
		return "", fmt.Errorf("%w: %s", ErrNotSVG, abs)
	}

	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, abs)
	}
	if !fsutil.IsFile(abs) {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrNotFound, abs)
	}

	return abs, nil
}
