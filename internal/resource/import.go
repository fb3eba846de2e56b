package resource

import (
	"path/filepath"

	"github.com/tacogips/sitekit/internal/debug"
	"github.com/tacogips/sitekit/internal/fsutil"
)

// ImportResult counts imported files per bucket.
type ImportResult struct {
	Copied  map[Bucket]int
	Skipped int
	// Files holds the destination paths written, in copy order.
	Files []string
}

// Import copies every classified file into resDir/<bucket dir>/<basename>.
// Source directory structure is discarded, so equal basenames overwrite each
// other. The first copy failure aborts the import.
func Import(assignments []Assignment, resDir string) (*ImportResult, error) {
	result := &ImportResult{Copied: make(map[Bucket]int)}

	for _, a := range assignments {
		if a.Bucket == Skip {
			result.Skipped++
			continue
		}

		dst := filepath.Join(resDir, a.Bucket.Dir(), a.Name)
		debug.Debug("[resource] %s -> %s (%s)", a.Path, dst, a.Bucket)
		if err := fsutil.CopyFile(a.Path, dst); err != nil {
			return result, err
		}

		result.Copied[a.Bucket]++
		result.Files = append(result.Files, dst)
	}

	return result, nil
}
