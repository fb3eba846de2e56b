// Package resource discovers user supplied resource files and sorts them into
// the font, image and static buckets of a project.
package resource

import (
	"path/filepath"
	"slices"
	"strings"
)

// Bucket is the destination category of a resource file.
type Bucket int

const (
	// Skip marks files that are not imported at all.
	Skip Bucket = iota
	// Font is res/font.
	Font
	// Image is res/img.
	Image
	// Static is res/static, the catch-all.
	Static
)

// String returns the bucket name.
func (b Bucket) String() string {
	switch b {
	case Font:
		return "font"
	case Image:
		return "image"
	case Static:
		return "static"
	default:
		return "skip"
	}
}

// Dir returns the directory under res/ that the bucket copies into.
// Skip has no directory.
func (b Bucket) Dir() string {
	switch b {
	case Font:
		return "font"
	case Image:
		return "img"
	case Static:
		return "static"
	default:
		return ""
	}
}

var (
	imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}
	fontExtensions  = []string{".eot", ".ttf", ".woff"}
)

// Entry is a discovered resource file.
type Entry struct {
	// Path is the file path as discovered.
	Path string
	// Name is the basename.
	Name string
	// Ext is the lower-cased extension including the dot.
	Ext string
}

// NewEntry builds an Entry for path.
func NewEntry(path string) Entry {
	return Entry{
		Path: path,
		Name: filepath.Base(path),
		Ext:  strings.ToLower(filepath.Ext(path)),
	}
}

// Assignment is an entry with its classified bucket.
type Assignment struct {
	Entry
	Bucket Bucket
}

// Classify assigns every entry to a bucket. The result keeps the input order.
func Classify(entries []Entry, ignorePatterns []string) []Assignment {
	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[e.Path] = true
	}

	out := make([]Assignment, 0, len(entries))
	for _, e := range entries {
		b := Skip
		if !ShouldIgnore(e.Path, ignorePatterns) {
			b = classify(e, known)
		}
		out = append(out, Assignment{Entry: e, Bucket: b})
	}
	return out
}

// classify applies the extension rules to a single entry.
// An svg with a same-path .eot/.ttf/.woff sibling is a font source.
func classify(e Entry, known map[string]bool) Bucket {
	switch {
	case e.Ext == ".svg":
		stem := strings.TrimSuffix(e.Path, filepath.Ext(e.Path))
		for _, ext := range fontExtensions {
			if known[stem+ext] {
				return Font
			}
		}
		return Image
	case slices.Contains(imageExtensions, e.Ext):
		return Image
	case slices.Contains(fontExtensions, e.Ext):
		return Font
	default:
		return Static
	}
}
