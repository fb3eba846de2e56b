package resource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// clutter is a typical user supplied ignore list.
var clutter = []string{".DS_Store", "Thumbs.db", "*.swp", "*~"}

func entries(paths ...string) []Entry {
	out := make([]Entry, 0, len(paths))
	for _, p := range paths {
		out = append(out, NewEntry(p))
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  Bucket // bucket of paths[0]
	}{
		{"svg with woff sibling", []string{"/r/x.svg", "/r/x.woff"}, Font},
		{"svg with eot sibling", []string{"/r/x.svg", "/r/x.eot"}, Font},
		{"svg with ttf sibling", []string{"/r/x.svg", "/r/x.ttf"}, Font},
		{"lone svg", []string{"/r/x.svg"}, Image},
		{"svg with sibling elsewhere", []string{"/r/x.svg", "/other/x.woff"}, Image},
		{"upper case svg", []string{"/r/x.SVG"}, Image},
		{"png", []string{"/r/x.png"}, Image},
		{"jpeg", []string{"/r/x.JPEG"}, Image},
		{"gif", []string{"/r/x.gif"}, Image},
		{"ttf", []string{"/r/x.ttf"}, Font},
		{"woff", []string{"/r/x.woff"}, Font},
		{"json", []string{"/r/x.json"}, Static},
		{"no extension", []string{"/r/README"}, Static},
		{"ignored clutter", []string{"/r/.DS_Store"}, Skip},
		{"ignored backup", []string{"/r/notes.txt~"}, Skip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(entries(tt.paths...), clutter)
			if got[0].Bucket != tt.want {
				t.Errorf("Classify(%v)[0] = %s, want %s", tt.paths, got[0].Bucket, tt.want)
			}
		})
	}
}

func TestClassify_NoIgnorePatterns(t *testing.T) {
	got := Classify(entries("/a/Thumbs.db", "/a/.DS_Store", "/a/draft.swp", "/a/notes.txt~"), nil)
	for _, a := range got {
		if a.Bucket != Static {
			t.Errorf("%s = %s, want static", a.Path, a.Bucket)
		}
	}
}

func TestClassify_KeepsOrder(t *testing.T) {
	got := Classify(entries("/a.css", "/b.png", "/c.ttf"), nil)
	want := []Bucket{Static, Image, Font}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Bucket != want[i] {
			t.Errorf("got[%d] = %s, want %s", i, got[i].Bucket, want[i])
		}
	}
}

func TestBucketDir(t *testing.T) {
	tests := []struct {
		bucket Bucket
		dir    string
	}{
		{Font, "font"},
		{Image, "img"},
		{Static, "static"},
		{Skip, ""},
	}
	for _, tt := range tests {
		if got := tt.bucket.Dir(); got != tt.dir {
			t.Errorf("%s.Dir() = %q, want %q", tt.bucket, got, tt.dir)
		}
	}
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		pattern  string
		expected bool
	}{
		{"exact basename", "/a/b/.DS_Store", ".DS_Store", true},
		{"wildcard", "/a/notes.swp", "*.swp", true},
		{"backup", "/a/style.css~", "*~", true},
		{"no match", "/a/style.css", "*.swp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesPattern(tt.path, tt.pattern); got != tt.expected {
				t.Errorf("MatchesPattern(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.expected)
			}
		})
	}
}

// writeTree creates files (relative to root) with their own name as content.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(f), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCollect(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base,
		"logo.png",
		"fonts/icons.svg",
		"fonts/icons.woff",
		"fonts/nested/deep.ttf",
	)

	got, err := Collect([]string{"logo.png", "fonts", "fonts/icons.woff"}, base)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{
		filepath.Join(base, "logo.png"),
		filepath.Join(base, "fonts", "icons.svg"),
		filepath.Join(base, "fonts", "icons.woff"),
		filepath.Join(base, "fonts", "nested", "deep.ttf"),
	}
	if len(got) != len(want) {
		t.Fatalf("Collect() returned %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Path != want[i] {
			t.Errorf("entry[%d] = %s, want %s", i, got[i].Path, want[i])
		}
	}
}

func TestCollect_Missing(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "a.css")

	got, err := Collect([]string{"a.css", "nope.png"}, base)
	if err == nil {
		t.Fatal("Collect() should report missing paths")
	}

	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("error should be *MissingError, got %T", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("error should match ErrNotFound")
	}
	if len(missing.Paths) != 1 || missing.Paths[0] != filepath.Join(base, "nope.png") {
		t.Errorf("missing = %v", missing.Paths)
	}
	if len(got) != 1 {
		t.Errorf("found entries should still be returned, got %d", len(got))
	}
}

func TestImport(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base,
		"src/icons.svg",
		"src/icons.woff",
		"src/photo.jpg",
		"src/data.json",
		"src/.DS_Store",
	)
	resDir := filepath.Join(t.TempDir(), "res")

	found, err := Collect([]string{"src"}, base)
	if err != nil {
		t.Fatal(err)
	}
	result, err := Import(Classify(found, clutter), resDir)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	for _, f := range []string{
		"font/icons.svg",
		"font/icons.woff",
		"img/photo.jpg",
		"static/data.json",
	} {
		if _, err := os.Stat(filepath.Join(resDir, f)); err != nil {
			t.Errorf("expected %s to be imported: %v", f, err)
		}
	}
	if _, err := os.Stat(filepath.Join(resDir, "static", ".DS_Store")); err == nil {
		t.Error(".DS_Store should have been skipped")
	}

	if result.Copied[Font] != 2 || result.Copied[Image] != 1 || result.Copied[Static] != 1 {
		t.Errorf("Copied = %v", result.Copied)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}
	if _, err := os.Stat(filepath.Join(base, "src", "photo.jpg")); err != nil {
		t.Error("source files must be copied, not moved")
	}
}

func TestImport_SameBasenameOverwrites(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "a/style.css", "b/style.css")
	resDir := t.TempDir()

	found, err := Collect([]string{"a", "b"}, base)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Import(Classify(found, nil), resDir); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(resDir, "static", "style.css"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "b/style.css" {
		t.Errorf("last copy should win, got %q", string(data))
	}
}

func TestImport_CopyFailureAborts(t *testing.T) {
	assignments := []Assignment{
		{Entry: NewEntry(filepath.Join(t.TempDir(), "gone.png")), Bucket: Image},
	}
	if _, err := Import(assignments, t.TempDir()); err == nil {
		t.Error("Import() should fail when a source cannot be copied")
	}
}

func TestResolveFavicon(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "icons/favicon.svg", "logo.SVG", "logo.png", "empty/.keep")

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{"svg file", "logo.SVG", filepath.Join(base, "logo.SVG"), nil},
		{"directory", "icons", filepath.Join(base, "icons", "favicon.svg"), nil},
		{"absolute", filepath.Join(base, "icons", "favicon.svg"), filepath.Join(base, "icons", "favicon.svg"), nil},
		{"png rejected", "logo.png", "", ErrNotSVG},
		{"directory without favicon", "empty", "", ErrNotFound},
		{"missing svg", "missing.svg", "", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFavicon(tt.path, base)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveFavicon(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveFavicon(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("ResolveFavicon(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
