// Package fill implements dollar-placeholder templates with safe substitution.
//
// Placeholders take the form $name or ${name}. "$$" is an escaped dollar sign.
// Any placeholder whose name is not in the supplied values, and any "$" that
// does not start a valid placeholder, is left in the output untouched.
package fill

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tacogips/sitekit/internal/debug"
	"github.com/tacogips/sitekit/internal/fsutil"
	"github.com/tacogips/sitekit/internal/template/header"
)

var placeholderPattern = regexp.MustCompile(`\$(?:(\$)|([_a-zA-Z][_a-zA-Z0-9]*)|\{([_a-zA-Z][_a-zA-Z0-9]*)\})`)

// Values maps placeholder names to replacement values.
// A value may be a string, a []Block, or anything printable with fmt.
type Values map[string]any

// Block pairs a sub-template with its own values.
// A []Block value renders each block and joins the results with newlines.
type Block struct {
	Template *Template
	Values   Values
}

// Template is an immutable, header-expanded template text.
type Template struct {
	text string
}

// New creates a Template from a literal, expanding header markers with rw.
// A nil rw leaves markers in place.
func New(text string, rw *header.Rewriter) *Template {
	if rw != nil {
		text = rw.Rewrite(text)
	}
	return &Template{text: text}
}

// Text returns the header-expanded template text before filling.
func (t *Template) Text() string {
	return t.text
}

// Fill substitutes values into the template.
func (t *Template) Fill(values Values) string {
	rendered := make(map[string]string, len(values))
	for key, value := range values {
		rendered[key] = render(value)
	}

	return placeholderPattern.ReplaceAllStringFunc(t.text, func(match string) string {
		if match == "$$" {
			return "$"
		}
		name := strings.Trim(match[1:], "{}")
		if v, ok := rendered[name]; ok {
			return v
		}
		return match
	})
}

// Populate fills the template and writes the result to path, replacing any existing file.
func (t *Template) Populate(path string, values Values) error {
	content := t.Fill(values)
	if left := Placeholders(content); len(left) > 0 {
		debug.Debug("[fill] %s keeps unresolved placeholders: %v", path, left)
	}
	return fsutil.WriteFile(path, []byte(content), 0644)
}

// Placeholders returns the names of placeholders remaining in text, in order of first appearance.
func Placeholders(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		name := m[2]
		if name == "" {
			name = m[3]
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func render(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []Block:
		parts := make([]string, 0, len(v))
		for _, b := range v {
			parts = append(parts, b.Template.Fill(b.Values))
		}
		return strings.Join(parts, "\n")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
