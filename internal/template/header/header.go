// Package header expands section-header markers into fixed-width banner comments.
//
// Three marker kinds are recognised:
//
//	$ph{LABEL}  primary script banner (three lines, title upper-cased)
//	$sh{LABEL}  secondary script banner (one line)
//	$wh{LABEL}  markup banner (one HTML comment line)
//
// Script banners are sized to ScriptWidth and filled with '#'; markup banners
// are sized to MarkupWidth and filled with '*'.
package header

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultScriptWidth is the target line width for script-style files.
	DefaultScriptWidth = 80
	// DefaultMarkupWidth is the target line width for markup files.
	DefaultMarkupWidth = 120
)

// Kind identifies a marker kind.
type Kind int

const (
	// Primary is the $ph{...} marker.
	Primary Kind = iota
	// Secondary is the $sh{...} marker.
	Secondary
	// Markup is the $wh{...} marker.
	Markup
)

// String returns the marker prefix for the kind.
func (k Kind) String() string {
	switch k {
	case Primary:
		return "ph"
	case Secondary:
		return "sh"
	case Markup:
		return "wh"
	default:
		return "unknown"
	}
}

var patterns = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{Primary, regexp.MustCompile(`\$ph\{(.*?)\}`)},
	{Secondary, regexp.MustCompile(`\$sh\{(.*?)\}`)},
	{Markup, regexp.MustCompile(`\$wh\{(.*?)\}`)},
}

// Rewriter replaces header markers with banners.
type Rewriter struct {
	// ScriptWidth is the banner width for primary and secondary markers.
	ScriptWidth int
	// MarkupWidth is the banner width for markup markers.
	MarkupWidth int
}

// NewRewriter creates a Rewriter with the given widths.
// Non-positive widths fall back to the defaults.
func NewRewriter(scriptWidth, markupWidth int) *Rewriter {
	if scriptWidth <= 0 {
		scriptWidth = DefaultScriptWidth
	}
	if markupWidth <= 0 {
		markupWidth = DefaultMarkupWidth
	}
	return &Rewriter{ScriptWidth: scriptWidth, MarkupWidth: markupWidth}
}

// Rewrite returns text with every marker replaced by its banner.
// Text that contains no markers is returned unchanged.
func (r *Rewriter) Rewrite(text string) string {
	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			text = strings.ReplaceAll(text, m[0], r.Banner(p.kind, m[1]))
		}
	}
	return text
}

// Banner renders the banner for a single marker.
// If the label is wider than the target the fill is simply empty.
func (r *Rewriter) Banner(kind Kind, label string) string {
	n := utf8.RuneCountInString(label)
	switch kind {
	case Primary:
		rule := strings.Repeat("#", r.ScriptWidth)
		return "\n\n" + rule + "\n##### " + strings.ToUpper(label) + " " +
			fill('#', r.ScriptWidth-n-7) + "\n" + rule + "\n"
	case Secondary:
		return "\n### " + label + " " + fill('#', r.ScriptWidth-n-5)
	case Markup:
		return "<!-- ***** " + label + " " + fill('*', r.MarkupWidth-n-16) + " -->"
	default:
		return label
	}
}

func fill(c byte, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(c), n)
}
