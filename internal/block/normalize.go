package block

import (
	"strings"
	"unicode"

	"github.com/mitchellh/go-wordwrap"
)

// DefaultPlaceholder replaces the release version in a normalized block.
const DefaultPlaceholder = "x.y.z"

// NormalizeOptions determines how raw help text is turned into a block.
type NormalizeOptions struct {
	// Product is the identifier preceding the version, as in product/1.2.3.
	Product string
	// Version is the current release version.
	// An empty version leaves the text as is.
	Version string
	// Placeholder substitutes the version. Defaults to DefaultPlaceholder.
	Placeholder string
	// Wrap is the maximum line width. Zero disables wrapping.
	Wrap uint
}

// Normalize produces a version-agnostic block from raw help text.
// Surrounding blank lines are dropped, trailing whitespace is removed from every line,
// and every product/version is replaced with product/placeholder.
// The result has no trailing newline.
func Normalize(raw string, opts NormalizeOptions) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if opts.Version != "" {
		placeholder := opts.Placeholder
		if placeholder == "" {
			placeholder = DefaultPlaceholder
		}

		old := opts.Product + "/" + opts.Version
		new := opts.Product + "/" + placeholder
		raw = strings.ReplaceAll(raw, old, new)
	}

	// The width applies to the text with the placeholder
	if opts.Wrap > 0 {
		raw = wordwrap.WrapString(raw, opts.Wrap)
	}

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}

	return strings.Join(lines, "\n")
}
