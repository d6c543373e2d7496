// internal/nodeid/slug.go
package nodeid

import (
	"regexp"
	"strings"
)

// DefaultSlug is returned by Slugify when nothing usable is left of the input.
const DefaultSlug = "graph"

var (
	extensionRegex = regexp.MustCompile(`\.[^.]+$`)
	separatorRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
	hyphenRunRegex = regexp.MustCompile(`-{2,}`)
)

// Slugify turns arbitrary text into a lowercase identifier segment. It falls
// back to DefaultSlug when the input has no usable characters.
func Slugify(text string) string {
	return SlugOr(text, DefaultSlug)
}

// SlugOr is Slugify with a caller-chosen fallback for empty results.
func SlugOr(text, fallback string) string {
	s := strings.TrimSpace(text)
	s = extensionRegex.ReplaceAllString(s, "")
	s = separatorRegex.ReplaceAllString(s, "-")
	s = hyphenRunRegex.ReplaceAllString(s, "-")
	s = strings.ToLower(strings.Trim(s, "-"))
	if s == "" {
		return fallback
	}
	return s
}
