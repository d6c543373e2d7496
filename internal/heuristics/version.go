package heuristics

import (
	"regexp"
	"strings"
	"unicode"
)

// Span is a half-open byte range [Start, End) within a title.
type Span struct {
	Start int
	End   int
}

// Overlaps reports whether the two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return !(s.End <= other.Start || s.Start >= other.End)
}

var (
	nodeJSRegex = regexp.MustCompile(`(?i)node\.js`)
	nonVersion  = regexp.MustCompile(`[^0-9.]+`)
	// dottedOrBare accepts "18" as well as "18.19.0".
	dottedOrBare = regexp.MustCompile(`^\d+(?:\.\d+)*$`)

	// versionToken is the whole-token shape used by the anchored strategy:
	// optional "(", optional "v", at least two dot-separated groups, optional ")".
	versionToken = regexp.MustCompile(`^\(?v?(\d+\.\d+(?:\.\d+)*)\)?$`)
	// versionScan is the free-text shape used by the unanchored strategy.
	versionScan = regexp.MustCompile(`\(?\s*v?\s*(\d+\.\d+(?:\.\d+)*)\s*\)?`)

	precederTrim  = regexp.MustCompile(`^[^\w-]+|[^\w-]+$`)
	candidateDrop = regexp.MustCompile(`(?i)[^\w.()v-]+`)
	candidateTrim = regexp.MustCompile(`^[^\w(]+|[^\w)]+$`)
)

// NodeJSVersion returns the version written right after "node.js" and the
// span of the raw token it came from. The token is reduced to digits and dots
// and must then be one or more dot-separated digit groups.
func NodeJSVersion(title string) (string, Span, bool) {
	loc := nodeJSRegex.FindStringIndex(title)
	if loc == nil {
		return "", Span{}, false
	}

	after := title[loc[1]:]
	rest := strings.TrimLeftFunc(after, unicode.IsSpace)
	if rest == "" {
		return "", Span{}, false
	}
	token := rest
	if end := strings.IndexFunc(rest, unicode.IsSpace); end >= 0 {
		token = rest[:end]
	}

	cleaned := nonVersion.ReplaceAllString(token, "")
	if cleaned == "" || !dottedOrBare.MatchString(cleaned) {
		return "", Span{}, false
	}

	start := loc[1] + len(after) - len(rest)
	return cleaned, Span{Start: start, End: start + len(token)}, true
}

// Preceders is a normalized set of anchor words.
type Preceders map[string]struct{}

// NewPreceders normalizes words the same way title tokens are normalized.
func NewPreceders(words ...string) Preceders {
	p := make(Preceders, len(words))
	for _, w := range words {
		if n := normalizePreceder(w); n != "" {
			p[n] = struct{}{}
		}
	}
	return p
}

func (p Preceders) contains(token string) bool {
	_, ok := p[normalizePreceder(token)]
	return ok
}

func normalizePreceder(token string) string {
	return precederTrim.ReplaceAllString(strings.ToLower(token), "")
}

// AnchoredVersions returns every version-shaped token that immediately follows
// one of the preceders, in title order.
func AnchoredVersions(title string, preceders Preceders) []string {
	tokens := strings.Fields(title)

	var out []string
	for i := 1; i < len(tokens); i++ {
		if !preceders.contains(tokens[i-1]) {
			continue
		}
		candidate := candidateDrop.ReplaceAllString(tokens[i], "")
		candidate = candidateTrim.ReplaceAllString(candidate, "")
		m := versionToken.FindStringSubmatch(candidate)
		if m == nil {
			continue
		}
		out = append(out, m[1])
	}
	return out
}

// UnanchoredVersions returns every version-shaped substring of title whose
// match does not overlap any of the excluded spans, in title order.
func UnanchoredVersions(title string, exclude ...Span) []string {
	var out []string
	for _, m := range versionScan.FindAllStringSubmatchIndex(title, -1) {
		match := Span{Start: m[0], End: m[1]}
		if overlapsAny(match, exclude) {
			continue
		}
		out = append(out, title[m[2]:m[3]])
	}
	return out
}

func overlapsAny(s Span, spans []Span) bool {
	for _, ex := range spans {
		if s.Overlaps(ex) {
			return true
		}
	}
	return false
}
