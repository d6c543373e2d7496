// internal/nodeid/slug_test.go
package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "file name drops extension", input: "latest.json", expected: "latest"},
		{name: "whitespace trimmed", input: "  Node-RED Forum  ", expected: "node-red-forum"},
		{name: "punctuation runs collapse", input: "a // b ?? c", expected: "a-b-c"},
		{name: "underscores kept", input: "flows_export", expected: "flows_export"},
		{name: "leading and trailing hyphens trimmed", input: "--edge--", expected: "edge"},
		{name: "version loses last group", input: "3.1.0", expected: "3-1"},
		{name: "bare integer", input: "18", expected: "18"},
		{name: "empty falls back", input: "", expected: DefaultSlug},
		{name: "only punctuation falls back", input: "!!!", expected: DefaultSlug},
		{name: "label with spaces", input: "good first issue", expected: "good-first-issue"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func TestSlugOr(t *testing.T) {
	assert.Equal(t, "unknown", SlugOr("  ", "unknown"))
	assert.Equal(t, "hello-world", SlugOr("Hello, World", "unknown"))
}

func TestSlugify_KnownCollision(t *testing.T) {
	// Distinct versions can share a slug; identifiers built from them collide.
	assert.Equal(t, Slugify("3.1.0"), Slugify("3.1.5"))
}
