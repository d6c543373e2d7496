package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A profile file with a syntax error makes app.NewApp panic while loading.
	invalidHCL := `
		exporter "broken" {
			source = "github"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "profiles.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-profiles", filePath, "-input", tempDir, "-output", t.TempDir()}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	assert.Contains(t, runErr.Error(), "application startup panicked")
	assert.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_UnknownProfile(t *testing.T) {
	t.Parallel()

	args := []string{"-profile", "missing", "-input", t.TempDir(), "-output", t.TempDir()}
	err := run(context.Background(), &bytes.Buffer{}, args)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown exporter profile")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ExportsInputDirectory(t *testing.T) {
	t.Parallel()

	in, out := t.TempDir(), t.TempDir()
	listing := `{"topic_list": {"topics": [{"id": 7, "slug": "hi", "title": "Hello on linux", "like_count": 2}]}}`
	require.NoError(t, os.WriteFile(filepath.Join(in, "latest.json"), []byte(listing), 0600))

	args := []string{"-profile", "forum", "-output", out, "-log-level", "error", in}
	require.NoError(t, run(context.Background(), &bytes.Buffer{}, args))
	assert.FileExists(t, filepath.Join(out, "latest.jsonld"))
}
