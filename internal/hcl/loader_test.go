package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/ldgraph/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_OverlaysBuiltinProfile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "profiles.hcl", `
exporter "forum" {
  base_url  = "https://forum.example.org"
  preceders = ["nr"]
  compact   = false
}
`)

	model, err := NewLoader(config.NewModel()).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Profiles, 1)

	p := model.Profiles["forum"]
	require.NotNil(t, p)
	assert.Equal(t, "https://forum.example.org", p.BaseURL)
	assert.Equal(t, []string{"nr"}, p.Preceders)
	assert.False(t, p.Compact)
	// Untouched attributes keep the built-in values.
	assert.Equal(t, config.SourceDiscourse, p.Source)
	assert.Equal(t, "linear_rescale", p.RatingVariant)
	assert.Equal(t, "tags", p.TermSetKey)
}

func TestLoader_DoesNotModifyBase(t *testing.T) {
	base := config.NewModel()
	path := writeFile(t, t.TempDir(), "p.hcl", `
exporter "issues" {
  labels = ["bug"]
}
`)

	model, err := NewLoader(base).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"bug"}, model.Profiles["issues"].Labels)
	assert.Equal(t, config.GitHubLabels, base.Profiles["issues"].Labels)
}

func TestLoader_Extends(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.hcl", `
exporter "nightly" {
  extends  = "issues"
  compact  = false
}

exporter "nightly-forum" {
  extends = "nightly"
  source  = "discourse"
}
`)

	model, err := NewLoader(config.NewModel()).Load(context.Background(), path)
	require.NoError(t, err)

	nightly := model.Profiles["nightly"]
	require.NotNil(t, nightly)
	assert.Equal(t, "nightly", nightly.Name)
	assert.Equal(t, config.SourceGitHub, nightly.Source)
	assert.True(t, nightly.FilterLabels)
	assert.False(t, nightly.Compact)

	chained := model.Profiles["nightly-forum"]
	require.NotNil(t, chained)
	assert.Equal(t, config.SourceDiscourse, chained.Source)
	assert.Equal(t, "signed_clamp", chained.RatingVariant)
	assert.False(t, chained.Compact)
}

func TestLoader_ExtendsUnknown(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.hcl", `
exporter "x" {
  extends = "missing"
}
`)

	_, err := NewLoader(config.NewModel()).Load(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownProfile)
}

func TestLoader_NewProfileStartsEmpty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.hcl", `
exporter "custom" {
  source           = "github"
  version_strategy = "unanchored"
  rating           = "signed_clamp"
  term_set_key     = "labels"
  term_kind        = "label"
}
`)

	model, err := NewLoader(nil).Load(context.Background(), path)
	require.NoError(t, err)

	p := model.Profiles["custom"]
	require.NotNil(t, p)
	assert.Equal(t, &config.Profile{
		Name:            "custom",
		Source:          config.SourceGitHub,
		VersionStrategy: "unanchored",
		RatingVariant:   "signed_clamp",
		TermSetKey:      "labels",
		TermKind:        "label",
	}, p)
	assert.NoError(t, p.Validate())
}

func TestLoader_EnvVariables(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.hcl", `
exporter "flows" {
  flows_url = env.LIB_URL
  graph_id  = "urn:graph:${env.LIB_NAME}"
}
`)

	l := NewLoader(config.NewModel())
	l.environ = func() []string {
		return []string{"LIB_URL=https://flows.example.org", "LIB_NAME=lib", "BROKEN"}
	}

	model, err := l.Load(context.Background(), path)
	require.NoError(t, err)

	p := model.Profiles["flows"]
	assert.Equal(t, "https://flows.example.org", p.FlowsURL)
	assert.Equal(t, "urn:graph:lib", p.GraphID)
}

func TestLoader_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `exporter "a" { source = "github" }`)
	writeFile(t, dir, "nested/b.hcl", `exporter "b" { source = "flows" }`)
	writeFile(t, dir, "notes.txt", `not a profile`)

	model, err := NewLoader(nil).Load(context.Background(), dir, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, model.Names())
}

func TestLoader_LaterFileOverlaysEarlier(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "1.hcl", `exporter "forum" { base_url = "https://one.example.org" }`)
	second := writeFile(t, dir, "2.hcl", `exporter "forum" { compact = false }`)

	model, err := NewLoader(config.NewModel()).Load(context.Background(), first, second)
	require.NoError(t, err)

	p := model.Profiles["forum"]
	assert.Equal(t, "https://one.example.org", p.BaseURL)
	assert.False(t, p.Compact)
}

func TestLoader_Errors(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name string
		path string
		want string
	}{
		{
			name: "syntax error",
			path: writeFile(t, dir, "bad.hcl", `exporter "x" {`),
			want: "failed to parse HCL file",
		},
		{
			name: "unknown attribute",
			path: writeFile(t, dir, "attr.hcl", `exporter "x" { colour = "red" }`),
			want: "failed to decode HCL file",
		},
		{
			name: "unknown top-level block",
			path: writeFile(t, dir, "block.hcl", `exporters "x" {}`),
			want: "failed to decode HCL file",
		},
		{
			name: "unknown top-level attribute",
			path: writeFile(t, dir, "top.hcl", `profile = "forum"`),
			want: "failed to decode HCL file",
		},
		{
			name: "unset variable",
			path: writeFile(t, dir, "env.hcl", `exporter "x" { base_url = env.NOPE_NOT_SET_ANYWHERE }`),
			want: "failed to decode HCL file",
		},
		{
			name: "wrong extension",
			path: writeFile(t, dir, "profile.txt", `exporter "x" {}`),
			want: "is not an .hcl file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLoader(nil)
			l.environ = func() []string { return nil }
			_, err := l.Load(context.Background(), tc.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
