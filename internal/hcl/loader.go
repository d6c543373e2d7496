package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/ldgraph/internal/config"
	"github.com/specialistvlad/ldgraph/internal/ctxlog"
	"github.com/specialistvlad/ldgraph/internal/fsutil"
)

// Extension of profile files.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	base    *config.Model
	environ func() []string
}

// NewLoader creates a loader whose blocks may overlay or extend the profiles
// of base. base is not modified.
func NewLoader(base *config.Model) *Loader {
	if base == nil {
		base = &config.Model{Profiles: map[string]*config.Profile{}}
	}
	return &Loader{base: base, environ: os.Environ}
}

// Load parses every profile file found at paths. Directories are searched
// recursively; missing paths are skipped. The returned model holds only the
// profiles declared in files, already resolved against the base.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := findHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{Profiles: make(map[string]*config.Profile)}
	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.environ())

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Exporters {
			p, err := l.resolve(model, block)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Profiles[p.Name] = p
			logger.Debug("Loaded exporter profile.", "profile", p.Name, "source", p.Source, "path", file)
		}
	}

	logger.Debug("HCL loading complete.", "profiles", len(model.Profiles))
	return model, nil
}

// resolve picks the profile a block starts from and applies the block.
func (l *Loader) resolve(loaded *config.Model, b *exporterBlock) (*config.Profile, error) {
	lookup := func(name string) (*config.Profile, bool) {
		if p, ok := loaded.Profiles[name]; ok {
			return p, true
		}
		p, ok := l.base.Profiles[name]
		return p, ok
	}

	var p *config.Profile
	switch {
	case b.Extends != nil:
		parent, ok := lookup(*b.Extends)
		if !ok {
			return nil, fmt.Errorf("exporter %q extends %w %q", b.Name, config.ErrUnknownProfile, *b.Extends)
		}
		p = parent.Clone()
	default:
		if existing, ok := lookup(b.Name); ok {
			p = existing.Clone()
		} else {
			p = &config.Profile{}
		}
	}
	b.apply(p)
	return p, nil
}

// findHCLFiles walks all given paths and returns a flat, duplicate-free list
// of profile files.
func findHCLFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) != Extension {
				return nil, fmt.Errorf("specified file is not an %s file: %s", Extension, path)
			}
			add(path)
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, Extension)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	return all, nil
}
