package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/ldgraph/internal/config"
	"github.com/specialistvlad/ldgraph/internal/ctxlog"
)

// ValidateProfile checks the profile's own constraints and that a module
// handles its source.
func (r *Registry) ValidateProfile(ctx context.Context, p *config.Profile) error {
	logger := ctxlog.FromContext(ctx)

	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := r.Sources[p.Source]; !ok {
		return fmt.Errorf("profile %q: %w %q (registered: %s)",
			p.Name, config.ErrUnknownSource, p.Source, strings.Join(r.SourceNames(), ", "))
	}

	logger.Debug("Profile validated.", "profile", p.Name, "source", p.Source)
	return nil
}

// ValidateRegistry checks that every registered handler is usable.
func (r *Registry) ValidateRegistry() error {
	var errs []string
	for _, name := range r.SourceNames() {
		if r.Sources[name] == nil || r.Sources[name].Export == nil {
			errs = append(errs, fmt.Sprintf("source '%s' has no export function", name))
		}
	}
	for _, name := range r.SinkNames() {
		if r.Sinks[name] == nil || r.Sinks[name].New == nil {
			errs = append(errs, fmt.Sprintf("sink '%s' has no factory", name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
