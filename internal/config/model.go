package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Source names understood by the registered exporters.
const (
	SourceDiscourse = "discourse"
	SourceGitHub    = "github"
	SourceFlows     = "flows"
)

var (
	// ErrUnknownProfile is returned when a profile name is not defined.
	ErrUnknownProfile = errors.New("unknown exporter profile")
	// ErrUnknownSource is returned when a profile names a source no module handles.
	ErrUnknownSource = errors.New("unknown source")
)

// Profile configures one exporter. Fields a given source does not use are
// ignored by it.
type Profile struct {
	Name   string `validate:"required"`
	Source string `validate:"required"`

	// VersionStrategy is "anchored" or "unanchored". Preceders are the anchor
	// words of the anchored strategy.
	VersionStrategy string   `validate:"required_unless=Source flows,omitempty,oneof=anchored unanchored"`
	Preceders       []string `validate:"required_if=VersionStrategy anchored,dive,required"`

	// RatingVariant is "linear_rescale" or "signed_clamp".
	RatingVariant string `validate:"required_unless=Source flows,omitempty,oneof=linear_rescale signed_clamp"`

	// FilterLabels restricts the vocabulary to Labels.
	FilterLabels bool
	Labels       []string `validate:"required_if=FilterLabels true,dive,required"`

	TermSetName string
	TermSetKey  string `validate:"required_unless=Source flows"`
	TermKind    string `validate:"required_unless=Source flows"`

	// BaseURL is the site that record URLs are built from, when the source
	// needs one.
	BaseURL string `validate:"omitempty,url"`
	// FlowsURL is the landing page recorded on flow-library entries.
	FlowsURL string `validate:"required_if=Source flows,omitempty,url"`
	// GraphID overrides the graph identifier derived from the batch name.
	GraphID string

	// Compact enables identifier compaction with the runtime's list.
	Compact bool
}

// Clone returns a deep copy.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Preceders = slices.Clone(p.Preceders)
	c.Labels = slices.Clone(p.Labels)
	return &c
}

// Model is the unified, format-agnostic representation of the loaded
// configuration.
type Model struct {
	Profiles map[string]*Profile
}

// NewModel returns a model holding clones of the built-in profiles.
func NewModel() *Model {
	m := &Model{Profiles: make(map[string]*Profile)}
	for _, p := range Builtins() {
		m.Profiles[p.Name] = p
	}
	return m
}

// Merge copies every profile of other into m, replacing same-named ones.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	for name, p := range other.Profiles {
		m.Profiles[name] = p
	}
}

// Profile returns the named profile.
func (m *Model) Profile(name string) (*Profile, error) {
	p, ok := m.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownProfile, name, m.Names())
	}
	return p, nil
}

// Names lists profile names in sorted order.
func (m *Model) Names() []string {
	return slices.Sorted(maps.Keys(m.Profiles))
}
