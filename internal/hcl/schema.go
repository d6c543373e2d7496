package hcl

import (
	"github.com/specialistvlad/ldgraph/internal/config"
)

// fileRoot is the top-level layout of a profile file. Anything besides
// exporter blocks is reported as a diagnostic.
type fileRoot struct {
	Exporters []*exporterBlock `hcl:"exporter,block"`
}

// exporterBlock mirrors config.Profile with every attribute optional. A nil
// field means the attribute was not written.
type exporterBlock struct {
	Name    string  `hcl:"name,label"`
	Extends *string `hcl:"extends,optional"`

	Source          *string  `hcl:"source,optional"`
	VersionStrategy *string  `hcl:"version_strategy,optional"`
	Preceders       []string `hcl:"preceders,optional"`
	RatingVariant   *string  `hcl:"rating,optional"`
	FilterLabels    *bool    `hcl:"filter_labels,optional"`
	Labels          []string `hcl:"labels,optional"`
	TermSetName     *string  `hcl:"term_set_name,optional"`
	TermSetKey      *string  `hcl:"term_set_key,optional"`
	TermKind        *string  `hcl:"term_kind,optional"`
	BaseURL         *string  `hcl:"base_url,optional"`
	FlowsURL        *string  `hcl:"flows_url,optional"`
	GraphID         *string  `hcl:"graph_id,optional"`
	Compact         *bool    `hcl:"compact,optional"`
}

// apply writes the attributes present in b onto p.
func (b *exporterBlock) apply(p *config.Profile) {
	p.Name = b.Name
	setString(&p.Source, b.Source)
	setString(&p.VersionStrategy, b.VersionStrategy)
	setString(&p.RatingVariant, b.RatingVariant)
	setString(&p.TermSetName, b.TermSetName)
	setString(&p.TermSetKey, b.TermSetKey)
	setString(&p.TermKind, b.TermKind)
	setString(&p.BaseURL, b.BaseURL)
	setString(&p.FlowsURL, b.FlowsURL)
	setString(&p.GraphID, b.GraphID)
	if b.Preceders != nil {
		p.Preceders = b.Preceders
	}
	if b.Labels != nil {
		p.Labels = b.Labels
	}
	if b.FilterLabels != nil {
		p.FilterLabels = *b.FilterLabels
	}
	if b.Compact != nil {
		p.Compact = *b.Compact
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
