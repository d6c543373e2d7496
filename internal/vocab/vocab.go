// Package vocab builds the per-batch vocabulary of categorical terms.
//
// A vocabulary is one DefinedTermSet node plus one DefinedTerm node per
// retained label. Labels are trimmed, deduplicated case-sensitively and sorted
// before identifiers are assigned, so the same batch always yields the same
// terms in the same order.
package vocab

import (
	"sort"
	"strings"

	"github.com/specialistvlad/ldgraph/internal/graph"
	"github.com/specialistvlad/ldgraph/internal/nodeid"
	"github.com/specialistvlad/ldgraph/internal/ontology"
)

// Config selects how labels become terms.
type Config struct {
	// Name is the display name of the term set.
	Name string
	// SetKey and TermKind are the identifier segments of the term set and its
	// terms, e.g. "tags" and "tag".
	SetKey   string
	TermKind string
	// Filtered switches from the observed labels to AllowList. Every allowed
	// label gets a term, used or not, and labels outside the list are dropped
	// from records.
	Filtered  bool
	AllowList []string
}

// Term is one retained label and its identifier.
type Term struct {
	Label string
	ID    string
}

// Vocabulary is the resolved term set of one batch.
type Vocabulary struct {
	SetID string
	Name  string
	Terms []Term

	byLabel map[string]string
}

// Build collects the vocabulary for a batch. labels holds each record's raw
// category labels; it is only consulted when the config is unfiltered.
func Build(ids nodeid.Builder, cfg Config, labels [][]string) *Vocabulary {
	var retained []string
	if cfg.Filtered {
		retained = normalize(cfg.AllowList)
	} else {
		var all []string
		for _, recordLabels := range labels {
			all = append(all, recordLabels...)
		}
		retained = normalize(all)
	}

	v := &Vocabulary{
		SetID:   ids.TermSet(cfg.SetKey),
		Name:    cfg.Name,
		Terms:   make([]Term, 0, len(retained)),
		byLabel: make(map[string]string, len(retained)),
	}
	for _, label := range retained {
		id := ids.Term(cfg.TermKind, label)
		v.Terms = append(v.Terms, Term{Label: label, ID: id})
		v.byLabel[label] = id
	}
	return v
}

// normalize trims, drops empties, deduplicates and sorts.
func normalize(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Resolve maps a record's labels to term identifiers in record order.
// Unknown labels are skipped and each identifier appears once.
func (v *Vocabulary) Resolve(labels []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, l := range labels {
		id, ok := v.byLabel[strings.TrimSpace(l)]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Nodes returns the term-set node followed by one node per term.
func (v *Vocabulary) Nodes() []*graph.Node {
	nodes := make([]*graph.Node, 0, len(v.Terms)+1)
	nodes = append(nodes, graph.NewNode(v.SetID, ontology.ClassDefinedTermSet).
		Set(ontology.PropName, graph.Literal(v.Name)))
	for _, t := range v.Terms {
		nodes = append(nodes, graph.NewNode(t.ID, ontology.ClassDefinedTerm).
			Set(ontology.PropName, graph.Literal(t.Label)).
			Set(ontology.PropInDefinedTermSet, graph.Ref(v.SetID)))
	}
	return nodes
}
