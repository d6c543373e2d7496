// internal/nodeid/urn.go
package nodeid

import "strings"

// Scheme prefixes every identifier built by URN.
const Scheme = "urn"

// Namespaces used by the exporters.
const (
	NamespaceGraph   = "graph"
	NamespaceTermSet = "termset"
	NamespaceTerm    = "term"
	NamespaceRating  = "rating"
	NamespaceOS      = "os"
	NamespaceRuntime = "runtime"
	NamespaceDoc     = "doc"
	NamespaceLibFlow = "libflow"
)

// URN joins parts with ':' after trimming surrounding colons from each one.
// Parts that end up empty are skipped.
func URN(parts ...string) string {
	var sb strings.Builder
	sb.WriteString(Scheme)
	for _, part := range parts {
		part = strings.Trim(part, ":")
		if part == "" {
			continue
		}
		sb.WriteByte(':')
		sb.WriteString(part)
	}
	return sb.String()
}

// Builder scopes identifiers to one batch.
type Builder struct {
	slug string
}

// NewBuilder returns a Builder for the batch with the given name (usually the
// input file name). The name is slugified once.
func NewBuilder(batchName string) Builder {
	return Builder{slug: Slugify(batchName)}
}

// Slug returns the batch slug shared by all identifiers of the batch.
func (b Builder) Slug() string {
	return b.slug
}

// Graph returns the named-graph identifier of the batch.
func (b Builder) Graph() string {
	return URN(NamespaceGraph, b.slug)
}

// TermSet returns the identifier of the batch vocabulary, e.g. key "tags".
func (b Builder) TermSet(key string) string {
	return URN(NamespaceTermSet, b.slug, key)
}

// Term returns the identifier of one vocabulary label.
func (b Builder) Term(kind, label string) string {
	return URN(NamespaceTerm, b.slug, kind, Slugify(label))
}

// Rating returns the identifier of a record's rating node.
func (b Builder) Rating(key string) string {
	return URN(NamespaceRating, b.slug, key)
}

// OS returns the identifier of a record's operating-system node.
func (b Builder) OS(key, platform string) string {
	return URN(NamespaceOS, b.slug, key, platform)
}

// Runtime returns the identifier of a record's runtime-version node.
func (b Builder) Runtime(key, runtime, version string) string {
	return URN(NamespaceRuntime, b.slug, key, runtime, Slugify(version))
}

// Doc returns the synthetic identifier of a record's document node.
func (b Builder) Doc(key string) string {
	return URN(NamespaceDoc, b.slug, key)
}

// LibFlow returns the identifier of a flow-library entry. The tab id is used
// verbatim and is not scoped to a batch.
func LibFlow(tabID string) string {
	return Scheme + ":" + NamespaceLibFlow + ":" + tabID
}
