// Package compact shortens well-known IRIs to positional references.
//
// A Table is an ordered list of full IRIs, usually fetched from the URDF
// runtime once per run. The IRI at index i compacts to "z:i". Only type tags
// and property names are compacted; node identifiers and literal values are
// always emitted in full.
package compact

import "strconv"

// Prefix starts every compacted reference.
const Prefix = "z:"

// Table maps IRIs to their first position in the source list.
// A nil or empty Table compacts nothing. A Table is immutable and safe for
// concurrent use.
type Table struct {
	index map[string]int
	size  int
}

// NewTable builds a table from iris. When an IRI appears more than once the
// first position wins.
func NewTable(iris []string) *Table {
	t := &Table{index: make(map[string]int, len(iris)), size: len(iris)}
	for i, iri := range iris {
		if _, seen := t.index[iri]; !seen {
			t.index[iri] = i
		}
	}
	return t
}

// Compact returns the short reference for iri, or iri unchanged when it is
// not in the table.
func (t *Table) Compact(iri string) string {
	if t == nil {
		return iri
	}
	i, ok := t.index[iri]
	if !ok {
		return iri
	}
	return Prefix + strconv.Itoa(i)
}

// Len returns the length of the source list.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}
