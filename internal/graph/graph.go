package graph

import "slices"

// Graph is a named, ordered set of nodes.
type Graph struct {
	ID    string
	Nodes []*Node
	// Merged counts nodes folded into an existing node by Merge.
	Merged int

	index map[string]int
}

// New returns an empty graph with the given identifier.
func New(id string) *Graph {
	return &Graph{ID: id, index: make(map[string]int)}
}

// Add appends n unless a node with the same identifier is already present.
// It reports whether the node was added.
func (g *Graph) Add(n *Node) bool {
	if g.index == nil {
		g.index = make(map[string]int)
	}
	if _, exists := g.index[n.ID]; exists {
		return false
	}
	g.index[n.ID] = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	return true
}

// Merge adds n, or folds it into the node that already has its identifier.
// Types and property values missing from the existing node are appended in
// order; values already present are skipped. It reports whether n was folded.
func (g *Graph) Merge(n *Node) bool {
	i, exists := g.index[n.ID]
	if !exists {
		g.Add(n)
		return false
	}
	into := g.Nodes[i]
	for _, t := range n.Types {
		if !into.HasType(t) {
			into.Types = append(into.Types, t)
		}
	}
	for _, p := range n.Props {
		have, _ := into.Get(p.Name)
		var extra []Value
		for _, v := range p.Values {
			if !slices.Contains(have, v) && !slices.Contains(extra, v) {
				extra = append(extra, v)
			}
		}
		into.Set(p.Name, extra...)
	}
	g.Merged++
	return true
}

// Node looks up a node by identifier.
func (g *Graph) Node(id string) (*Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return g.Nodes[i], true
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.Nodes)
}

// CountByType returns how many nodes carry each type IRI.
func (g *Graph) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, n := range g.Nodes {
		for _, t := range n.Types {
			counts[t]++
		}
	}
	return counts
}
