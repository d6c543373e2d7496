package graph

// Property is a named, ordered list of values.
type Property struct {
	Name   string
	Values []Value
}

// Node is a typed entity with a unique identifier.
type Node struct {
	ID    string
	Types []string
	Props []Property
}

// NewNode creates a node with the given identifier and type IRIs.
func NewNode(id string, types ...string) *Node {
	return &Node{ID: id, Types: types}
}

// Set appends values to the named property, creating it on first use.
// Calling Set without values leaves the node unchanged.
func (n *Node) Set(name string, values ...Value) *Node {
	if len(values) == 0 {
		return n
	}
	for i := range n.Props {
		if n.Props[i].Name == name {
			n.Props[i].Values = append(n.Props[i].Values, values...)
			return n
		}
	}
	n.Props = append(n.Props, Property{Name: name, Values: values})
	return n
}

// SetIf sets the property only when cond holds.
func (n *Node) SetIf(cond bool, name string, values ...Value) *Node {
	if !cond {
		return n
	}
	return n.Set(name, values...)
}

// Get returns the values of the named property.
func (n *Node) Get(name string) ([]Value, bool) {
	for _, p := range n.Props {
		if p.Name == name {
			return p.Values, true
		}
	}
	return nil, false
}

// HasType reports whether typ is one of the node's types.
func (n *Node) HasType(typ string) bool {
	for _, t := range n.Types {
		if t == typ {
			return true
		}
	}
	return false
}
