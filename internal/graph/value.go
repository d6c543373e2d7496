package graph

import "fmt"

// Value is a single property value: a literal or a node reference.
type Value struct {
	// Literal holds a string, int or bool when Ref is empty.
	Literal any
	// Ref is the identifier of a referenced node.
	Ref string
}

// Literal wraps a plain value.
func Literal(v any) Value {
	return Value{Literal: v}
}

// Ref references the node with the given identifier.
func Ref(id string) Value {
	return Value{Ref: id}
}

// Refs references every identifier in order.
func Refs(ids ...string) []Value {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Value, len(ids))
	for i, id := range ids {
		out[i] = Ref(id)
	}
	return out
}

// IsRef reports whether v points at another node.
func (v Value) IsRef() bool {
	return v.Ref != ""
}

func (v Value) String() string {
	if v.IsRef() {
		return "<" + v.Ref + ">"
	}
	return fmt.Sprintf("%v", v.Literal)
}
