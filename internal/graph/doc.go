// Package graph is the in-memory model of one named linked-data graph.
//
// A Graph is an identifier plus an ordered list of Nodes. Each Node has an
// identifier, one or more type IRIs and an ordered list of properties, where
// every property carries one or more Values. A Value is either a literal
// (string, integer or boolean) or a reference to another node identifier.
//
// # Ordering
//
// Insertion order is the emission order. Nodes keep the order in which they
// were added and properties keep the order in which they were first set, so
// encoding the same graph twice produces identical bytes.
//
// # Absent properties
//
// Setting a property with no values is a no-op. Optional facts are therefore
// expressed by not setting the property at all, never by a null or an empty
// list.
//
// # Uniqueness
//
// Node identifiers are unique within a Graph. Add refuses a node whose
// identifier is already present and reports it to the caller, which keeps the
// first node. Merge instead folds the new node's types and property values
// into the existing one, the way a linked-data consumer reads two node
// objects that share an @id.
package graph
