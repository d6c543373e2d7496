// Package engine assembles one linked-data graph per batch of records.
//
// # Passes
//
// A batch is processed in two passes. The first pass collects what every
// record depends on: the vocabulary of category labels and, for the linear
// rating variant, the batch-wide engagement bounds. The second pass walks the
// records in batch order and emits their nodes.
//
// # Emission order
//
// The term-set node and its term nodes come first. Then, for each record:
// a Rating node, at most one OperatingSystem node, at most one NodeJs node,
// zero or more NodeRed nodes, and finally the DigitalDocument node that
// references all of them.
//
// # Identifiers
//
// Synthetic identifiers are scoped by the batch slug and the record key (see
// record.Record.Key). Node identifiers are unique within a graph; a node whose
// identifier was already emitted is skipped and the first one is kept.
//
// The engine is synchronous and holds no state between calls to Transform, so
// one Engine can serve many batches concurrently.
package engine
