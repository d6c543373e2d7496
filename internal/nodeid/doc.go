// internal/nodeid/doc.go

/*
Package nodeid builds the deterministic identifiers used for every synthetic
node in an exported graph.

Identifiers are URNs of the form `urn:<namespace>:<batch-slug>:<discriminators...>`,
e.g. `urn:rating:latest:1234` or `urn:runtime:latest:1234:nodered:3-1`.
The batch slug and most discriminators go through Slugify, which is stable
but not collision-free: `3.1.0` and `3.1.5` both become `3-1` because the
trailing `.0`/`.5` is treated like a file extension. Callers that need
uniqueness inside a graph must deduplicate on the final identifier.

Everything here is pure: no I/O, no errors, no randomness.
*/
package nodeid
