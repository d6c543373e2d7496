// Package urdf talks to the URDF endpoints of a Node-RED runtime.
//
// Two calls are supported:
//
//	GET  {base}/urdf/zurl      the compaction list, a JSON array of IRIs
//	POST {base}/urdf/loadFile  ingest a dataset, body {"doc": <dataset>}
//
// Every call goes through one circuit breaker per Client, so a runtime that
// keeps failing is not hammered once per input file.
package urdf
