// Package heuristics infers facts about a post or issue from its title alone:
// the operating system it mentions, whether it concerns containers, and which
// Node.js and Node-RED versions it names.
//
// All matching is deterministic pattern matching over ASCII-ish text. Nothing
// here returns an error; a title that matches nothing simply produces no facts.
//
// # Version strategies
//
// Node-RED versions are found with one of two strategies, picked per exporter:
//
//   - Anchored: a version-shaped token counts only when the token right before
//     it is one of the configured preceders (e.g. "nr", "nodered", "node-red").
//     "NR 3.1.0 release notes" yields 3.1.0, "the nr gains 3.1.0 users" does not.
//   - Unanchored: every version-shaped substring counts, except the one that was
//     already attributed to Node.js.
//
// Node.js versions use a single fixed rule: the token after the literal
// "node.js", reduced to digits and dots. Unlike the Node-RED shape, a bare
// integer such as "node.js 18" is accepted.
package heuristics
