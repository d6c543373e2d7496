// Package registry provides the central "glue" for the module system.
//
// The Registry maps the source names used in exporter profiles (e.g.
// "discourse") to the compiled Go functions that turn a decoded input document
// into a graph, and holds the factories of the optional delivery sinks.
//
// Modules populate the registry during application startup. The selected
// profile is then validated against it so a profile can never name a source
// that no module handles.
package registry
