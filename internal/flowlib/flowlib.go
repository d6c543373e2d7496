// Package flowlib describes Node-RED flow exports as a flow-library graph and
// generates scaled copies of an export for load experiments.
//
// A flow is a node with type "tab" and a string id. Other nodes belong to a
// flow through their "z" property.
package flowlib

import (
	"sort"
	"strings"

	"github.com/specialistvlad/ldgraph/internal/graph"
	"github.com/specialistvlad/ldgraph/internal/nodeid"
	"github.com/specialistvlad/ldgraph/internal/ontology"
	"github.com/specialistvlad/ldgraph/internal/record"
)

// DefaultGraphID names the flow-library graph when the profile sets none.
const DefaultGraphID = "urn:graph:flowslib"

// TypeTab marks a flow.
const TypeTab = "tab"

// ListKeys are the object keys searched for the node list, in order.
var ListKeys = []string{"flows", "nodes", "data", "items", "content"}

// Nodes locates the node list of a decoded export: a bare array or an array
// under one of ListKeys. Elements that are not objects are dropped.
func Nodes(doc any) ([]map[string]any, error) {
	items, err := record.ArrayOrKeys(doc, ListKeys...)
	if err != nil {
		return nil, err
	}
	return record.Objects(items), nil
}

func isTab(n map[string]any) bool {
	t, _ := n["type"].(string)
	id, ok := n["id"].(string)
	return t == TypeTab && ok && id != ""
}

func str(n map[string]any, key string) string {
	s, _ := n[key].(string)
	return s
}

// Build returns one SoftwareSourceCode node per flow. flowsURL is the landing
// page recorded on every entry.
func Build(graphID, flowsURL string, nodes []map[string]any) *graph.Graph {
	byTab := make(map[string][]map[string]any)
	for _, n := range nodes {
		if z := str(n, "z"); z != "" {
			byTab[z] = append(byTab[z], n)
		}
	}

	g := graph.New(graphID)
	for _, tab := range nodes {
		if !isTab(tab) {
			continue
		}
		id := str(tab, "id")

		title := str(tab, "label")
		if title == "" {
			title = str(tab, "name")
		}
		if title == "" {
			title = id
		}

		g.Add(graph.NewNode(nodeid.LibFlow(id), ontology.ClassSoftwareSourceCode).
			Set(ontology.PropTitle, graph.Literal(title)).
			Set(ontology.PropURL, graph.Literal(flowsURL)).
			Set(ontology.PropIdentifier, graph.Literal(id)).
			Set(ontology.PropKeywords, graph.Literal(keywords(byTab[id]))))
	}
	return g
}

// keywords is the sorted, comma-joined set of node types in a flow.
func keywords(members []map[string]any) string {
	set := make(map[string]struct{})
	for _, n := range members {
		if t := str(n, "type"); t != "" && t != TypeTab {
			set[t] = struct{}{}
		}
	}
	types := make([]string, 0, len(set))
	for t := range set {
		types = append(types, t)
	}
	sort.Strings(types)
	return strings.Join(types, ",")
}
