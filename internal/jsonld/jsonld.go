// Package jsonld encodes graphs as expanded JSON-LD datasets.
//
// The output is always a JSON array holding one named graph with an empty
// @context. Every property value is an array of value objects ({"@value": x}
// or {"@id": x}) and @type is always an array, because downstream loaders
// iterate over both without checking for scalars. Keys are written in node
// order rather than sorted, so the encoding is byte-stable for a given graph.
package jsonld

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/ldgraph/internal/compact"
	"github.com/specialistvlad/ldgraph/internal/graph"
)

// Keywords.
const (
	KeyContext = "@context"
	KeyID      = "@id"
	KeyType    = "@type"
	KeyGraph   = "@graph"
	KeyValue   = "@value"
)

// Marshal returns the compact dataset encoding of g. Type tags and property
// names are compacted through table, which may be nil.
func Marshal(g *graph.Graph, table *compact.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDataset(&buf, g, table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is Marshal with two-space indentation and a trailing newline.
func MarshalIndent(g *graph.Graph, table *compact.Table) ([]byte, error) {
	raw, err := Marshal(g, table)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent dataset: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Encode writes the indented dataset to w.
func Encode(w io.Writer, g *graph.Graph, table *compact.Table) error {
	data, err := MarshalIndent(g, table)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeDataset(buf *bytes.Buffer, g *graph.Graph, table *compact.Table) error {
	buf.WriteString(`[{"@context":{},"@id":`)
	if err := writeScalar(buf, g.ID); err != nil {
		return err
	}
	buf.WriteString(`,"@graph":[`)
	for i, n := range g.Nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeNode(buf, n, table); err != nil {
			return fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	buf.WriteString(`]}]`)
	return nil
}

func writeNode(buf *bytes.Buffer, n *graph.Node, table *compact.Table) error {
	buf.WriteString(`{"@id":`)
	if err := writeScalar(buf, n.ID); err != nil {
		return err
	}
	buf.WriteString(`,"@type":[`)
	for i, t := range n.Types {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeScalar(buf, table.Compact(t)); err != nil {
			return err
		}
	}
	buf.WriteByte(']')

	for _, p := range n.Props {
		buf.WriteByte(',')
		if err := writeScalar(buf, table.Compact(p.Name)); err != nil {
			return err
		}
		buf.WriteString(`:[`)
		for i, v := range p.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, v); err != nil {
				return fmt.Errorf("property %s: %w", p.Name, err)
			}
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return nil
}

func writeValue(buf *bytes.Buffer, v graph.Value) error {
	if v.IsRef() {
		buf.WriteString(`{"@id":`)
		if err := writeScalar(buf, v.Ref); err != nil {
			return err
		}
	} else {
		buf.WriteString(`{"@value":`)
		if err := writeScalar(buf, v.Literal); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeScalar encodes v without HTML escaping and without the encoder's
// trailing newline.
func writeScalar(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}
