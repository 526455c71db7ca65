// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// ErrMalformedElement indicates an element that is neither a node nor an edge.
var ErrMalformedElement = errors.New("export: malformed element")

// Element is one {"data": ...} entry of the element list.
type Element struct {
	Data any `json:"data"`
}

// Cytoscape returns the element list: nodes first, then edges.
func (d *Document) Cytoscape() []Element {
	out := make([]Element, 0, len(d.Nodes)+len(d.Edges))
	for i := range d.Nodes {
		out = append(out, Element{Data: &d.Nodes[i]})
	}
	for i := range d.Edges {
		out = append(out, Element{Data: &d.Edges[i]})
	}

	return out
}

// WriteJSON encodes v to w, indented when indent is set.
func WriteJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}

	return nil
}

// WriteElements encodes d as an element list.
func WriteElements(w io.Writer, d *Document, indent bool) error {
	return WriteJSON(w, d.Cytoscape(), indent)
}

// ReadElements decodes an element list written by WriteElements. Entries
// with a source are edges, the rest nodes.
func ReadElements(r io.Reader) (*Document, error) {
	var raw []struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("export: decode: %w", err)
	}

	doc := &Document{}
	for i, el := range raw {
		var head struct {
			ID     string `json:"id"`
			Source string `json:"source"`
		}
		if err := json.Unmarshal(el.Data, &head); err != nil || head.ID == "" {
			return nil, fmt.Errorf("%w: element %d", ErrMalformedElement, i)
		}
		if head.Source == "" {
			var n Node
			if err := json.Unmarshal(el.Data, &n); err != nil {
				return nil, fmt.Errorf("%w: element %d: %w", ErrMalformedElement, i, err)
			}
			doc.Nodes = append(doc.Nodes, n)
			continue
		}
		var e Edge
		if err := json.Unmarshal(el.Data, &e); err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrMalformedElement, i, err)
		}
		doc.Edges = append(doc.Edges, e)
	}

	return doc, nil
}
