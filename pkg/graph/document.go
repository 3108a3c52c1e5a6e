package graph

import (
	"fmt"

	"github.com/rmohr/featgraph/pkg/api/featgraph"
)

// ToDocument lists every non-empty cell in row-major order.
func (g *Graph) ToDocument(name string) *featgraph.Graph {
	doc := &featgraph.Graph{
		Name:     name,
		Features: g.Features(),
	}
	for a := range g.names {
		for b := range g.names {
			if m := g.Edge(a, b); m != EdgeNone {
				doc.Edges = append(doc.Edges, featgraph.Edge{
					From:     g.names[a],
					To:       g.names[b],
					Mask:     uint8(m),
					Relation: m.String(),
				})
			}
		}
	}
	return doc
}

func FromDocument(doc *featgraph.Graph) (*Graph, error) {
	g := New(doc.Features)
	if len(g.index) != len(doc.Features) {
		return nil, fmt.Errorf("graph %s lists a feature more than once", doc.Name)
	}
	for _, e := range doc.Edges {
		a, err := g.Index(e.From)
		if err != nil {
			return nil, err
		}
		b, err := g.Index(e.To)
		if err != nil {
			return nil, err
		}
		if Mask(e.Mask)&^MaskAll != 0 {
			return nil, fmt.Errorf("invalid mask %d on edge %s -> %s", e.Mask, e.From, e.To)
		}
		g.SetEdge(a, b, Mask(e.Mask))
	}
	return g, nil
}
