package graph

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownFeature = errors.New("unknown feature")

// Graph is the implication graph over the non-fixed features of a model.
// Cells are packed two per byte and every row starts on a byte boundary, so
// goroutines writing disjoint rows never touch the same byte.
type Graph struct {
	names  []string
	index  map[string]int
	stride int
	cells  []byte
}

// New allocates an empty graph. The position of a name in features is its
// index for the lifetime of the graph.
func New(features []string) *Graph {
	g := &Graph{
		names:  slices.Clone(features),
		index:  make(map[string]int, len(features)),
		stride: (len(features) + 1) / 2,
	}
	for i, name := range features {
		g.index[name] = i
	}
	g.cells = make([]byte, g.stride*len(features))
	return g
}

// N returns the number of features in the graph.
func (g *Graph) N() int {
	return len(g.names)
}

func (g *Graph) Features() []string {
	return slices.Clone(g.names)
}

func (g *Graph) Name(i int) string {
	return g.names[i]
}

func (g *Graph) Index(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrUnknownFeature, name)
	}
	return i, nil
}

// Lookup is Index without an error for callers that skip unknown names.
func (g *Graph) Lookup(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

func (g *Graph) cell(a, b int) (int, uint) {
	return a*g.stride + b/2, uint(b%2) * 4
}

// Edge returns the mask of cell (a, b).
func (g *Graph) Edge(a, b int) Mask {
	i, shift := g.cell(a, b)
	return Mask(g.cells[i]>>shift) & MaskAll
}

// SetEdge merges m into cell (a, b). Self edges are ignored.
func (g *Graph) SetEdge(a, b int, m Mask) {
	if a == b {
		return
	}
	i, shift := g.cell(a, b)
	g.cells[i] |= byte(m&MaskAll) << shift
}

// Implies records "a forces b" for the given polarity class together with
// its contrapositive on (b, a).
func (g *Graph) Implies(a, b int, negation Negation) {
	switch negation {
	case PosPos:
		g.SetEdge(a, b, Edge11)
		g.SetEdge(b, a, Edge00)
	case PosNeg:
		g.SetEdge(a, b, Edge10)
		g.SetEdge(b, a, Edge10)
	case NegPos:
		g.SetEdge(a, b, Edge01)
		g.SetEdge(b, a, Edge01)
	case NegNeg:
		g.SetEdge(a, b, Edge00)
		g.SetEdge(b, a, Edge11)
	default:
		panic(fmt.Sprintf("invalid negation class %d", negation))
	}
}

func (g *Graph) ClearDiagonal() {
	for i := range g.names {
		c, shift := g.cell(i, i)
		g.cells[c] &^= byte(MaskAll) << shift
	}
}

// RelationMask returns the mask of the named pair.
func (g *Graph) RelationMask(from, to string) (Mask, error) {
	a, err := g.Index(from)
	if err != nil {
		return EdgeNone, err
	}
	b, err := g.Index(to)
	if err != nil {
		return EdgeNone, err
	}
	return g.Edge(a, b), nil
}

// StronglyImplies reports whether selecting from forces to to be selected.
func (g *Graph) StronglyImplies(from, to string) bool {
	m, err := g.RelationMask(from, to)
	return err == nil && m.Row(true) == RowTrue
}

// MutuallyExclusive reports whether selecting from forces to to be
// deselected.
func (g *Graph) MutuallyExclusive(from, to string) bool {
	m, err := g.RelationMask(from, to)
	return err == nil && m.Row(true) == RowFalse
}

// Relation is one non-empty cell of a row.
type Relation struct {
	To   string
	Mask Mask
}

// Relations lists the non-empty cells of the row of from in index order.
func (g *Graph) Relations(from string) ([]Relation, error) {
	a, err := g.Index(from)
	if err != nil {
		return nil, err
	}
	var relations []Relation
	for b := range g.names {
		if m := g.Edge(a, b); m != EdgeNone {
			relations = append(relations, Relation{To: g.names[b], Mask: m})
		}
	}
	return relations, nil
}

func (g *Graph) Clone() *Graph {
	c := New(g.names)
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both graphs have the same features in the same
// order and identical cells.
func (g *Graph) Equal(o *Graph) bool {
	return slices.Equal(g.names, o.names) && slices.Equal(g.cells, o.cells)
}
