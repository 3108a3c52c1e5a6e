package closure

import (
	"context"
	"runtime"

	"github.com/rmohr/featgraph/pkg/graph"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// value of a feature while walking the graph
const (
	valTrue = iota
	valFalse
	valAny
	values
)

type arc struct {
	to   int
	mask graph.Mask
}

// Close returns the transitive closure of g. For every feature r and value
// x it follows all edges reachable from r=x, carrying forced values along as
// long as they stay forced and degrading to "related" otherwise. A feature
// reached with exactly one forced value gets that value, even if it was also
// reached as related. One reached with both values gets both bits.
//
// The result covers every composition of its own cells, see Mask.Covers.
// It is not a bitwise superset of g: a related input row is narrowed to the
// forced value if some path forces one.
//
// g is only read. Rows of the result are partitioned round robin between the
// workers, every row has exactly one writer. worked, if not nil, is invoked
// once per finished row and may be called concurrently. When ctx is
// cancelled no graph is returned.
func Close(ctx context.Context, g *graph.Graph, workers int, worked func()) (*graph.Graph, error) {
	n := g.N()
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	adj := adjacency(g)
	out := graph.New(g.Features())
	logrus.Debugf("Computing closure of %d features with %d workers", n, workers)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			s := newSearch(adj)
			for root := w; root < n; root += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				for _, x := range []bool{true, false} {
					s.run(root, x)
					s.writeRow(out, root, x)
				}
				if worked != nil {
					worked()
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func adjacency(g *graph.Graph) [][]arc {
	adj := make([][]arc, g.N())
	for a := range adj {
		for b := 0; b < g.N(); b++ {
			if m := g.Edge(a, b); m != graph.EdgeNone && a != b {
				adj[a] = append(adj[a], arc{to: b, mask: m})
			}
		}
	}
	return adj
}

type search struct {
	adj     [][]arc
	reached []bool
	touched []int
	stack   []int
}

func newSearch(adj [][]arc) *search {
	return &search{
		adj:     adj,
		reached: make([]bool, len(adj)*values),
	}
}

func (s *search) visit(node, value int) {
	st := node*values + value
	if s.reached[st] {
		return
	}
	s.reached[st] = true
	s.touched = append(s.touched, st)
	s.stack = append(s.stack, st)
}

func (s *search) run(root int, x bool) {
	for _, st := range s.touched {
		s.reached[st] = false
	}
	s.touched = s.touched[:0]

	if x {
		s.visit(root, valTrue)
	} else {
		s.visit(root, valFalse)
	}
	for len(s.stack) > 0 {
		st := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		node, value := st/values, st%values

		if value != valAny && s.reached[node*values+(1-value)] {
			s.visit(node, valAny)
		}
		for _, a := range s.adj[node] {
			if value == valAny {
				s.visit(a.to, valAny)
				continue
			}
			switch a.mask.Row(value == valTrue) {
			case graph.RowTrue:
				s.visit(a.to, valTrue)
			case graph.RowFalse:
				s.visit(a.to, valFalse)
			case graph.RowRelated:
				s.visit(a.to, valAny)
			}
		}
	}
}

// row folds the reached values of node into one row. A single forced value
// wins over a "related" one reached on another path.
func (s *search) row(node int) graph.Row {
	base := node * values
	var r graph.Row
	if s.reached[base+valTrue] {
		r |= graph.RowTrue
	}
	if s.reached[base+valFalse] {
		r |= graph.RowFalse
	}
	if r == graph.RowNone && s.reached[base+valAny] {
		return graph.RowRelated
	}
	return r
}

func (s *search) writeRow(out *graph.Graph, root int, x bool) {
	for _, st := range s.touched {
		if node := st / values; node != root {
			out.SetEdge(root, node, graph.FromRow(x, s.row(node)))
		}
	}
}
