package deriver

import (
	"github.com/rmohr/featgraph/pkg/api"
	"github.com/rmohr/featgraph/pkg/graph"
)

// Deriver fills an implication graph from the tree and the cross-tree
// constraints of a model. Core and dead features are fixed: they have no
// index in the graph and never take part in an edge.
type Deriver struct {
	model *api.Model
	graph *graph.Graph
	core  map[string]bool
	fixed map[string]bool
	// nodes maps a model feature index to its graph index, -1 if fixed
	nodes []int
}

func New(model *api.Model, g *graph.Graph, core, dead []string) *Deriver {
	d := &Deriver{
		model: model,
		graph: g,
		core:  map[string]bool{},
		fixed: map[string]bool{},
		nodes: make([]int, len(model.Features)),
	}
	for _, name := range core {
		d.core[name] = true
		d.fixed[name] = true
	}
	for _, name := range dead {
		d.fixed[name] = true
	}
	for i, f := range model.Features {
		d.nodes[i] = -1
		if n, ok := g.Lookup(f.Name); ok && !d.fixed[f.Name] {
			d.nodes[i] = n
		}
	}
	return d
}

// FreeFeatures returns the names of all features that are neither core nor
// dead, in declaration order. They form the index space of the graph.
func FreeFeatures(model *api.Model, core, dead []string) []string {
	fixed := map[string]bool{}
	for _, names := range [][]string{core, dead} {
		for _, name := range names {
			fixed[name] = true
		}
	}
	var free []string
	for _, f := range model.Features {
		if !fixed[f.Name] {
			free = append(free, f.Name)
		}
	}
	return free
}
