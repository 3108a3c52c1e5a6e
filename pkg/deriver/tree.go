package deriver

import (
	"github.com/rmohr/featgraph/pkg/api"
	"github.com/rmohr/featgraph/pkg/graph"
	"github.com/sirupsen/logrus"
)

// TreeEdges adds the edges implied by the parent/child structure.
func (d *Deriver) TreeEdges() {
	for i := range d.model.Features {
		f := &d.model.Features[i]
		fi := d.nodes[i]
		if fi < 0 || f.Parent == api.NoParent {
			continue
		}
		parent := &d.model.Features[f.Parent]
		pi := d.nodes[f.Parent]

		if pi >= 0 {
			// a child can't be selected without its parent
			d.graph.Implies(fi, pi, graph.PosPos)
			switch {
			case parent.IsAnd():
				if f.Mandatory {
					d.graph.Implies(pi, fi, graph.PosPos)
				}
			case len(parent.Children) == 1:
				d.graph.Implies(pi, fi, graph.PosPos)
			default:
				d.graph.SetEdge(pi, fi, graph.Edge1q)
				d.graph.SetEdge(fi, pi, graph.Edge0q)
			}
		}

		switch {
		case parent.IsAlternative():
			if pi < 0 && len(parent.Children) == 2 {
				// exactly one of the two remaining children is selected
				for _, s := range d.siblings(parent) {
					d.graph.SetEdge(fi, s, graph.Edge10|graph.Edge01)
				}
			} else {
				for _, s := range d.siblings(parent) {
					d.graph.SetEdge(fi, s, graph.Edge10|graph.Edge0q)
				}
			}
		case parent.IsOr():
			if d.hasCoreChild(parent) {
				logrus.Debugf("Or group %s is satisfied by a core feature", parent.Name)
				continue
			}
			for _, s := range d.siblings(parent) {
				d.graph.SetEdge(fi, s, graph.Edge0q)
			}
		}
	}
}

// siblings returns the graph indices of all non-fixed children of parent.
// The feature itself is included, SetEdge ignores self edges.
func (d *Deriver) siblings(parent *api.Feature) []int {
	var nodes []int
	for _, c := range parent.Children {
		if n := d.nodes[c]; n >= 0 {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (d *Deriver) hasCoreChild(parent *api.Feature) bool {
	for _, c := range parent.Children {
		if d.core[d.model.Features[c].Name] {
			return true
		}
	}
	return false
}
