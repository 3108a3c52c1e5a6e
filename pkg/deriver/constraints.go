package deriver

import (
	"github.com/rmohr/featgraph/pkg/graph"
	"github.com/rmohr/featgraph/pkg/prop"
	"github.com/sirupsen/logrus"
)

// ConstraintEdges adds the edges of every cross-tree constraint of the model.
func (d *Deriver) ConstraintEdges() {
	for _, c := range d.model.Constraints {
		d.Connect(c)
	}
}

// Connect normalizes a constraint and adds its edges. Conjuncts of the form
// literal => literal, literal => and, or => literal and or => and become
// precise implications. Non-literal members of those four shapes and every
// other conjunct, such as literal => or, a disjunction of three literals or a
// bare literal, are approximated by a clique: the involved features are
// marked as related in both directions, which never forbids a valid
// configuration.
func (d *Deriver) Connect(constraint prop.Node) {
	for _, conjunct := range prop.Normalize(constraint) {
		implies, ok := conjunct.(prop.Implies)
		if !ok {
			d.clique(conjunct)
			continue
		}
		switch left := implies.Left.(type) {
		case prop.Literal:
			switch right := implies.Right.(type) {
			case prop.Literal:
				d.imply(left, right)
			case prop.And:
				for _, implied := range right.Children {
					if l, ok := implied.(prop.Literal); ok {
						d.imply(left, l)
					} else {
						d.clique(left, implied)
					}
				}
			default:
				d.clique(conjunct)
			}
		case prop.Or:
			switch right := implies.Right.(type) {
			case prop.Literal:
				for _, imply := range left.Children {
					if l, ok := imply.(prop.Literal); ok {
						d.imply(l, right)
					} else {
						d.clique(imply, right)
					}
				}
			case prop.And:
				for _, imply := range left.Children {
					for _, implied := range right.Children {
						l, lok := imply.(prop.Literal)
						r, rok := implied.(prop.Literal)
						if lok && rok {
							d.imply(l, r)
						} else {
							d.clique(imply, implied)
						}
					}
				}
			default:
				d.clique(conjunct)
			}
		default:
			d.clique(conjunct)
		}
	}
}

func (d *Deriver) imply(from, to prop.Literal) {
	if d.fixed[from.Var] || d.fixed[to.Var] {
		logrus.Debugf("Skipping %s => %s, fixed feature involved", from, to)
		return
	}
	a, aok := d.graph.Lookup(from.Var)
	b, bok := d.graph.Lookup(to.Var)
	if !aok || !bok {
		return
	}
	d.graph.Implies(a, b, graph.NegationOf(from.Positive, to.Positive))
}

func (d *Deriver) clique(nodes ...prop.Node) {
	var members []int
	for _, name := range prop.Features(nodes...) {
		if d.fixed[name] {
			continue
		}
		if n, ok := d.graph.Lookup(name); ok {
			members = append(members, n)
		}
	}
	if len(members) > 1 {
		logrus.Warnf("Approximating %v by relating %d features", nodes, len(members))
	}
	for _, a := range members {
		for _, b := range members {
			d.graph.SetEdge(a, b, graph.Edge0q|graph.Edge1q)
		}
	}
}
