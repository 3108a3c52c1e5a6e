package prop

import (
	"fmt"

	"github.com/crillab/gophersat/bf"
)

// ToBF converts n into a gophersat formula over the feature names.
func ToBF(n Node) bf.Formula {
	switch t := n.(type) {
	case Literal:
		if t.Positive {
			return bf.Var(t.Var)
		}
		return bf.Not(bf.Var(t.Var))
	case Not:
		return bf.Not(ToBF(t.Child))
	case And:
		if len(t.Children) == 0 {
			return bf.True
		}
		return bf.And(toBFAll(t.Children)...)
	case Or:
		if len(t.Children) == 0 {
			return bf.False
		}
		return bf.Or(toBFAll(t.Children)...)
	case Implies:
		return bf.Implies(ToBF(t.Left), ToBF(t.Right))
	default:
		panic(fmt.Sprintf("unknown propositional node %T", n))
	}
}

func toBFAll(nodes []Node) []bf.Formula {
	formulas := make([]bf.Formula, 0, len(nodes))
	for _, n := range nodes {
		formulas = append(formulas, ToBF(n))
	}
	return formulas
}
