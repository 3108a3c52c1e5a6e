package analysis

import (
	"context"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/rmohr/featgraph/pkg/api"
	"github.com/rmohr/featgraph/pkg/prop"
	"github.com/sirupsen/logrus"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// GiniOracle encodes the model once as a circuit and then tests every
// feature incrementally under assumptions.
type GiniOracle struct{}

func (GiniOracle) Analyze(ctx context.Context, m *api.Model) (*Result, error) {
	c := logic.NewC()
	lits := make(map[string]z.Lit, len(m.Features))
	for _, f := range m.Features {
		lits[f.Name] = c.Lit()
	}
	formula := modelCircuit(c, m, lits)

	g := gini.New()
	c.ToCnf(g)
	g.Assume(formula)
	if g.Solve() != satisfiable {
		return nil, ErrVoidModel
	}
	sample := make([]bool, len(m.Features))
	for i, f := range m.Features {
		sample[i] = g.Value(lits[f.Name])
	}

	result := &Result{}
	for i, f := range m.Features {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lit := lits[f.Name]
		if sample[i] {
			g.Assume(formula, lit.Not())
			if g.Solve() == unsatisfiable {
				logrus.Debugf("%s is a core feature", f.Name)
				result.Core = append(result.Core, f.Name)
			}
		} else {
			g.Assume(formula, lit)
			if g.Solve() == unsatisfiable {
				logrus.Debugf("%s is a dead feature", f.Name)
				result.Dead = append(result.Dead, f.Name)
			}
		}
	}
	return result, nil
}

func modelCircuit(c *logic.C, m *api.Model, lits map[string]z.Lit) z.Lit {
	implies := func(a, b z.Lit) z.Lit {
		return c.Or(a.Not(), b)
	}
	var ands []z.Lit
	if root := m.Root(); root != api.NoParent {
		ands = append(ands, lits[m.Features[root].Name])
	}
	for _, f := range m.Features {
		v := lits[f.Name]
		if f.Parent != api.NoParent {
			ands = append(ands, implies(v, lits[m.Features[f.Parent].Name]))
		}
		if len(f.Children) == 0 {
			continue
		}
		var children []z.Lit
		for _, child := range f.Children {
			children = append(children, lits[m.Features[child].Name])
		}
		switch {
		case f.IsAnd():
			for i, child := range f.Children {
				if m.Features[child].Mandatory {
					ands = append(ands, implies(v, children[i]))
				}
			}
		case f.IsOr():
			ands = append(ands, implies(v, c.Ors(children...)))
		case f.IsAlternative():
			ands = append(ands, implies(v, c.Ors(children...)))
			for i := range children {
				for j := i + 1; j < len(children); j++ {
					ands = append(ands, c.Or(children[i].Not(), children[j].Not()))
				}
			}
		}
	}
	for _, constraint := range m.Constraints {
		ands = append(ands, toLit(c, constraint, lits))
	}
	return c.Ands(ands...)
}

func toLit(c *logic.C, n prop.Node, lits map[string]z.Lit) z.Lit {
	switch t := n.(type) {
	case prop.Literal:
		if t.Positive {
			return lits[t.Var]
		}
		return lits[t.Var].Not()
	case prop.Not:
		return toLit(c, t.Child, lits).Not()
	case prop.And:
		ms := make([]z.Lit, 0, len(t.Children))
		for _, child := range t.Children {
			ms = append(ms, toLit(c, child, lits))
		}
		if len(ms) == 0 {
			return c.T
		}
		return c.Ands(ms...)
	case prop.Or:
		ms := make([]z.Lit, 0, len(t.Children))
		for _, child := range t.Children {
			ms = append(ms, toLit(c, child, lits))
		}
		if len(ms) == 0 {
			return c.F
		}
		return c.Ors(ms...)
	case prop.Implies:
		return c.Or(toLit(c, t.Left, lits).Not(), toLit(c, t.Right, lits))
	default:
		panic(fmt.Sprintf("unknown propositional node %T", n))
	}
}
