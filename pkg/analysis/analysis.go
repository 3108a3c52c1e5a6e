package analysis

import (
	"context"
	"errors"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/featgraph/pkg/api"
	"github.com/rmohr/featgraph/pkg/prop"
)

var ErrVoidModel = errors.New("feature model has no valid configuration")

// Result lists core features (selected in every valid configuration) and
// dead features (selected in none), both in declaration order.
type Result struct {
	Core []string
	Dead []string
}

// Oracle computes the core and dead features of a model.
type Oracle interface {
	Analyze(ctx context.Context, m *api.Model) (*Result, error)
}

// Declared returns the analysis stored on the model itself, an empty result
// if there is none.
type Declared struct{}

func (Declared) Analyze(_ context.Context, m *api.Model) (*Result, error) {
	return &Result{Core: m.Core, Dead: m.Dead}, nil
}

// ModelFormula returns the propositional formula whose models are exactly
// the valid configurations of m.
func ModelFormula(m *api.Model) bf.Formula {
	var ands []bf.Formula
	if root := m.Root(); root != api.NoParent {
		ands = append(ands, bf.Var(m.Features[root].Name))
	}
	for _, f := range m.Features {
		v := bf.Var(f.Name)
		if f.Parent != api.NoParent {
			ands = append(ands, bf.Implies(v, bf.Var(m.Features[f.Parent].Name)))
		}
		if len(f.Children) == 0 {
			continue
		}
		var children []string
		for _, c := range f.Children {
			children = append(children, m.Features[c].Name)
		}
		switch {
		case f.IsAnd():
			for _, c := range f.Children {
				if m.Features[c].Mandatory {
					ands = append(ands, bf.Implies(v, bf.Var(m.Features[c].Name)))
				}
			}
		case f.IsOr():
			ands = append(ands, bf.Implies(v, bf.Or(toBFVars(children)...)))
		case f.IsAlternative():
			ands = append(ands, bf.Implies(v, bf.Unique(children...)))
		}
	}
	for _, c := range m.Constraints {
		ands = append(ands, prop.ToBF(c))
	}
	return bf.And(ands...)
}

func toBFVars(names []string) (vars []bf.Formula) {
	for _, name := range names {
		vars = append(vars, bf.Var(name))
	}
	return
}
