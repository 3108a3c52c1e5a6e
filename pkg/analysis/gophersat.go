package analysis

import (
	"context"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/featgraph/pkg/api"
	"github.com/sirupsen/logrus"
)

// GophersatOracle solves one formula per undecided feature. A first sample
// configuration rules out half of the checks: a feature selected in it can't
// be dead, a deselected one can't be core.
type GophersatOracle struct{}

func (GophersatOracle) Analyze(ctx context.Context, m *api.Model) (*Result, error) {
	f := ModelFormula(m)
	sample := bf.Solve(f)
	if sample == nil {
		return nil, ErrVoidModel
	}
	result := &Result{}
	for _, feature := range m.Features {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v := bf.Var(feature.Name)
		if sample[feature.Name] {
			if bf.Solve(bf.And(f, bf.Not(v))) == nil {
				logrus.Debugf("%s is a core feature", feature.Name)
				result.Core = append(result.Core, feature.Name)
			}
		} else if bf.Solve(bf.And(f, v)) == nil {
			logrus.Debugf("%s is a dead feature", feature.Name)
			result.Dead = append(result.Dead, feature.Name)
		}
	}
	return result, nil
}
