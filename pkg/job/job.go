package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmohr/featgraph/pkg/analysis"
	"github.com/rmohr/featgraph/pkg/api"
	"github.com/rmohr/featgraph/pkg/closure"
	"github.com/rmohr/featgraph/pkg/deriver"
	"github.com/rmohr/featgraph/pkg/graph"
	"github.com/sirupsen/logrus"
)

var ErrIncomplete = errors.New("cancelled before the implication graph was complete")

// Job builds the implication graph of one model snapshot.
type Job struct {
	Model *api.Model
	// Oracle supplies core and dead features. Defaults to the analysis
	// stored on the model.
	Oracle analysis.Oracle
	// Workers of the closure, runtime.NumCPU() if not positive.
	Workers int
	Monitor Monitor
	Sink    Sink
}

// Run derives and closes the graph and publishes it to the sink. If ctx is
// cancelled before the closure is complete, nothing is published and
// ErrIncomplete is returned.
func (j *Job) Run(ctx context.Context) (*graph.Graph, error) {
	oracle := j.Oracle
	if oracle == nil {
		oracle = analysis.Declared{}
	}
	monitor := j.Monitor
	if monitor == nil {
		monitor = nopMonitor{}
	}

	logrus.Info("Computing core and dead features.")
	fixed, err := oracle.Analyze(ctx, j.Model)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrIncomplete
		}
		return nil, fmt.Errorf("failed to analyze feature model %s: %w", j.Model.Name, err)
	}
	logrus.Infof("Found %d core and %d dead features.", len(fixed.Core), len(fixed.Dead))

	free := deriver.FreeFeatures(j.Model, fixed.Core, fixed.Dead)
	monitor.SetMaxWork(len(free) + 1)
	g := graph.New(free)
	monitor.Worked()

	d := deriver.New(j.Model, g, fixed.Core, fixed.Dead)
	logrus.Info("Deriving tree edges.")
	d.TreeEdges()
	logrus.Info("Deriving constraint edges.")
	d.ConstraintEdges()
	g.ClearDiagonal()

	logrus.Infof("Computing closure over %d features.", g.N())
	closed, err := closure.Close(ctx, g, j.Workers, monitor.Worked)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrIncomplete
		}
		return nil, fmt.Errorf("failed to compute closure: %v", err)
	}

	if j.Sink != nil {
		if err := j.Sink.Publish(closed); err != nil {
			return nil, fmt.Errorf("failed to publish implication graph: %v", err)
		}
	}
	return closed, nil
}
