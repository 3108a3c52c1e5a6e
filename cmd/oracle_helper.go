package main

import (
	"fmt"

	"github.com/rmohr/featgraph/pkg/analysis"
	"github.com/rmohr/featgraph/pkg/api"
	"github.com/rmohr/featgraph/pkg/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type oracleHelperOpts struct {
	oracle string
}

var oraclehelperopts = oracleHelperOpts{}

func newOracle(name string) (analysis.Oracle, error) {
	switch name {
	case "gophersat":
		return analysis.GophersatOracle{}, nil
	case "gini":
		return analysis.GiniOracle{}, nil
	case "none":
		return analysis.Declared{}, nil
	default:
		return nil, fmt.Errorf("unknown oracle %s, expected one of gophersat, gini, none", name)
	}
}

// loadModel reads the model and picks the oracle for it. Core and dead
// features declared in the model file are used as they are.
func loadModel(file string, oracle string) (*api.Model, analysis.Oracle, error) {
	logrus.Info("Loading model.")
	m, err := model.LoadModelFile(file)
	if err != nil {
		return nil, nil, err
	}
	if m.HasAnalysis() {
		logrus.Infof("Using core and dead features declared in model %s.", m.Name)
		return m, analysis.Declared{}, nil
	}
	o, err := newOracle(oracle)
	if err != nil {
		return nil, nil, err
	}
	return m, o, nil
}

func addOracleHelperFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&oraclehelperopts.oracle, "oracle", "gophersat", "solver computing core and dead features (gophersat, gini, none)")
}
