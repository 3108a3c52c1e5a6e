package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rmohr/featgraph/pkg/job"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type buildOpts struct {
	config  string
	workers int
	output  string
}

var buildopts = buildOpts{}

func NewBuildCmd() *cobra.Command {

	buildCmd := &cobra.Command{
		Use:   "build MODEL",
		Short: "builds the implication graph of a feature model",
		Long: `builds the transitively closed implication graph over all features which are neither core nor dead
and writes it as JSON (or YAML if the output ends in .yaml) to the output file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := buildSettings(buildopts, oraclehelperopts, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			m, oracle, err := loadModel(args[0], config.Oracle)
			if err != nil {
				return err
			}
			output, err := outputPath(m.Name, config.Output)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			j := &job.Job{
				Model:   m,
				Oracle:  oracle,
				Workers: config.Workers,
				Monitor: &job.LogMonitor{},
				Sink:    &job.FileSink{Name: m.Name, Path: output},
			}
			g, err := j.Run(ctx)
			if err != nil {
				return err
			}
			logrus.Infof("Wrote implication graph over %d features to %s.", g.N(), output)
			return nil
		},
	}

	buildCmd.Flags().StringVarP(&buildopts.config, "config", "c", "", "build configuration file with workers, oracle and output")
	buildCmd.Flags().IntVarP(&buildopts.workers, "workers", "w", 0, "number of closure workers, defaults to the number of CPUs")
	buildCmd.Flags().StringVarP(&buildopts.output, "output", "o", "", "graph file to write, defaults to the user cache directory")
	addOracleHelperFlags(buildCmd)
	return buildCmd
}
