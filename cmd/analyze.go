package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewAnalyzeCmd() *cobra.Command {

	analyzeCmd := &cobra.Command{
		Use:   "analyze MODEL",
		Short: "prints the core and dead features of a feature model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, oracle, err := loadModel(args[0], oraclehelperopts.oracle)
			if err != nil {
				return err
			}
			logrus.Info("Computing core and dead features.")
			result, err := oracle.Analyze(context.Background(), m)
			if err != nil {
				return err
			}
			fmt.Printf("core: %s\n", strings.Join(result.Core, ", "))
			fmt.Printf("dead: %s\n", strings.Join(result.Dead, ", "))
			return nil
		},
	}

	addOracleHelperFlags(analyzeCmd)
	return analyzeCmd
}
