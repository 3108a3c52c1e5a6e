package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	verbose bool
}

var rootopts = rootOpts{}

var rootCmd = &cobra.Command{
	Use:   "featgraph",
	Short: "featgraph derives implication graphs from feature models",
	Long: `The tool derives for every pair of undecided features of a feature model which assignments force each other,
so that configurators can prune invalid choices without asking a solver on every selection`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootopts.verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&rootopts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewQueryCmd())
	rootCmd.AddCommand(NewNormalizeCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
