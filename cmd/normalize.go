package main

import (
	"fmt"

	"github.com/rmohr/featgraph/pkg/prop"
	"github.com/spf13/cobra"
)

type normalizeOpts struct {
	constraints []string
}

var normalizeopts = normalizeOpts{}

func NewNormalizeCmd() *cobra.Command {

	normalizeCmd := &cobra.Command{
		Use:   "normalize [MODEL]",
		Short: "debug command printing the simplified conjuncts of constraints",
		Long: `prints every cross-tree constraint of the model, or every constraint given with --constraint, followed by
the conjuncts the graph builder derives its edges from`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var constraints []prop.Node
			for _, text := range normalizeopts.constraints {
				n, err := prop.Parse(text)
				if err != nil {
					return err
				}
				constraints = append(constraints, n)
			}
			if len(args) == 1 {
				m, _, err := loadModel(args[0], "none")
				if err != nil {
					return err
				}
				constraints = append(constraints, m.Constraints...)
			}
			for _, c := range constraints {
				fmt.Println(c)
				for _, conjunct := range prop.Normalize(c) {
					fmt.Printf("  %s\n", conjunct)
				}
			}
			return nil
		},
	}

	normalizeCmd.Flags().StringArrayVarP(&normalizeopts.constraints, "constraint", "e", nil, "constraint to normalize, can be specified multiple times")
	return normalizeCmd
}
