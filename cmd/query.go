package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rmohr/featgraph/pkg/graph"
	"github.com/rmohr/featgraph/pkg/model"
	"github.com/spf13/cobra"
)

func NewQueryCmd() *cobra.Command {

	queryCmd := &cobra.Command{
		Use:   "query GRAPH FEATURE [FEATURE]",
		Short: "prints what selecting or deselecting a feature forces",
		Long: `prints the relations of a feature to all other features of a graph file written by build, or only
its relation to the second feature`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := model.LoadGraphFile(args[0])
			if err != nil {
				return err
			}
			g, err := graph.FromDocument(doc)
			if err != nil {
				return err
			}
			from := args[1]
			if len(args) == 3 {
				m, err := g.RelationMask(from, args[2])
				if err != nil {
					return err
				}
				for _, line := range describe(from, args[2], m) {
					fmt.Println(line)
				}
				return nil
			}
			relations, err := g.Relations(from)
			if err != nil {
				return err
			}
			for _, r := range relations {
				for _, line := range describe(from, r.To, r.Mask) {
					fmt.Println(line)
				}
			}
			return nil
		},
	}
	return queryCmd
}

// describe renders one line per source value that says something about to:
// green for a forced selection, red for a forced deselection, yellow if the
// relation needs a solver.
func describe(from, to string, m graph.Mask) (lines []string) {
	for _, x := range []bool{true, false} {
		value := 0
		if x {
			value = 1
		}
		switch m.Row(x) {
		case graph.RowTrue:
			lines = append(lines, color.GreenString("%s=%d => %s=1", from, value, to))
		case graph.RowFalse:
			lines = append(lines, color.RedString("%s=%d => %s=0", from, value, to))
		case graph.RowRelated:
			lines = append(lines, color.YellowString("%s=%d => %s=?", from, value, to))
		}
	}
	return lines
}
