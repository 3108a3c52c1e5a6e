package deriver

import (
	"github.com/onsi/gomega"
	"github.com/rmohr/featgraph/pkg/api"
	"github.com/rmohr/featgraph/pkg/graph"
	"github.com/rmohr/featgraph/pkg/prop"
)

func newDeriver(g *gomega.WithT, records []api.Record, core, dead []string, constraints ...string) (*Deriver, *graph.Graph) {
	var nodes []prop.Node
	for _, c := range constraints {
		n, err := prop.Parse(c)
		g.Expect(err).ToNot(gomega.HaveOccurred())
		nodes = append(nodes, n)
	}
	m, err := api.NewModel("test", records, nodes)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	gr := graph.New(FreeFeatures(m, core, dead))
	return New(m, gr, core, dead), gr
}

func edge(g *gomega.WithT, gr *graph.Graph, from, to string) graph.Mask {
	m, err := gr.RelationMask(from, to)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	return m
}

// flat is a root with optional leaf children.
func flat(children ...string) []api.Record {
	records := []api.Record{{Name: "Root", Group: api.GroupAnd}}
	for _, c := range children {
		records = append(records, api.Record{Name: c, Parent: "Root"})
	}
	return records
}
