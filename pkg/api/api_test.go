package api

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	. "github.com/onsi/gomega"
	"github.com/rmohr/featgraph/pkg/prop"
)

func car() []Record {
	return []Record{
		{Name: "Car", Group: GroupAnd},
		{Name: "Engine", Parent: "Car", Group: GroupAlternative, Mandatory: true},
		{Name: "Electric", Parent: "Engine"},
		{Name: "Gas", Parent: "Engine"},
		{Name: "Comfort", Parent: "Car", Group: GroupOr},
		{Name: "Heating", Parent: "Comfort"},
		{Name: "Audio", Parent: "Comfort"},
	}
}

func TestNewModel(t *testing.T) {
	g := NewGomegaWithT(t)
	m, err := NewModel("car", car(), []prop.Node{prop.NewImplies(prop.Var("Audio"), prop.Var("Electric"))})
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(m.Names()).To(Equal([]string{"Car", "Engine", "Electric", "Gas", "Comfort", "Heating", "Audio"}))
	g.Expect(m.Root()).To(Equal(0))
	g.Expect(m.Feature("Car").Parent).To(Equal(NoParent))
	g.Expect(m.Feature("Engine").Children).To(Equal([]int{2, 3}))
	g.Expect(m.Feature("Engine").IsAlternative()).To(BeTrue())
	g.Expect(m.Feature("Engine").Mandatory).To(BeTrue())
	g.Expect(m.Feature("Comfort").IsOr()).To(BeTrue())
	g.Expect(m.Feature("Gas").Group).To(Equal(GroupLeaf))
	g.Expect(m.Feature("Gas").Parent).To(Equal(1))
	g.Expect(m.Feature("Missing")).To(BeNil())

	i, ok := m.Index("Audio")
	g.Expect(ok).To(BeTrue())
	g.Expect(i).To(Equal(6))
}

func TestTraverse(t *testing.T) {
	g := NewGomegaWithT(t)
	records := []Record{
		{Name: "Root"},
		{Name: "A1", Parent: "B"},
		{Name: "B", Parent: "Root"},
		{Name: "A", Parent: "Root"},
		{Name: "B1", Parent: "A"},
	}
	m, err := NewModel("bfs", records, nil)
	g.Expect(err).ToNot(HaveOccurred())

	var names []string
	for _, i := range m.Traverse() {
		names = append(names, m.Features[i].Name)
	}
	g.Expect(names).To(Equal([]string{"Root", "B", "A", "A1", "B1"}))
	g.Expect(m.Feature("Root").IsAnd()).To(BeTrue())
}

func TestNewModelValidation(t *testing.T) {
	tests := []struct {
		name        string
		records     []Record
		constraints []prop.Node
		wantErrs    []string
	}{
		{
			name:     "should reject duplicate features",
			records:  append(car(), Record{Name: "Gas", Parent: "Car"}),
			wantErrs: []string{"feature Gas is defined more than once"},
		},
		{
			name:     "should reject unknown parents",
			records:  append(car(), Record{Name: "Radio", Parent: "Media"}),
			wantErrs: []string{"feature Radio has unknown parent Media"},
		},
		{
			name:     "should reject a second root",
			records:  append(car(), Record{Name: "Truck"}),
			wantErrs: []string{"feature Truck has no parent but Car is already the root"},
		},
		{
			name: "should reject models without root",
			records: []Record{
				{Name: "A", Parent: "B"},
				{Name: "B", Parent: "A"},
			},
			wantErrs: []string{"feature model test has no root feature"},
		},
		{
			name: "should reject parent cycles",
			records: append(car(),
				Record{Name: "X", Parent: "Y"},
				Record{Name: "Y", Parent: "X"},
			),
			wantErrs: []string{
				"feature X is part of a parent cycle",
				"feature Y is part of a parent cycle",
			},
		},
		{
			name:     "should reject leaves with children",
			records:  append(car(), Record{Name: "Wheels", Parent: "Car", Group: GroupLeaf}, Record{Name: "Rim", Parent: "Wheels"}),
			wantErrs: []string{"leaf feature Wheels has children"},
		},
		{
			name:     "should reject unknown group kinds",
			records:  append(car(), Record{Name: "Wheels", Parent: "Car", Group: "xor"}),
			wantErrs: []string{`feature Wheels has unknown group kind "xor"`},
		},
		{
			name:        "should reject constraints on unknown features",
			records:     car(),
			constraints: []prop.Node{prop.NewImplies(prop.Var("Audio"), prop.Var("Radio"))},
			wantErrs:    []string{"constraint implies(Audio, Radio) references unknown feature Radio"},
		},
		{
			name: "should report every violation",
			records: append(car(),
				Record{Name: "Gas", Parent: "Car"},
				Record{Name: "Radio", Parent: "Media"},
			),
			constraints: []prop.Node{prop.Var("Phone")},
			wantErrs: []string{
				"feature Gas is defined more than once",
				"feature Radio has unknown parent Media",
				"constraint Phone references unknown feature Phone",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			m, err := NewModel("test", tt.records, tt.constraints)
			g.Expect(err).To(HaveOccurred())
			g.Expect(m).To(BeNil())

			merr, ok := err.(*multierror.Error)
			g.Expect(ok).To(BeTrue())
			var messages []string
			for _, e := range merr.Errors {
				messages = append(messages, e.Error())
			}
			g.Expect(messages).To(ConsistOf(tt.wantErrs))
		})
	}
}

func TestSetAnalysis(t *testing.T) {
	g := NewGomegaWithT(t)
	m, err := NewModel("car", car(), nil)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(m.HasAnalysis()).To(BeFalse())

	g.Expect(m.SetAnalysis([]string{"Car", "Engine"}, []string{})).To(Succeed())
	g.Expect(m.HasAnalysis()).To(BeTrue())
	g.Expect(m.Core).To(ConsistOf("Car", "Engine"))

	g.Expect(m.SetAnalysis([]string{"Boat"}, nil)).To(MatchError(ContainSubstring("unknown feature Boat")))
}
