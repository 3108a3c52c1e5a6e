package prop

import (
	"testing"

	"github.com/crillab/gophersat/bf"
	"github.com/onsi/gomega"
)

var (
	a = Var("a")
	b = Var("b")
	c = Var("c")
	d = Var("d")
)

// expectEquivalent evaluates both formulas under every assignment of the
// referenced features.
func expectEquivalent(g *gomega.WithT, got []Node, want Node) {
	names := Features(append([]Node{want}, got...)...)
	conjunction := bf.And(toBFAll(got)...)
	for i := 0; i < 1<<len(names); i++ {
		assignment := map[string]bool{}
		for j, name := range names {
			assignment[name] = (i>>j)&1 == 1
		}
		g.Expect(conjunction.Eval(assignment)).To(gomega.Equal(ToBF(want).Eval(assignment)), "assignment %v", assignment)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		given Node
		want  []Node
	}{
		{
			name:  "should keep a literal",
			given: a,
			want:  []Node{a},
		},
		{
			name:  "should turn a negated literal into a negative literal",
			given: NewNot(a),
			want:  []Node{a.Negate()},
		},
		{
			name:  "should remove double negation",
			given: NewNot(NewNot(a)),
			want:  []Node{a},
		},
		{
			name:  "should remove triple negation",
			given: NewNot(NewNot(NewNot(a))),
			want:  []Node{a.Negate()},
		},
		{
			name:  "should push negation into a conjunction",
			given: NewNot(NewAnd(a, b)),
			want:  []Node{NewImplies(a, b.Negate())},
		},
		{
			name:  "should rewrite a binary disjunction as implication",
			given: NewOr(a, b),
			want:  []Node{NewImplies(a.Negate(), b)},
		},
		{
			name:  "should keep a disjunction with three operands",
			given: NewOr(a, b, c),
			want:  []Node{NewOr(a, b, c)},
		},
		{
			name:  "should split a conjunction into conjuncts",
			given: NewAnd(NewImplies(a, b), NewOr(c, d), NewNot(a)),
			want:  []Node{NewImplies(a, b), NewImplies(c.Negate(), d), a.Negate()},
		},
		{
			name:  "should not rewrite a disjunction below an implication",
			given: NewImplies(a, NewOr(b, c)),
			want:  []Node{NewImplies(a, NewOr(b, c))},
		},
		{
			name:  "should keep a negated conjunction produced by the disjunction rewrite",
			given: NewOr(NewAnd(a, b), c),
			want:  []Node{NewImplies(NewNot(NewAnd(a, b)), c)},
		},
		{
			name:  "should only split the top-level conjunction",
			given: NewAnd(NewAnd(a, b), c),
			want:  []Node{NewAnd(a, b), c},
		},
		{
			name:  "should negate literals inside an implication",
			given: NewImplies(NewNot(a), NewNot(NewNot(b))),
			want:  []Node{NewImplies(a.Negate(), b)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewGomegaWithT(t)
			got := Normalize(tt.given)
			g.Expect(got).To(gomega.Equal(tt.want))
			expectEquivalent(g, got, tt.given)
		})
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	given := NewAnd(NewNot(NewNot(a)), NewOr(b, c))
	before := given.String()

	Normalize(given)

	g.Expect(given.String()).To(gomega.Equal(before))
	g.Expect(given.Children[0]).To(gomega.Equal(NewNot(NewNot(a))))
}

func TestFeatures(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	g.Expect(Features(NewImplies(NewOr(c, a.Negate()), NewAnd(b, NewNot(a))), d)).To(gomega.Equal([]string{"a", "b", "c", "d"}))
	g.Expect(Features()).To(gomega.BeEmpty())
}
