package prop

import (
	"testing"

	"github.com/onsi/gomega"
	"sigs.k8s.io/yaml"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Node
		wantErr bool
	}{
		{name: "should parse an identifier", input: "a", want: a},
		{name: "should parse not", input: "not a", want: NewNot(a)},
		{name: "should parse !", input: "!a", want: NewNot(a)},
		{name: "should flatten and chains", input: "a and b && c", want: NewAnd(a, b, c)},
		{name: "should flatten or chains", input: "a or b || c", want: NewOr(a, b, c)},
		{name: "should keep precedence", input: "a or b and c", want: NewOr(a, NewAnd(b, c))},
		{name: "should parse implies", input: "implies(a, b or c)", want: NewImplies(a, NewOr(b, c))},
		{name: "should parse iff", input: "iff(a, b)", want: NewAnd(NewImplies(a, b), NewImplies(b, a))},
		{name: "should parse equality as equivalence", input: "a == b", want: NewAnd(NewImplies(a, b), NewImplies(b, a))},
		{name: "should parse negated groups", input: "not (a and b)", want: NewNot(NewAnd(a, b))},
		{name: "should reject arithmetic", input: "a + b", wantErr: true},
		{name: "should reject unknown functions", input: "xor(a, b)", wantErr: true},
		{name: "should reject wrong arity", input: "implies(a)", wantErr: true},
		{name: "should reject syntax errors", input: "a and", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewGomegaWithT(t)
			got, err := Parse(tt.input)
			if tt.wantErr {
				g.Expect(err).To(gomega.HaveOccurred())
				return
			}
			g.Expect(err).ToNot(gomega.HaveOccurred())
			g.Expect(got).To(gomega.Equal(tt.want))
		})
	}
}

func TestParseString(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	for _, n := range []Node{
		NewImplies(NewOr(a, b.Negate()), NewAnd(c, d)),
		NewNot(NewOr(a, b, c)),
		a.Negate(),
	} {
		parsed, err := Parse(n.String())
		g.Expect(err).ToNot(gomega.HaveOccurred())
		expectEquivalent(g, []Node{parsed}, n)
	}
}

func TestExprYAML(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    []Node
		wantErr bool
	}{
		{
			name: "should decode strings and objects",
			doc: `
- "implies(a, b)"
- {or: [{not: a}, b]}
- {implies: [{and: [a, {var: b}]}, "not c"]}
`,
			want: []Node{
				NewImplies(a, b),
				NewOr(NewNot(a), b),
				NewImplies(NewAnd(a, b), NewNot(c)),
			},
		},
		{
			name:    "should reject objects with two operators",
			doc:     `- {and: [a, b], or: [a, b]}`,
			wantErr: true,
		},
		{
			name:    "should reject implies with one operand",
			doc:     `- {implies: [a]}`,
			wantErr: true,
		},
		{
			name:    "should reject invalid expressions",
			doc:     `- "a +"`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewGomegaWithT(t)
			var exprs []Expr
			err := yaml.Unmarshal([]byte(tt.doc), &exprs)
			if tt.wantErr {
				g.Expect(err).To(gomega.HaveOccurred())
				return
			}
			g.Expect(err).ToNot(gomega.HaveOccurred())
			g.Expect(nodes(exprs)).To(gomega.Equal(tt.want))
		})
	}
}

func TestExprRoundTrip(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	given := Expr{Node: NewImplies(NewOr(a, b.Negate()), NewNot(NewAnd(c, d)))}

	data, err := yaml.Marshal(given)
	g.Expect(err).ToNot(gomega.HaveOccurred())

	decoded := Expr{}
	g.Expect(yaml.Unmarshal(data, &decoded)).To(gomega.Succeed())
	expectEquivalent(g, []Node{decoded.Node}, given.Node)
}
