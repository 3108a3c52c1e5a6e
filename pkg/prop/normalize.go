package prop

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Normalize rewrites a constraint into a list of simplified conjuncts.
//
// Negated conjunctions are pushed down with de Morgan, binary disjunctions
// reachable through conjunctions become implications, negations of literals
// and double negations are removed, and a top-level conjunction is split into
// its direct operands. Every conjunct is a Literal, Implies, And or Or (or a
// remaining Not over a shape the rewrite does not handle). The conjunction of
// the result is equivalent to n.
func Normalize(n Node) []Node {
	n = deMorgan(n)
	n = orToImplies(n)
	n = eliminateNot(n)
	if and, ok := n.(And); ok {
		conjuncts := make([]Node, len(and.Children))
		copy(conjuncts, and.Children)
		return conjuncts
	}
	return []Node{n}
}

func deMorgan(n Node) Node {
	if not, ok := n.(Not); ok {
		if and, ok := not.Child.(And); ok {
			negated := make([]Node, len(and.Children))
			for i, c := range and.Children {
				negated[i] = Not{Child: c}
			}
			n = Or{Children: negated}
		}
	}
	return mapChildren(n, deMorgan)
}

// orToImplies only descends through conjunctions; disjunctions below other
// operators are left for the clique fallback.
func orToImplies(n Node) Node {
	switch t := n.(type) {
	case Or:
		if len(t.Children) == 2 {
			return Implies{Left: Not{Child: t.Children[0]}, Right: t.Children[1]}
		}
	case And:
		return mapChildren(t, orToImplies)
	}
	return n
}

func eliminateNot(n Node) Node {
	if not, ok := n.(Not); ok {
		switch c := not.Child.(type) {
		case Literal:
			return c.Negate()
		case Not:
			return eliminateNot(c.Child)
		}
	}
	return mapChildren(n, eliminateNot)
}

// Features returns the sorted, de-duplicated names of all features
// referenced anywhere in the given nodes.
func Features(nodes ...Node) []string {
	names := map[string]struct{}{}
	for _, n := range nodes {
		collect(n, names)
	}
	keys := maps.Keys(names)
	slices.Sort(keys)
	return keys
}

func collect(n Node, names map[string]struct{}) {
	if l, ok := n.(Literal); ok {
		names[l.Var] = struct{}{}
		return
	}
	for _, c := range Children(n) {
		collect(c, names)
	}
}
