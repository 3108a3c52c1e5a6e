package prop

import (
	"fmt"
	"strings"
)

// Node is a propositional expression over feature names. The set of
// implementations is closed: Literal, Not, And, Or and Implies.
type Node interface {
	String() string
	node()
}

type Literal struct {
	Var      string
	Positive bool
}

type Not struct {
	Child Node
}

type And struct {
	Children []Node
}

type Or struct {
	Children []Node
}

type Implies struct {
	Left  Node
	Right Node
}

func (Literal) node() {}
func (Not) node()     {}
func (And) node()     {}
func (Or) node()      {}
func (Implies) node() {}

// Var returns the positive literal of a feature.
func Var(name string) Literal {
	return Literal{Var: name, Positive: true}
}

func (l Literal) Negate() Literal {
	return Literal{Var: l.Var, Positive: !l.Positive}
}

func NewAnd(children ...Node) And {
	return And{Children: children}
}

func NewOr(children ...Node) Or {
	return Or{Children: children}
}

func NewNot(child Node) Not {
	return Not{Child: child}
}

func NewImplies(left, right Node) Implies {
	return Implies{Left: left, Right: right}
}

func (l Literal) String() string {
	if l.Positive {
		return l.Var
	}
	return "not " + l.Var
}

func (n Not) String() string {
	return fmt.Sprintf("not (%s)", n.Child)
}

func (n And) String() string {
	return join(n.Children, " and ")
}

func (n Or) String() string {
	return join(n.Children, " or ")
}

func (n Implies) String() string {
	return fmt.Sprintf("implies(%s, %s)", n.Left, n.Right)
}

func join(children []Node, sep string) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		parts = append(parts, c.String())
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// Children returns the direct operands of n in order. Literals have none.
func Children(n Node) []Node {
	switch t := n.(type) {
	case Literal:
		return nil
	case Not:
		return []Node{t.Child}
	case And:
		return t.Children
	case Or:
		return t.Children
	case Implies:
		return []Node{t.Left, t.Right}
	default:
		panic(fmt.Sprintf("unknown propositional node %T", n))
	}
}

// mapChildren returns a copy of n with f applied to every direct operand.
// The operand slices of n are never written to.
func mapChildren(n Node, f func(Node) Node) Node {
	switch t := n.(type) {
	case Literal:
		return t
	case Not:
		return Not{Child: f(t.Child)}
	case And:
		return And{Children: mapAll(t.Children, f)}
	case Or:
		return Or{Children: mapAll(t.Children, f)}
	case Implies:
		return Implies{Left: f(t.Left), Right: f(t.Right)}
	default:
		panic(fmt.Sprintf("unknown propositional node %T", n))
	}
}

func mapAll(nodes []Node, f func(Node) Node) []Node {
	mapped := make([]Node, len(nodes))
	for i, n := range nodes {
		mapped[i] = f(n)
	}
	return mapped
}
