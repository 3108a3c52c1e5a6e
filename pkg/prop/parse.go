package prop

import (
	"fmt"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

// Parse reads a constraint written in expression syntax, for example
//
//	implies(Navigation, GPS and not Gas)
//	not (Gas and Audio)
//	Electric || Battery
//
// Identifiers are feature names. Supported are the unary operators "not"
// and "!", the binary operators "and", "&&", "or", "||" and "==" (equivalence)
// and the calls implies(a, b) and iff(a, b).
func Parse(input string) (Node, error) {
	tree, err := parser.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse constraint %q: %v", input, err)
	}
	n, err := fromAST(tree.Node)
	if err != nil {
		return nil, fmt.Errorf("failed to parse constraint %q: %v", input, err)
	}
	return n, nil
}

func fromAST(node ast.Node) (Node, error) {
	switch n := node.(type) {
	case *ast.IdentifierNode:
		return Var(n.Value), nil
	case *ast.UnaryNode:
		if n.Operator != "not" && n.Operator != "!" {
			return nil, fmt.Errorf("unsupported unary operator %q", n.Operator)
		}
		child, err := fromAST(n.Node)
		if err != nil {
			return nil, err
		}
		return Not{Child: child}, nil
	case *ast.BinaryNode:
		left, err := fromAST(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := fromAST(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Operator {
		case "and", "&&":
			return And{Children: flatten(true, left, right)}, nil
		case "or", "||":
			return Or{Children: flatten(false, left, right)}, nil
		case "==":
			return equivalence(left, right), nil
		default:
			return nil, fmt.Errorf("unsupported binary operator %q", n.Operator)
		}
	case *ast.CallNode:
		callee, ok := n.Callee.(*ast.IdentifierNode)
		if !ok {
			return nil, fmt.Errorf("unsupported call %v", n.Callee)
		}
		if len(n.Arguments) != 2 {
			return nil, fmt.Errorf("%s expects 2 arguments, got %d", callee.Value, len(n.Arguments))
		}
		left, err := fromAST(n.Arguments[0])
		if err != nil {
			return nil, err
		}
		right, err := fromAST(n.Arguments[1])
		if err != nil {
			return nil, err
		}
		switch callee.Value {
		case "implies":
			return Implies{Left: left, Right: right}, nil
		case "iff":
			return equivalence(left, right), nil
		default:
			return nil, fmt.Errorf("unknown function %s", callee.Value)
		}
	default:
		return nil, fmt.Errorf("unsupported expression %T", node)
	}
}

func equivalence(left, right Node) Node {
	return And{Children: []Node{
		Implies{Left: left, Right: right},
		Implies{Left: right, Right: left},
	}}
}

// flatten merges chains like "a and b and c", which the parser nests as
// binary nodes, into one n-ary operand list.
func flatten(conjunction bool, operands ...Node) []Node {
	var flat []Node
	for _, o := range operands {
		switch t := o.(type) {
		case And:
			if conjunction {
				flat = append(flat, t.Children...)
				continue
			}
		case Or:
			if !conjunction {
				flat = append(flat, t.Children...)
				continue
			}
		}
		flat = append(flat, o)
	}
	return flat
}
