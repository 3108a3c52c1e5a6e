package prop

import (
	"encoding/json"
	"fmt"
)

// Expr wraps a Node for JSON and YAML documents. A constraint is either a
// string in expression syntax (see Parse) or a single-key object:
//
//	{var: A}, {not: X}, {and: [X, Y]}, {or: [X, Y]}, {implies: [X, Y]}
//
// where every operand is again a string or an object.
type Expr struct {
	Node Node
}

type exprObject struct {
	Var     *string `json:"var,omitempty"`
	Not     *Expr   `json:"not,omitempty"`
	And     []Expr  `json:"and,omitempty"`
	Or      []Expr  `json:"or,omitempty"`
	Implies []Expr  `json:"implies,omitempty"`
}

func (e *Expr) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		n, err := Parse(text)
		if err != nil {
			return err
		}
		e.Node = n
		return nil
	}

	obj := exprObject{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("constraint must be a string or an object: %v", err)
	}
	set := 0
	for _, present := range []bool{obj.Var != nil, obj.Not != nil, obj.And != nil, obj.Or != nil, obj.Implies != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("constraint object needs exactly one of var, not, and, or, implies: %s", string(data))
	}

	switch {
	case obj.Var != nil:
		e.Node = Var(*obj.Var)
	case obj.Not != nil:
		e.Node = Not{Child: obj.Not.Node}
	case obj.And != nil:
		e.Node = And{Children: nodes(obj.And)}
	case obj.Or != nil:
		e.Node = Or{Children: nodes(obj.Or)}
	case obj.Implies != nil:
		if len(obj.Implies) != 2 {
			return fmt.Errorf("implies expects 2 operands, got %d", len(obj.Implies))
		}
		e.Node = Implies{Left: obj.Implies[0].Node, Right: obj.Implies[1].Node}
	}
	return nil
}

func (e Expr) MarshalJSON() ([]byte, error) {
	return json.Marshal(toObject(e.Node))
}

func toObject(n Node) interface{} {
	switch t := n.(type) {
	case Literal:
		if t.Positive {
			return map[string]interface{}{"var": t.Var}
		}
		return map[string]interface{}{"not": map[string]interface{}{"var": t.Var}}
	case Not:
		return map[string]interface{}{"not": toObject(t.Child)}
	case And:
		return map[string]interface{}{"and": objects(t.Children)}
	case Or:
		return map[string]interface{}{"or": objects(t.Children)}
	case Implies:
		return map[string]interface{}{"implies": objects([]Node{t.Left, t.Right})}
	default:
		panic(fmt.Sprintf("unknown propositional node %T", n))
	}
}

func objects(children []Node) []interface{} {
	objs := make([]interface{}, 0, len(children))
	for _, c := range children {
		objs = append(objs, toObject(c))
	}
	return objs
}

func nodes(exprs []Expr) []Node {
	ns := make([]Node, 0, len(exprs))
	for _, e := range exprs {
		ns = append(ns, e.Node)
	}
	return ns
}
