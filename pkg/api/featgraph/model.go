package featgraph

import "github.com/rmohr/featgraph/pkg/prop"

// Model is the on-disk form of a feature model. Features are given either as
// a nested tree via Children or flat with Parent references.
type Model struct {
	Name        string      `json:"name"`
	Features    []Feature   `json:"features"`
	Constraints []prop.Expr `json:"constraints,omitempty"`
	Core        []string    `json:"core,omitempty"`
	Dead        []string    `json:"dead,omitempty"`
}

type Feature struct {
	Name      string    `json:"name"`
	Parent    string    `json:"parent,omitempty"`
	Group     string    `json:"group,omitempty"`
	Mandatory bool      `json:"mandatory,omitempty"`
	Children  []Feature `json:"children,omitempty"`
}
