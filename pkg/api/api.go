package api

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/rmohr/featgraph/pkg/prop"
)

type GroupKind string

const (
	GroupAnd         GroupKind = "and"
	GroupOr          GroupKind = "or"
	GroupAlternative GroupKind = "alternative"
	GroupLeaf        GroupKind = "leaf"
)

// NoParent is the parent index of the root feature.
const NoParent = -1

// Feature is one record of the model arena. Parent and Children are indices
// into Model.Features.
type Feature struct {
	Name      string
	Group     GroupKind
	Mandatory bool
	Parent    int
	Children  []int
}

func (f *Feature) IsAnd() bool {
	return f.Group == GroupAnd
}

func (f *Feature) IsOr() bool {
	return f.Group == GroupOr
}

func (f *Feature) IsAlternative() bool {
	return f.Group == GroupAlternative
}

// Record describes a feature before parent names are resolved.
type Record struct {
	Name      string
	Parent    string
	Group     GroupKind
	Mandatory bool
}

type Model struct {
	Name        string
	Features    []Feature
	Constraints []prop.Node
	// Core and Dead are optional precomputed analysis results.
	Core  []string
	Dead  []string
	index map[string]int
	root  int
}

// NewModel resolves the records into a feature tree and validates it. Every
// violation found is reported, not only the first one.
func NewModel(name string, records []Record, constraints []prop.Node) (*Model, error) {
	m := &Model{
		Name:        name,
		Constraints: constraints,
		index:       map[string]int{},
		root:        NoParent,
	}
	var result *multierror.Error

	resolved := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Name == "" {
			result = multierror.Append(result, fmt.Errorf("feature without a name"))
			continue
		}
		if _, exists := m.index[r.Name]; exists {
			result = multierror.Append(result, fmt.Errorf("feature %s is defined more than once", r.Name))
			continue
		}
		m.index[r.Name] = len(m.Features)
		resolved = append(resolved, r)
		m.Features = append(m.Features, Feature{
			Name:      r.Name,
			Group:     r.Group,
			Mandatory: r.Mandatory,
			Parent:    NoParent,
		})
	}

	for i, r := range resolved {
		if r.Parent == "" {
			if m.root != NoParent {
				result = multierror.Append(result, fmt.Errorf("feature %s has no parent but %s is already the root", r.Name, m.Features[m.root].Name))
				continue
			}
			m.root = i
			continue
		}
		p, ok := m.index[r.Parent]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("feature %s has unknown parent %s", r.Name, r.Parent))
			continue
		}
		m.Features[i].Parent = p
		m.Features[p].Children = append(m.Features[p].Children, i)
	}

	if len(m.Features) > 0 && m.root == NoParent {
		result = multierror.Append(result, fmt.Errorf("feature model %s has no root feature", name))
	}

	for i := range m.Features {
		f := &m.Features[i]
		switch f.Group {
		case "":
			f.Group = GroupAnd
		case GroupAnd, GroupOr, GroupAlternative:
		case GroupLeaf:
			if len(f.Children) > 0 {
				result = multierror.Append(result, fmt.Errorf("leaf feature %s has children", f.Name))
			}
		default:
			result = multierror.Append(result, fmt.Errorf("feature %s has unknown group kind %q", f.Name, f.Group))
		}
		if len(f.Children) == 0 && f.Group != GroupLeaf {
			f.Group = GroupLeaf
		}
	}

	if m.root != NoParent {
		reached := map[int]bool{}
		for _, i := range m.Traverse() {
			reached[i] = true
		}
		for i, f := range m.Features {
			if !reached[i] && f.Parent != NoParent {
				result = multierror.Append(result, fmt.Errorf("feature %s is part of a parent cycle", f.Name))
			}
		}
	}

	for _, c := range constraints {
		for _, name := range prop.Features(c) {
			if _, ok := m.index[name]; !ok {
				result = multierror.Append(result, fmt.Errorf("constraint %s references unknown feature %s", c, name))
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) Index(name string) (int, bool) {
	i, ok := m.index[name]
	return i, ok
}

// Feature returns the record of the named feature or nil.
func (m *Model) Feature(name string) *Feature {
	i, ok := m.index[name]
	if !ok {
		return nil
	}
	return &m.Features[i]
}

// Root returns the index of the root feature, NoParent for an empty model.
func (m *Model) Root() int {
	return m.root
}

// Names returns all feature names in declaration order.
func (m *Model) Names() []string {
	names := make([]string, 0, len(m.Features))
	for _, f := range m.Features {
		names = append(names, f.Name)
	}
	return names
}

// Traverse visits the tree breadth first from the root and returns the
// feature indices in visiting order.
func (m *Model) Traverse() (order []int) {
	if m.root == NoParent {
		return nil
	}
	queue := []int{m.root}
	seen := map[int]bool{m.root: true}
	for {
		if len(queue) == 0 {
			break
		}
		next := queue[0]
		queue = queue[1:]
		order = append(order, next)
		for _, c := range m.Features[next].Children {
			if !seen[c] {
				seen[c] = true
				queue = append(queue, c)
			}
		}
	}
	return
}

// SetAnalysis stores precomputed core and dead features on the model.
func (m *Model) SetAnalysis(core, dead []string) error {
	var result *multierror.Error
	for _, names := range [][]string{core, dead} {
		for _, name := range names {
			if _, ok := m.index[name]; !ok {
				result = multierror.Append(result, fmt.Errorf("analysis result references unknown feature %s", name))
			}
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	m.Core = core
	m.Dead = dead
	return nil
}

// HasAnalysis reports whether core or dead features were supplied.
func (m *Model) HasAnalysis() bool {
	return m.Core != nil || m.Dead != nil
}
