package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rmohr/featgraph/pkg/api"
	"github.com/rmohr/featgraph/pkg/api/featgraph"
	"github.com/rmohr/featgraph/pkg/prop"
	"sigs.k8s.io/yaml"
)

// LoadModelFile reads a feature model from a YAML or JSON file. A model
// without a name is named after the file.
func LoadModelFile(file string) (*api.Model, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	doc := &featgraph.Model{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse model file %s: %v", file, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	return FromDocument(doc)
}

// FromDocument resolves a model document into a validated model. Nested
// children take the enclosing feature as parent.
func FromDocument(doc *featgraph.Model) (*api.Model, error) {
	var records []api.Record
	for _, f := range doc.Features {
		var err error
		if records, err = flatten(records, f, f.Parent); err != nil {
			return nil, err
		}
	}
	var constraints []prop.Node
	for i, c := range doc.Constraints {
		if c.Node == nil {
			return nil, fmt.Errorf("constraint %d of model %s is empty", i, doc.Name)
		}
		constraints = append(constraints, c.Node)
	}
	m, err := api.NewModel(doc.Name, records, constraints)
	if err != nil {
		return nil, fmt.Errorf("invalid feature model %s: %v", doc.Name, err)
	}
	if doc.Core != nil || doc.Dead != nil {
		if err := m.SetAnalysis(doc.Core, doc.Dead); err != nil {
			return nil, fmt.Errorf("invalid feature model %s: %v", doc.Name, err)
		}
	}
	return m, nil
}

func flatten(records []api.Record, f featgraph.Feature, parent string) ([]api.Record, error) {
	if f.Parent != "" && f.Parent != parent {
		return nil, fmt.Errorf("feature %s is nested below %s but names %s as parent", f.Name, parent, f.Parent)
	}
	records = append(records, api.Record{
		Name:      f.Name,
		Parent:    parent,
		Group:     api.GroupKind(f.Group),
		Mandatory: f.Mandatory,
	})
	for _, c := range f.Children {
		var err error
		if records, err = flatten(records, c, f.Name); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// LoadConfig reads a build configuration file.
func LoadConfig(file string) (*featgraph.Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	config := &featgraph.Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %v", file, err)
	}
	return config, nil
}

// DefaultOutput returns the graph file of the named model in the user's
// cache directory.
func DefaultOutput(name string) (string, error) {
	path, err := xdg.CacheFile(filepath.Join("featgraph", name+".json"))
	if err != nil {
		return "", fmt.Errorf("failed to determine output location for %s: %v", name, err)
	}
	return path, nil
}
