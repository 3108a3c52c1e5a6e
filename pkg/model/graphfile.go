package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rmohr/featgraph/pkg/api/featgraph"
	"sigs.k8s.io/yaml"
)

// WriteGraphFile stores a graph document as YAML if path ends in .yaml or
// .yml, as indented JSON otherwise. Missing directories are created.
func WriteGraphFile(path string, doc *featgraph.Graph) error {
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return fmt.Errorf("failed to create directory for %s: %v", path, err)
	}
	var data []byte
	var err error
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "\t")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func LoadGraphFile(path string) (*featgraph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := &featgraph.Graph{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse graph file %s: %v", path, err)
	}
	return doc, nil
}
