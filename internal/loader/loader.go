// Package loader reads a model tree from a YAML document.
//
//	nodes:
//	  - kind: type
//	    name: book
//	    children:
//	      - {kind: attribute, name: title, type: string}
//	      - kind: structure
//	        name: format
//	        structure: choice
//	        children:
//	          - {kind: element, name: hardcover, type: boolean}
//	      - kind: attribute
//	        name: binding
//	        children:
//	          - {kind: enumeration, name: binding, values: [paper, cloth]}
package loader

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cmmoran/pibxgen/internal/model"
)

var ErrInvalidDocument = errors.New("invalid document")

type document struct {
	Nodes []nodeSpec `yaml:"nodes"`
}

type nodeSpec struct {
	Kind      string     `yaml:"kind"`
	Name      string     `yaml:"name"`
	Type      string     `yaml:"type,omitempty"`
	Structure string     `yaml:"structure,omitempty"`
	Values    []string   `yaml:"values,omitempty"`
	Children  []nodeSpec `yaml:"children,omitempty"`
}

// Load reads and parses the document at path.
func Load(path string) ([]*model.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	roots, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return roots, nil
}

// Parse builds the top-level nodes of a document and checks that the
// resulting tree is well formed.
func Parse(data []byte) ([]*model.Node, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	roots := make([]*model.Node, 0, len(doc.Nodes))
	for i, spec := range doc.Nodes {
		n, err := build(spec, fmt.Sprintf("nodes[%d]", i))
		if err != nil {
			return nil, err
		}
		roots = append(roots, n)
	}

	if err := model.Validate(roots...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return roots, nil
}

func build(spec nodeSpec, at string) (*model.Node, error) {
	kind, err := model.ParseKind(spec.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, at, err)
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: %s: %s without a name", ErrInvalidDocument, at, kind)
	}

	n := model.NewNode(kind, spec.Name)
	n.Type = spec.Type

	if spec.Structure != "" && kind != model.KindStructure {
		return nil, fmt.Errorf("%w: %s: structure tag on a %s", ErrInvalidDocument, at, kind)
	}
	if kind == model.KindStructure {
		if n.StructureType, err = model.ParseStructureType(spec.Structure); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, at, err)
		}
	}

	if len(spec.Values) > 0 {
		if kind != model.KindEnumeration {
			return nil, fmt.Errorf("%w: %s: values on a %s", ErrInvalidDocument, at, kind)
		}
		for _, v := range spec.Values {
			n.Add(model.NewEnumerationValue(v))
		}
	}

	for i, cs := range spec.Children {
		c, err := build(cs, fmt.Sprintf("%s.children[%d]", at, i))
		if err != nil {
			return nil, err
		}
		n.Add(c)
	}
	return n, nil
}
