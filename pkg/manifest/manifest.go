package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Class is one generated class file recorded in the manifest.
type Class struct {
	Name string `yaml:"name" json:"name"`
	File string `yaml:"file" json:"file"`
}

// Manifest records the outcome of the last generation run.
type Manifest struct {
	Input      string  `yaml:"input" json:"input"`
	TypeChecks bool    `yaml:"type_checks" json:"type_checks"`
	Classes    []Class `yaml:"classes" json:"classes"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Stale returns the recorded classes whose files are not in current.
func (m *Manifest) Stale(current []Class) []Class {
	keep := make(map[string]bool, len(current))
	for _, c := range current {
		keep[c.File] = true
	}
	var stale []Class
	for _, c := range m.Classes {
		if !keep[c.File] {
			stale = append(stale, c)
		}
	}
	return stale
}

// Record replaces the manifest contents with the given run and returns the
// classes of the previous run that it no longer produces.
func (m *Manifest) Record(input string, typeChecks bool, classes []Class) []Class {
	stale := m.Stale(classes)
	m.Input = input
	m.TypeChecks = typeChecks
	m.Classes = append([]Class(nil), classes...)
	return stale
}

// File returns the file recorded for the named class, if present.
func (m *Manifest) File(name string) string {
	for _, c := range m.Classes {
		if c.Name == name {
			return c.File
		}
	}
	return ""
}
