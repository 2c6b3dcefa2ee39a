// Package project is the editor's view of a map project: a source root plus
// namespaces of placeable objects, each naming its object definition file.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Object is one placeable object registered with the project model.
type Object struct {
	File string `yaml:"file"`
}

// Filename returns the object definition file, relative to the source root.
func (o Object) Filename() string { return o.File }

// Namespace groups the objects of one logical namespace.
type Namespace struct {
	Name    string   `yaml:"name"`
	Objects []Object `yaml:"objects"`
}

// Project is a loaded project file.
type Project struct {
	Name       string      `yaml:"name"`
	Source     string      `yaml:"source"`
	Namespaces []Namespace `yaml:"namespaces"`

	dir string // directory of the project file
}

// Load reads a project definition from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project file %s: %w", path, err)
	}
	p.dir = filepath.Dir(path)
	return &p, nil
}

// SourceRoot returns the directory object filenames resolve against. A
// relative source is taken relative to the project file.
func (p *Project) SourceRoot() string {
	if filepath.IsAbs(p.Source) {
		return p.Source
	}
	return filepath.Join(p.dir, p.Source)
}

// AddNamespaces merges extra namespaces into the project, appending to an
// existing namespace when the name matches.
func (p *Project) AddNamespaces(namespaces []Namespace) {
	for _, ns := range namespaces {
		merged := false
		for i := range p.Namespaces {
			if p.Namespaces[i].Name == ns.Name {
				p.Namespaces[i].Objects = append(p.Namespaces[i].Objects, ns.Objects...)
				merged = true
				break
			}
		}
		if !merged {
			p.Namespaces = append(p.Namespaces, ns)
		}
	}
}
