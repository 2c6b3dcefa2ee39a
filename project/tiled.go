package project

import (
	"fmt"

	"github.com/lafriks/go-tiled"
)

// ImportTiledMap derives namespaces from a Tiled map: every object group
// becomes a namespace, and every object in it that carries a "source" custom
// property references an object definition file. Objects without the
// property are placements of something else and are skipped.
func ImportTiledMap(path string) ([]Namespace, error) {
	m, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiled map %s: %w", path, err)
	}

	var namespaces []Namespace
	for _, og := range m.ObjectGroups {
		ns := Namespace{Name: og.Name}
		for _, o := range og.Objects {
			source := o.Properties.GetString("source")
			if source == "" {
				continue
			}
			ns.Objects = append(ns.Objects, Object{File: source})
		}
		if len(ns.Objects) > 0 {
			namespaces = append(namespaces, ns)
		}
	}
	return namespaces, nil
}
