package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "project.yaml", `name: Village
source: assets
namespaces:
  - name: buildings
    objects:
      - file: objects/well.xml
      - file: objects/barn.xml
  - name: props
    objects:
      - file: objects/cart.xml
`)

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Village" {
		t.Errorf("expected project name Village, got %q", p.Name)
	}
	if len(p.Namespaces) != 2 {
		t.Fatalf("expected 2 namespaces, got %d", len(p.Namespaces))
	}
	if got := p.Namespaces[0].Objects[1].Filename(); got != "objects/barn.xml" {
		t.Errorf("unexpected object file %q", got)
	}
	if want := filepath.Join(dir, "assets"); p.SourceRoot() != want {
		t.Errorf("expected source root %q, got %q", want, p.SourceRoot())
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "project.yaml", "name: [unterminated")

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestSourceRootAbsolute(t *testing.T) {
	abs := t.TempDir()
	p := &Project{Source: abs, dir: "/somewhere/else"}
	if p.SourceRoot() != abs {
		t.Errorf("expected absolute source to pass through, got %q", p.SourceRoot())
	}
}

func TestAddNamespacesMergesByName(t *testing.T) {
	p := &Project{Namespaces: []Namespace{
		{Name: "props", Objects: []Object{{File: "a.xml"}}},
	}}

	p.AddNamespaces([]Namespace{
		{Name: "props", Objects: []Object{{File: "b.xml"}}},
		{Name: "actors", Objects: []Object{{File: "c.xml"}}},
	})

	if len(p.Namespaces) != 2 {
		t.Fatalf("expected 2 namespaces, got %d", len(p.Namespaces))
	}
	props := p.Namespaces[0]
	if len(props.Objects) != 2 || props.Objects[1].File != "b.xml" {
		t.Errorf("expected props to absorb b.xml, got %+v", props.Objects)
	}
	if p.Namespaces[1].Name != "actors" {
		t.Errorf("expected the new namespace to be appended, got %q", p.Namespaces[1].Name)
	}
}

func TestImportTiledMap(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "village.tmx", `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="32" tileheight="32" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="props">
  <object id="1" name="well" x="32" y="32">
   <properties>
    <property name="source" value="objects/well.xml"/>
   </properties>
  </object>
  <object id="2" name="decor" x="64" y="64"/>
 </objectgroup>
 <objectgroup id="2" name="markers"/>
</map>
`)

	namespaces, err := ImportTiledMap(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(namespaces) != 1 {
		t.Fatalf("expected one namespace with sourced objects, got %d", len(namespaces))
	}
	ns := namespaces[0]
	if ns.Name != "props" {
		t.Errorf("expected namespace props, got %q", ns.Name)
	}
	if len(ns.Objects) != 1 || ns.Objects[0].File != "objects/well.xml" {
		t.Errorf("unexpected objects %+v", ns.Objects)
	}
}
