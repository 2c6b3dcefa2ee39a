package main

import (
	"flag"
	"image"
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tilewright/editor/config"
	"github.com/tilewright/editor/fonts"
	"github.com/tilewright/editor/project"
	"github.com/tilewright/editor/textures"
	"github.com/tilewright/editor/toolbar"
)

// Editor is the ebiten shell around the toolbar page.
type Editor struct {
	bounds image.Rectangle
	page   *toolbar.Page
}

func (e *Editor) Update() error {
	e.page.Update()
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	e.page.Draw(screen)
}

func (e *Editor) Layout(width, height int) (int, int) {
	e.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	projectPath := flag.String("project", "project.yaml", "path to the project file")
	tiledMap := flag.String("tiled", "", "optional Tiled map to import object namespaces from")
	flag.Parse()

	proj, err := project.Load(*projectPath)
	if err != nil {
		log.Fatalf("Failed to load project: %v", err)
	}
	if *tiledMap != "" {
		namespaces, err := project.ImportTiledMap(*tiledMap)
		if err != nil {
			log.Fatalf("Failed to import tiled map: %v", err)
		}
		proj.AddNamespaces(namespaces)
	}

	fonts.LoadDefaults()
	if err := toolbar.InitPersistence(); err != nil {
		slog.Warn("toolbar state will not be persisted", "error", err)
	}

	registry := textures.NewRegistry()
	tb := toolbar.New(toolbar.NewRegistryRenderer(registry), proj)
	tb.UpdateItems()
	tb.RestoreSelection()

	page := toolbar.NewPage(tb, registry)
	page.OnSelect = func(id string) {
		slog.Info("object selected for placement", "id", id)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&Editor{page: page}); err != nil {
		log.Fatal(err)
	}
}
