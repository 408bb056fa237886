package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/scenekit/internal/application/game"
	"github.com/younwookim/scenekit/internal/application/overlay"
	"github.com/younwookim/scenekit/internal/application/scene"
	"github.com/younwookim/scenekit/internal/application/scene/demo"
	"github.com/younwookim/scenekit/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	sceneFlag := flag.String("scene", "", "Start scene name (overrides app.json)")
	versionFlag := flag.String("version", "", "Version shown by the overlay (overrides app.json)")
	flag.Parse()

	// Load configuration using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadApp()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *sceneFlag != "" {
		cfg.Startup.Scene = *sceneFlag
	}
	if *versionFlag != "" {
		cfg.App.Version = *versionFlag
	}

	g, registry, err := build(cfg)
	if err != nil {
		log.Fatalf("Failed to set up game: %v", err)
	}

	// Load the first scene
	start := scene.NewDescriptor(cfg.Startup.Scene, registry, g)
	if start.Target == scene.InvalidID {
		log.Fatalf("Unknown start scene: %s", cfg.Startup.Scene)
	}
	start.Mode = cfg.Startup.Mode
	start.Async = cfg.Startup.Async
	start.Load()

	// Set up ebiten
	d := cfg.Display
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(cfg.App.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(d.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// build creates the game loop and registers the configured build list.
func build(cfg *config.AppConfig) (*game.Game, *scene.Registry, error) {
	var fps *overlay.Framerate
	if cfg.Overlay.Enabled {
		src, err := overlay.DefaultFaceSource()
		if err != nil {
			return nil, nil, err
		}
		fps = overlay.NewFramerate(cfg.App.Version, src)
	}

	d := cfg.Display
	registry := scene.NewRegistry()
	g := game.New(registry, fps, d.ScreenWidth, d.ScreenHeight)
	g.SetDT(1.0 / float64(d.Framerate))

	factories := demo.Factories(registry, g, d.ScreenWidth, d.ScreenHeight)
	for _, name := range cfg.Scenes {
		f, ok := factories[name]
		if !ok {
			return nil, nil, fmt.Errorf("no scene named %q", name)
		}
		if _, err := registry.Register(name, f); err != nil {
			return nil, nil, err
		}
	}
	return g, registry, nil
}
