// Package demo provides the sample scenes shipped with the binary:
// a title screen, an arena and an additive pause screen.
package demo

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/scenekit/internal/application/scene"
)

// Scene names used in the build list
const (
	TitleName = "title"
	ArenaName = "arena"
	PauseName = "pause"
)

// Colors for rendering
var (
	colorBG     = color.RGBA{26, 26, 46, 255}
	colorSquare = color.RGBA{100, 200, 100, 255}
	colorDim    = color.RGBA{0, 0, 0, 160}
)

// Host is what demo scenes need from the game loop.
type Host interface {
	scene.Loader
	UnloadScene(id scene.ID)
	IsLoaded(id scene.ID) bool
	Pending() int
}

// KeyFunc reports whether key was pressed this tick.
type KeyFunc func(key ebiten.Key) bool

// Factories returns a factory per demo scene name.
// Scene IDs are resolved through r when a scene is built, so the
// factories can be registered in any order.
func Factories(r *scene.Registry, host Host, screenW, screenH int) map[string]scene.Factory {
	return FactoriesWithInput(r, host, screenW, screenH, inpututil.IsKeyJustPressed)
}

// FactoriesWithInput is Factories with a custom key source.
func FactoriesWithInput(r *scene.Registry, host Host, screenW, screenH int, pressed KeyFunc) map[string]scene.Factory {
	return map[string]scene.Factory{
		TitleName: func() (scene.Scene, error) {
			return NewTitle(scene.NewDescriptor(ArenaName, r, host), host, pressed), nil
		},
		ArenaName: func() (scene.Scene, error) {
			pause := scene.NewDescriptor(PauseName, r, host)
			pause.Mode = scene.Additive
			pause.Async = false
			return NewArena(pause, host, screenW, screenH, pressed), nil
		},
		PauseName: func() (scene.Scene, error) {
			id, _ := r.SceneID(PauseName)
			return NewPause(id, host, screenW, screenH, pressed), nil
		},
	}
}
