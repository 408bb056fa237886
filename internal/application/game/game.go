// Package game provides the main game loop that hosts loaded scenes,
// performs scene loads and drives the framerate overlay.
package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/scenekit/internal/application/overlay"
	"github.com/younwookim/scenekit/internal/application/scene"
)

type loadedScene struct {
	id     scene.ID
	scene  scene.Scene
	active bool
}

// Game implements ebiten.Game and scene.Loader.
//
// All methods must be called from the game loop goroutine.
type Game struct {
	registry *scene.Registry
	loaded   []*loadedScene
	pending  []*Operation
	overlay  *overlay.Framerate
	hud      *ebiten.Image // device-sized overlay target

	screenW   int
	screenH   int
	dt        float64
	timeScale float64

	now  func() time.Time
	last time.Time
}

// New creates a new Game that loads scenes from registry.
// fps may be nil to disable the framerate overlay.
func New(registry *scene.Registry, fps *overlay.Framerate, screenW, screenH int) *Game {
	return &Game{
		registry:  registry,
		overlay:   fps,
		screenW:   screenW,
		screenH:   screenH,
		dt:        1.0 / 60.0, // Default to 60 TPS
		timeScale: 1,
		now:       time.Now,
	}
}

// LoadScene implements scene.Loader.
func (g *Game) LoadScene(id scene.ID, mode scene.LoadMode, async bool) {
	g.LoadOperation(id, mode, async)
}

// UnloadScene exits and removes every loaded instance of id.
func (g *Game) UnloadScene(id scene.ID) {
	kept := g.loaded[:0]
	for _, ls := range g.loaded {
		if ls.id == id {
			g.exit(ls)
			continue
		}
		kept = append(kept, ls)
	}
	clear(g.loaded[len(kept):])
	g.loaded = kept
}

// Update ticks the overlay with unscaled wall-clock time, applies
// finished async loads, then updates every loaded scene.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	now := g.now()
	var elapsed float64
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last).Seconds()
	}
	g.last = now

	if g.overlay != nil {
		g.overlay.Tick(elapsed)
	}

	g.applyFinished()

	// Scenes may load or unload scenes while updating.
	snapshot := append([]*loadedScene(nil), g.loaded...)
	dt := g.dt * g.timeScale
	for _, ls := range snapshot {
		if !ls.active {
			continue
		}
		if err := ls.scene.Update(dt); err != nil {
			return err
		}
	}

	return nil
}

// Draw renders loaded scenes from bottom to top.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, ls := range g.loaded {
		ls.scene.Draw(screen)
	}
}

// DrawFinalScreen scales the logical screen onto the window, then draws
// the overlay at device resolution so it follows window resizes.
// Implements ebiten.FinalScreenDrawer interface.
func (g *Game) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	screen.DrawImage(offscreen, op)

	if g.overlay == nil {
		return
	}
	b := screen.Bounds()
	screen.DrawImage(g.drawOverlay(b.Dx(), b.Dy()), nil)
}

// drawOverlay renders the overlay onto a width x height image, reusing
// the previous image while the size is unchanged.
func (g *Game) drawOverlay(width, height int) *ebiten.Image {
	if g.hud == nil || g.hud.Bounds().Dx() != width || g.hud.Bounds().Dy() != height {
		if g.hud != nil {
			g.hud.Deallocate()
		}
		g.hud = ebiten.NewImage(width, height)
	} else {
		g.hud.Clear()
	}
	g.overlay.Draw(g.hud)
	return g.hud
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time passed to scenes before scaling.
// Useful for testing or custom tick rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetTimeScale scales the delta time scenes receive.
// The overlay always measures unscaled time.
func (g *Game) SetTimeScale(scale float64) {
	g.timeScale = scale
}

// Loaded returns the IDs of loaded scenes, bottom first.
func (g *Game) Loaded() []scene.ID {
	ids := make([]scene.ID, len(g.loaded))
	for i, ls := range g.loaded {
		ids[i] = ls.id
	}
	return ids
}

// IsLoaded reports whether a scene with id is loaded.
func (g *Game) IsLoaded(id scene.ID) bool {
	for _, ls := range g.loaded {
		if ls.id == id {
			return true
		}
	}
	return false
}

// Pending returns the number of async loads not yet applied.
func (g *Game) Pending() int {
	return len(g.pending)
}

func (g *Game) apply(id scene.ID, s scene.Scene, mode scene.LoadMode) {
	if mode == scene.Single {
		for _, ls := range g.loaded {
			g.exit(ls)
		}
		clear(g.loaded)
		g.loaded = g.loaded[:0]
	}

	ls := &loadedScene{id: id, scene: s, active: true}
	g.loaded = append(g.loaded, ls)
	s.OnEnter()
	log.Printf("Scene loaded: %s (%s)", g.registry.Name(id), mode)
}

func (g *Game) exit(ls *loadedScene) {
	ls.active = false
	ls.scene.OnExit()
}
