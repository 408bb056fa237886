package demo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/scenekit/internal/application/scene"
)

const (
	squareSize  = 16
	squareSpeed = 90.0 // pixels per second
)

// Arena bounces a square around the screen. Escape opens the pause
// scene on top; the arena freezes while it is loaded.
type Arena struct {
	pause   *scene.Descriptor
	host    Host
	pressed KeyFunc
	screenW int
	screenH int

	x, y   float64
	vx, vy float64
}

// NewArena creates an arena scene for a screenW x screenH screen.
func NewArena(pause *scene.Descriptor, host Host, screenW, screenH int, pressed KeyFunc) *Arena {
	return &Arena{
		pause:   pause,
		host:    host,
		pressed: pressed,
		screenW: screenW,
		screenH: screenH,
	}
}

func (a *Arena) Update(dt float64) error {
	if a.host.IsLoaded(a.pause.Target) {
		return nil
	}
	if a.pressed(ebiten.KeyEscape) {
		a.pause.Load()
		return nil
	}

	a.x += a.vx * dt
	a.y += a.vy * dt
	a.vx, a.x = bounce(a.vx, a.x, float64(a.screenW-squareSize))
	a.vy, a.y = bounce(a.vy, a.y, float64(a.screenH-squareSize))
	return nil
}

// bounce reflects v when p leaves [0, limit] and clamps p.
func bounce(v, p, limit float64) (float64, float64) {
	switch {
	case p < 0:
		return -v, 0
	case p > limit:
		return -v, limit
	}
	return v, p
}

func (a *Arena) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DrawRect(screen, a.x, a.y, squareSize, squareSize, colorSquare)
	ebitenutil.DebugPrintAt(screen, "ESC: PAUSE", 10, 10)
}

// Position returns the square's top-left corner.
func (a *Arena) Position() (float64, float64) {
	return a.x, a.y
}

func (a *Arena) OnEnter() {
	a.x = float64(a.screenW-squareSize) / 2
	a.y = float64(a.screenH-squareSize) / 2
	a.vx, a.vy = squareSpeed, squareSpeed
}

func (a *Arena) OnExit() {}
