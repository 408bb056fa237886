package demo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/scenekit/internal/application/scene"
)

// Title waits for Enter or Space and then loads the arena.
// If the load fails the title accepts input again.
type Title struct {
	start   *scene.Descriptor
	host    Host
	pressed KeyFunc
	started bool
}

// NewTitle creates a title scene that triggers start when confirmed.
func NewTitle(start *scene.Descriptor, host Host, pressed KeyFunc) *Title {
	return &Title{start: start, host: host, pressed: pressed}
}

func (t *Title) Update(dt float64) error {
	if t.started {
		// A successful Single load replaces us, so still being here with
		// nothing pending means the load failed.
		if t.host.Pending() > 0 || t.host.IsLoaded(t.start.Target) {
			return nil
		}
		t.started = false
	}
	if t.pressed(ebiten.KeyEnter) || t.pressed(ebiten.KeySpace) {
		t.started = true
		t.start.Load()
	}
	return nil
}

func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	msg := "PRESS ENTER"
	if t.started {
		msg = "LOADING..."
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

func (t *Title) OnEnter() {
	t.started = false
}

func (t *Title) OnExit() {}
