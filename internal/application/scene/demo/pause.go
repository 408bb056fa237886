package demo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/scenekit/internal/application/scene"
)

// Pause dims the scenes below it and unloads itself on Escape.
type Pause struct {
	self    scene.ID
	host    Host
	pressed KeyFunc
	screenW int
	screenH int
}

// NewPause creates a pause scene registered as self.
func NewPause(self scene.ID, host Host, screenW, screenH int, pressed KeyFunc) *Pause {
	return &Pause{
		self:    self,
		host:    host,
		pressed: pressed,
		screenW: screenW,
		screenH: screenH,
	}
}

func (p *Pause) Update(dt float64) error {
	if p.pressed(ebiten.KeyEscape) {
		p.host.UnloadScene(p.self)
	}
	return nil
}

func (p *Pause) Draw(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorDim)
	ebitenutil.DebugPrintAt(screen, "PAUSED", p.screenW/2-20, p.screenH/2-8)
}

func (p *Pause) OnEnter() {}

func (p *Pause) OnExit() {}
