package game

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/scenekit/internal/application/overlay"
	"github.com/younwookim/scenekit/internal/application/scene"
	"github.com/younwookim/scenekit/internal/application/state"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	updateErr     error
	onUpdate      func()
}

func (m *mockScene) Update(dt float64) error {
	m.updateCalled++
	m.lastDT = dt
	if m.onUpdate != nil {
		m.onUpdate()
	}
	return m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

// fakeClock advances by step on every call
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

// register adds a factory that always returns s
func register(t *testing.T, r *scene.Registry, name string, s scene.Scene) scene.ID {
	t.Helper()
	id, err := r.Register(name, func() (scene.Scene, error) { return s, nil })
	require.NoError(t, err)
	return id
}

func TestGame_Layout(t *testing.T) {
	g := New(scene.NewRegistry(), nil, 320, 240)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SyncLoad_EntersImmediately(t *testing.T) {
	r := scene.NewRegistry()
	s := &mockScene{}
	id := register(t, r, "title", s)
	g := New(r, nil, 320, 240)

	op := g.LoadOperation(id, scene.Single, false)

	assert.Equal(t, state.StateLoaded, op.State())
	assert.Equal(t, 1, s.onEnterCalled)
	assert.Equal(t, []scene.ID{id}, g.Loaded())
}

func TestGame_Update_DelegatesToLoadedScenes(t *testing.T) {
	r := scene.NewRegistry()
	s := &mockScene{}
	id := register(t, r, "title", s)
	g := New(r, nil, 320, 240)
	g.LoadScene(id, scene.Single, false)

	require.NoError(t, g.Update())
	assert.Equal(t, 1, s.updateCalled)
	assert.InDelta(t, 1.0/60.0, s.lastDT, 1e-12)
}

func TestGame_Draw_DelegatesToLoadedScenes(t *testing.T) {
	r := scene.NewRegistry()
	a, b := &mockScene{}, &mockScene{}
	idA := register(t, r, "a", a)
	idB := register(t, r, "b", b)
	g := New(r, nil, 320, 240)
	g.LoadScene(idA, scene.Single, false)
	g.LoadScene(idB, scene.Additive, false)

	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, a.drawCalled)
	assert.Equal(t, 1, b.drawCalled)
}

func TestGame_SingleReplacesAll(t *testing.T) {
	r := scene.NewRegistry()
	a, b, c := &mockScene{}, &mockScene{}, &mockScene{}
	idA := register(t, r, "a", a)
	idB := register(t, r, "b", b)
	idC := register(t, r, "c", c)
	g := New(r, nil, 320, 240)

	g.LoadScene(idA, scene.Single, false)
	g.LoadScene(idB, scene.Additive, false)
	require.Equal(t, []scene.ID{idA, idB}, g.Loaded())

	g.LoadScene(idC, scene.Single, false)

	assert.Equal(t, []scene.ID{idC}, g.Loaded())
	assert.Equal(t, 1, a.onExitCalled)
	assert.Equal(t, 1, b.onExitCalled)
	assert.Equal(t, 0, c.onExitCalled)
}

func TestGame_UnloadScene(t *testing.T) {
	r := scene.NewRegistry()
	a, b := &mockScene{}, &mockScene{}
	idA := register(t, r, "a", a)
	idB := register(t, r, "b", b)
	g := New(r, nil, 320, 240)
	g.LoadScene(idA, scene.Single, false)
	g.LoadScene(idB, scene.Additive, false)

	g.UnloadScene(idB)

	assert.Equal(t, []scene.ID{idA}, g.Loaded())
	assert.Equal(t, 1, b.onExitCalled)
	assert.Equal(t, 0, a.onExitCalled)
}

func TestGame_AsyncLoad_AppliedOnNextUpdate(t *testing.T) {
	r := scene.NewRegistry()
	s := &mockScene{}
	id := register(t, r, "arena", s)
	g := New(r, nil, 320, 240)

	op := g.LoadOperation(id, scene.Single, true)
	assert.Equal(t, state.StateLoading, op.State())
	assert.Equal(t, 1, g.Pending())

	<-op.Done()
	assert.Equal(t, 0, s.onEnterCalled, "not applied until the game loop runs")

	require.NoError(t, g.Update())
	assert.Equal(t, state.StateLoaded, op.State())
	assert.Equal(t, 1, s.onEnterCalled)
	assert.Equal(t, 1, s.updateCalled)
	assert.Equal(t, 0, g.Pending())
}

func TestGame_AsyncLoad_KeepsRequestOrder(t *testing.T) {
	r := scene.NewRegistry()
	release := make(chan struct{})
	slow, fast := &mockScene{}, &mockScene{}
	idSlow, err := r.Register("slow", func() (scene.Scene, error) {
		<-release
		return slow, nil
	})
	require.NoError(t, err)
	idFast := register(t, r, "fast", fast)
	g := New(r, nil, 320, 240)

	opSlow := g.LoadOperation(idSlow, scene.Single, true)
	opFast := g.LoadOperation(idFast, scene.Additive, true)

	<-opFast.Done()
	require.NoError(t, g.Update())
	assert.Empty(t, g.Loaded(), "fast load waits behind the slow one")
	assert.Equal(t, state.StateLoading, opFast.State())

	close(release)
	<-opSlow.Done()
	require.NoError(t, g.Update())
	assert.Equal(t, []scene.ID{idSlow, idFast}, g.Loaded())
}

func TestGame_LoadFailures(t *testing.T) {
	r := scene.NewRegistry()
	existing := &mockScene{}
	idExisting := register(t, r, "existing", existing)
	idBroken, err := r.Register("broken", func() (scene.Scene, error) {
		return nil, errors.New("missing asset")
	})
	require.NoError(t, err)
	idEmpty, err := r.Register("empty", func() (scene.Scene, error) { return nil, nil })
	require.NoError(t, err)

	g := New(r, nil, 320, 240)
	g.LoadScene(idExisting, scene.Single, false)

	tests := []struct {
		name string
		id   scene.ID
	}{
		{"invalid id", scene.InvalidID},
		{"out of range", scene.ID(42)},
		{"factory error", idBroken},
		{"nil scene", idEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := g.LoadOperation(tt.id, scene.Single, false)
			assert.Equal(t, state.StateFailed, op.State())
			assert.Error(t, op.Err())
		})
	}

	assert.Equal(t, []scene.ID{idExisting}, g.Loaded(), "failed loads leave loaded scenes alone")
	assert.Equal(t, 0, existing.onExitCalled)
}

func TestGame_AsyncFactoryError(t *testing.T) {
	r := scene.NewRegistry()
	id, err := r.Register("broken", func() (scene.Scene, error) {
		return nil, errors.New("missing asset")
	})
	require.NoError(t, err)
	g := New(r, nil, 320, 240)

	op := g.LoadOperation(id, scene.Single, true)
	<-op.Done()

	require.NoError(t, g.Update(), "load errors do not stop the game")
	assert.Equal(t, state.StateFailed, op.State())
	assert.ErrorContains(t, op.Err(), "missing asset")
}

func TestGame_UpdateError(t *testing.T) {
	r := scene.NewRegistry()
	id := register(t, r, "a", &mockScene{updateErr: assert.AnError})
	g := New(r, nil, 320, 240)
	g.LoadScene(id, scene.Single, false)

	err := g.Update()
	assert.ErrorIs(t, err, assert.AnError, "Error should propagate from scene")
}

func TestGame_SceneUnloadedDuringUpdateIsSkipped(t *testing.T) {
	r := scene.NewRegistry()
	a, b, c := &mockScene{}, &mockScene{}, &mockScene{}
	idA := register(t, r, "a", a)
	idB := register(t, r, "b", b)
	idC := register(t, r, "c", c)
	g := New(r, nil, 320, 240)
	g.LoadScene(idA, scene.Single, false)
	g.LoadScene(idB, scene.Additive, false)

	a.onUpdate = func() { g.LoadScene(idC, scene.Single, false) }
	require.NoError(t, g.Update())

	assert.Equal(t, 1, a.updateCalled)
	assert.Equal(t, 0, b.updateCalled, "b was unloaded before its turn")
	assert.Equal(t, 0, c.updateCalled, "c joins on the next update")
	assert.Equal(t, []scene.ID{idC}, g.Loaded())
}

func TestGame_TimeScale(t *testing.T) {
	r := scene.NewRegistry()
	s := &mockScene{}
	id := register(t, r, "a", s)
	g := New(r, nil, 320, 240)
	g.LoadScene(id, scene.Single, false)

	g.SetDT(0.02)
	g.SetTimeScale(0.5)
	require.NoError(t, g.Update())

	assert.InDelta(t, 0.01, s.lastDT, 1e-12)
}

func TestGame_Update_TicksOverlayWithUnscaledTime(t *testing.T) {
	fps := overlay.NewFramerate("1.0", nil)
	g := New(scene.NewRegistry(), fps, 320, 240)
	clock := &fakeClock{t: time.Unix(0, 0), step: 30 * time.Millisecond}
	g.now = clock.now
	g.SetTimeScale(0)

	// The first update has no previous frame to measure against.
	for i := 0; i < 5; i++ {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, "FPS: 50", fps.Text())
}

func TestGame_IsLoaded(t *testing.T) {
	r := scene.NewRegistry()
	idA := register(t, r, "a", &mockScene{})
	idB := register(t, r, "b", &mockScene{})
	g := New(r, nil, 320, 240)
	g.LoadScene(idA, scene.Single, false)

	assert.True(t, g.IsLoaded(idA))
	assert.False(t, g.IsLoaded(idB))
	assert.False(t, g.IsLoaded(scene.InvalidID))
}

func TestGame_DrawOverlay_FollowsDeviceHeight(t *testing.T) {
	src, err := overlay.DefaultFaceSource()
	require.NoError(t, err)
	fps := overlay.NewFramerate("1.0", src)
	g := New(scene.NewRegistry(), fps, 320, 240)

	hud := g.drawOverlay(960, 720)
	assert.Equal(t, 720, hud.Bounds().Dy())
	assert.Equal(t, 14, fps.FontSize(), "sized from the device height, not the 240px layout")

	again := g.drawOverlay(960, 720)
	assert.Same(t, hud, again, "same size reuses the target")

	resized := g.drawOverlay(1920, 1080)
	assert.Equal(t, 1080, resized.Bounds().Dy())
	assert.Equal(t, 21, fps.FontSize())
}
