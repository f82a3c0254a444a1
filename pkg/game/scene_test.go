package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixlgo/pixl/pkg/assets"
	"github.com/pixlgo/pixl/pkg/gfx"
)

type stubScene struct {
	loads, inits, updates, draws, unloads int
	action                                SceneAction
}

func (s *stubScene) Load(*assets.Loader) { s.loads++ }
func (s *stubScene) Init()               { s.inits++ }
func (s *stubScene) Update(float64, *Keyboard) SceneAction {
	s.updates++
	return s.action
}
func (s *stubScene) Draw(gfx.Renderer) { s.draws++ }
func (s *stubScene) Unload()           { s.unloads++ }

func newTestManager(first Scene) *Manager {
	return NewManager(gfx.NewTextureFactory(nil), first)
}

func TestManagerInitsAfterLoading(t *testing.T) {
	scene := &stubScene{}
	m := newTestManager(scene)
	kb := NewKeyboard()

	// Nothing requested, so loading completes on the first update.
	require.True(t, m.Update(0.016, kb))
	assert.Equal(t, 1, scene.loads)
	assert.Equal(t, 1, scene.inits)
	assert.Zero(t, scene.updates, "Update starts the frame after Init")

	require.True(t, m.Update(0.016, kb))
	assert.Equal(t, 1, scene.updates)
}

func TestManagerDrawsOnlyWhenRunning(t *testing.T) {
	scene := &stubScene{}
	m := newTestManager(scene)
	r, _ := gfx.New(nil, nil, gfx.Config{Backend: gfx.BackendNone})

	m.Draw(r)
	assert.Zero(t, scene.draws, "nothing drawn before loading finishes")

	m.Update(0.016, NewKeyboard())
	m.Draw(r)
	assert.Equal(t, 1, scene.draws)
}

func TestManagerQuitAction(t *testing.T) {
	scene := &stubScene{action: ActionQuit}
	m := newTestManager(scene)
	kb := NewKeyboard()

	require.True(t, m.Update(0.016, kb)) // loading -> running
	assert.False(t, m.Update(0.016, kb))
}

func TestManagerSwitchUnloadsPrevious(t *testing.T) {
	first := &stubScene{}
	second := &stubScene{}
	m := newTestManager(first)
	kb := NewKeyboard()

	m.Update(0.016, kb)
	m.Switch(second)
	m.Update(0.016, kb)

	assert.Equal(t, 1, first.unloads)
	assert.Equal(t, 1, second.loads)
	assert.Equal(t, 1, second.inits)
}

func TestManagerShutdown(t *testing.T) {
	scene := &stubScene{}
	m := newTestManager(scene)
	m.Update(0.016, NewKeyboard())

	m.Shutdown()
	assert.Equal(t, 1, scene.unloads)
	assert.False(t, m.Update(0.016, NewKeyboard()), "no scene left to run")
}
