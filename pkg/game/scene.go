package game

import (
	"github.com/pixlgo/pixl/pkg/assets"
	"github.com/pixlgo/pixl/pkg/gfx"
)

// SceneAction is what a scene's Update asks the loop to do next.
type SceneAction int

const (
	ActionNone SceneAction = iota
	ActionQuit
)

// Scene is one screen of the game. Load registers asset requests on the
// loader; Init runs once after every requested asset has finished
// loading; Update and Draw run every frame after that; Unload runs when
// the scene is switched away or the loop ends. Textures requested through
// the loader are destroyed by the manager, scenes only clean up their own
// state in Unload.
type Scene interface {
	Load(l *assets.Loader)
	Init()
	Update(dt float64, kb *Keyboard) SceneAction
	Draw(r gfx.Renderer)
	Unload()
}

type managerState int

const (
	stateLoading managerState = iota
	stateRunning
)

// Manager owns the active scene and its asset loader. A freshly switched
// scene stays in the loading state, with nothing drawn, until its loader
// reports done.
type Manager struct {
	factory *gfx.TextureFactory
	loader  *assets.Loader
	current Scene
	next    Scene
	state   managerState
}

func NewManager(factory *gfx.TextureFactory, first Scene) *Manager {
	m := &Manager{factory: factory}
	m.Switch(first)
	return m
}

// Switch schedules a scene change; it takes effect at the start of the
// next update so the old scene never unloads mid-frame.
func (m *Manager) Switch(next Scene) { m.next = next }

// Update advances the active scene. It reports false when the scene asked
// to quit or no scene remains.
func (m *Manager) Update(dt float64, kb *Keyboard) bool {
	if m.next != nil {
		m.swap()
	}
	if m.current == nil {
		return false
	}
	switch m.state {
	case stateLoading:
		if m.loader.Done() {
			m.state = stateRunning
			m.current.Init()
		}
	case stateRunning:
		if m.current.Update(dt, kb) == ActionQuit {
			return false
		}
	}
	return true
}

func (m *Manager) Draw(r gfx.Renderer) {
	if m.current != nil && m.state == stateRunning {
		m.current.Draw(r)
	}
}

// Shutdown unloads the active scene and releases its assets.
func (m *Manager) Shutdown() {
	if m.current == nil {
		return
	}
	m.current.Unload()
	m.loader.Release()
	m.current = nil
}

func (m *Manager) swap() {
	if m.current != nil {
		m.current.Unload()
		m.loader.Release()
	}
	m.current = m.next
	m.next = nil
	m.loader = assets.NewLoader(m.factory)
	m.state = stateLoading
	m.current.Load(m.loader)
}
