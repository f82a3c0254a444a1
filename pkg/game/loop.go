// Package game drives the per-frame cycle: posted updates, scene update,
// one clear, scene draw, one final flush.
package game

import (
	"github.com/pixlgo/pixl/internal/platform"
	"github.com/pixlgo/pixl/pkg/gfx"
)

// Loop ties a surface, a renderer and a scene manager together. Texture
// load completions are posted onto the loop's update channel and applied
// at the start of the frame, so GL state is only ever touched between
// frames, never concurrently with drawing.
type Loop struct {
	surface  platform.Surface
	renderer gfx.Renderer
	manager  *Manager
	kb       *Keyboard
	updates  chan func()
}

func NewLoop(surface platform.Surface, renderer gfx.Renderer, factory *gfx.TextureFactory, first Scene) *Loop {
	l := &Loop{
		surface:  surface,
		renderer: renderer,
		kb:       NewKeyboard(),
		updates:  make(chan func(), 64),
	}
	surface.SetKeyHandler(l.kb.Handle)
	factory.SetPost(l.Post)
	l.manager = NewManager(factory, first)
	return l
}

func (l *Loop) Manager() *Manager { return l.manager }

// Post queues fn to run on the frame goroutine before the next update.
func (l *Loop) Post(fn func()) {
	l.updates <- fn
}

// Run blocks until the active scene quits or the surface closes, then
// tears the scene and renderer down.
func (l *Loop) Run() {
	l.surface.Run(l.frame)
	l.manager.Shutdown()
	l.renderer.Destroy()
}

func (l *Loop) frame(dt float64) bool {
	l.drain()
	alive := l.manager.Update(dt, l.kb)
	l.renderer.OnPreDraw()
	l.manager.Draw(l.renderer)
	l.renderer.OnPostDraw()
	l.kb.EndFrame()
	return alive
}

func (l *Loop) drain() {
	for {
		select {
		case fn := <-l.updates:
			fn()
		default:
			return
		}
	}
}
