//go:build js && wasm

package platform

import (
	"log/slog"
	"syscall/js"

	"github.com/pixlgo/pixl/internal/glctx"
)

type jsSurface struct {
	canvas js.Value
	gl     glctx.Context
	ctx2d  js.Value

	width  int
	height int

	keyHandler KeyHandler
	closed     bool

	funcs   []js.Func
	removes []listener
}

type listener struct {
	target js.Value
	typ    string
	fn     js.Func
}

// New locates the target canvas by id, creating and attaching one when no
// such element exists, and tries to acquire a WebGL2 context. When that
// fails the surface carries only the 2D context and GL() returns nil.
func New(opts Options) (Surface, error) {
	doc := js.Global().Get("document")
	if opts.Title != "" {
		doc.Set("title", opts.Title)
	}

	canvas := js.Null()
	if opts.CanvasID != "" {
		canvas = doc.Call("getElementById", opts.CanvasID)
	}
	if !canvas.Truthy() {
		canvas = doc.Call("createElement", "canvas")
		if opts.CanvasID != "" {
			canvas.Set("id", opts.CanvasID)
		}
		doc.Get("body").Call("appendChild", canvas)
	}
	// Restore the pixel dimensions even on a pre-existing canvas; CSS
	// sizing alone leaves the drawing buffer at its default.
	canvas.Set("width", opts.Width)
	canvas.Set("height", opts.Height)
	canvas.Call("setAttribute", "tabindex", "0")

	s := &jsSurface{
		canvas: canvas,
		ctx2d:  js.Null(),
		width:  opts.Width,
		height: opts.Height,
	}

	gl, err := glctx.NewFromCanvas(canvas)
	if err != nil {
		slog.Warn("webgl2 context unavailable", "error", err)
		s.ctx2d = canvas.Call("getContext", "2d")
	} else {
		s.gl = gl
	}

	s.addListener(doc, "keydown", func(e js.Value) {
		if s.keyHandler != nil && !e.Get("repeat").Bool() {
			s.keyHandler(e.Get("key").String(), true)
		}
	})
	s.addListener(doc, "keyup", func(e js.Value) {
		if s.keyHandler != nil {
			s.keyHandler(e.Get("key").String(), false)
		}
	})

	canvas.Call("focus")
	return s, nil
}

func (s *jsSurface) addListener(target js.Value, event string, f func(js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		e := args[0]
		e.Call("preventDefault")
		f(e)
		return nil
	})
	target.Call("addEventListener", event, fn)
	s.funcs = append(s.funcs, fn)
	s.removes = append(s.removes, listener{target: target, typ: event, fn: fn})
}

func (s *jsSurface) Size() (int, int)           { return s.width, s.height }
func (s *jsSurface) GL() glctx.Context          { return s.gl }
func (s *jsSurface) SetKeyHandler(h KeyHandler) { s.keyHandler = h }

func (s *jsSurface) Context2D() any {
	if !s.ctx2d.Truthy() {
		return nil
	}
	return s.ctx2d
}

// Run schedules the callback through requestAnimationFrame and blocks
// until the loop ends, keeping the wasm main goroutine alive.
func (s *jsSurface) Run(frame func(dt float64) bool) {
	done := make(chan struct{})
	var raf js.Func
	last := 0.0
	raf = js.FuncOf(func(this js.Value, args []js.Value) any {
		if s.closed {
			close(done)
			return nil
		}
		now := args[0].Float() / 1000
		dt := 0.0
		if last != 0 {
			dt = now - last
		}
		last = now
		if !frame(dt) {
			close(done)
			return nil
		}
		js.Global().Call("requestAnimationFrame", raf)
		return nil
	})
	js.Global().Call("requestAnimationFrame", raf)
	<-done
	raf.Release()
}

func (s *jsSurface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, r := range s.removes {
		r.target.Call("removeEventListener", r.typ, r.fn)
	}
	for i := range s.funcs {
		s.funcs[i].Release()
	}
	s.funcs = nil
	s.removes = nil
}
