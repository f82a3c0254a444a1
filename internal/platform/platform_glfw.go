//go:build !js

package platform

import (
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/pixlgo/pixl/internal/glctx"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

type glfwSurface struct {
	window *glfw.Window
	gl     glctx.Context

	width  int
	height int

	keyHandler KeyHandler
	closed     bool
}

// New opens a GLFW window with a 3.3 core context. There is no 2D
// fallback on the desktop; a context failure is an error.
func New(opts Options) (Surface, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw init")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	gl, err := glctx.New()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	s := &glfwSurface{
		window: window,
		gl:     gl,
		width:  opts.Width,
		height: opts.Height,
	}
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		if s.keyHandler == nil || action == glfw.Repeat {
			return
		}
		label := keyLabel(key, scancode)
		if label == "" {
			return
		}
		s.keyHandler(label, action == glfw.Press)
	})
	return s, nil
}

// keyLabel maps GLFW keys onto the DOM key labels the browser build
// reports, so game code reads one vocabulary on both platforms.
func keyLabel(key glfw.Key, scancode int) string {
	switch key {
	case glfw.KeyLeft:
		return "ArrowLeft"
	case glfw.KeyRight:
		return "ArrowRight"
	case glfw.KeyUp:
		return "ArrowUp"
	case glfw.KeyDown:
		return "ArrowDown"
	case glfw.KeySpace:
		return " "
	case glfw.KeyEnter:
		return "Enter"
	case glfw.KeyEscape:
		return "Escape"
	case glfw.KeyTab:
		return "Tab"
	case glfw.KeyBackspace:
		return "Backspace"
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return "Shift"
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return "Control"
	}
	return glfw.GetKeyName(key, scancode)
}

func (s *glfwSurface) Size() (int, int)           { return s.width, s.height }
func (s *glfwSurface) GL() glctx.Context          { return s.gl }
func (s *glfwSurface) Context2D() any             { return nil }
func (s *glfwSurface) SetKeyHandler(h KeyHandler) { s.keyHandler = h }

func (s *glfwSurface) Run(frame func(dt float64) bool) {
	glfw.SetTime(0)
	last := 0.0
	for !s.closed && !s.window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if !frame(dt) {
			break
		}
		s.window.SwapBuffers()
		glfw.PollEvents()
	}
	s.window.Destroy()
	glfw.Terminate()
	slog.Debug("window loop ended")
}

func (s *glfwSurface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.window.SetShouldClose(true)
}
