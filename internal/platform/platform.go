// Package platform provides the host surface the renderer draws into and
// the frame ticker that paces the game loop: a DOM canvas driven by
// requestAnimationFrame in the browser, a GLFW window with a vsync-paced
// loop on the desktop.
package platform

import "github.com/pixlgo/pixl/internal/glctx"

// KeyHandler receives raw key transitions. key is the layout label the
// host reports ("a", " ", "ArrowLeft").
type KeyHandler func(key string, down bool)

// Surface is one host window or canvas.
type Surface interface {
	Size() (width, height int)

	// GL returns the GPU context, nil when acquisition failed and the
	// caller should fall back.
	GL() glctx.Context

	// Context2D returns the host 2D drawing context for the canvas
	// fallback (a js.Value under wasm, nil on native builds).
	Context2D() any

	SetKeyHandler(h KeyHandler)

	// Run drives the frame loop until the callback returns false or the
	// surface is closed. dt is the time since the previous frame in
	// seconds, zero on the first frame.
	Run(frame func(dt float64) bool)

	Close()
}

// Options configures surface creation.
type Options struct {
	Title string

	// CanvasID selects the target canvas element in the browser; when no
	// element with that id exists one is created and attached to the
	// document body. Ignored on native builds.
	CanvasID string

	Width  int
	Height int
}
