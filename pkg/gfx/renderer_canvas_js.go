//go:build js && wasm

package gfx

import "syscall/js"

// canvasRenderer is the 2D fallback over CanvasRenderingContext2D. Each
// bitmap texture gets an offscreen canvas surface the first time it is
// drawn; drawImage copies crops of it. There is no batching to flush, so
// the pre/post hooks reduce to clearing the frame.
type canvasRenderer struct {
	ctx2d  js.Value
	width  int
	height int

	applied *Texture
	alpha   float64
}

func newCanvasRenderer(ctx2d any, cfg Config) Renderer {
	v, ok := ctx2d.(js.Value)
	if !ok || !v.Truthy() {
		return nil
	}
	v.Set("imageSmoothingEnabled", false)
	return &canvasRenderer{
		ctx2d:  v,
		width:  cfg.Width,
		height: cfg.Height,
		alpha:  1,
	}
}

func (r *canvasRenderer) Resize(width, height int) {
	r.width, r.height = width, height
	// The smoothing flag resets when the canvas is resized.
	r.ctx2d.Set("imageSmoothingEnabled", false)
}

func (r *canvasRenderer) Clear() {
	r.ctx2d.Call("clearRect", 0, 0, r.width, r.height)
}

func (r *canvasRenderer) ApplyTexture(t *Texture) {
	if t == nil || t.bitmap == nil || !t.loaded {
		r.applied = nil
		return
	}
	r.applied = t
}

func (r *canvasRenderer) DrawTexture(x, y, w, h, cropX, cropY, cropW, cropH float32) {
	t := r.applied
	if t == nil || t.bitmap.img == nil {
		return
	}
	surface := r.surfaceFor(t)
	b := t.bitmap
	r.ctx2d.Set("globalAlpha", r.alpha)
	r.ctx2d.Call("drawImage", surface,
		cropX*b.cropScaleX, cropY*b.cropScaleY,
		cropW*b.cropScaleX, cropH*b.cropScaleY,
		x, y, w, h)
}

// SetTint only carries alpha on this backend; per-channel modulation
// would need a per-draw composite pass that is not worth the fallback.
func (r *canvasRenderer) SetTint(_, _, _, alpha byte) {
	r.alpha = float64(alpha) / 255
}

func (r *canvasRenderer) OnPreDraw()  { r.Clear() }
func (r *canvasRenderer) OnPostDraw() {}

func (r *canvasRenderer) Destroy() {
	r.applied = nil
	r.Clear()
}

// surfaceFor returns the texture's offscreen canvas, building it from the
// decoded pixels on first use.
func (r *canvasRenderer) surfaceFor(t *Texture) js.Value {
	if t.bitmap.surface != nil {
		return t.bitmap.surface.(*jsBitmap).canvas
	}
	img := t.bitmap.img
	bounds := img.Bounds()
	doc := js.Global().Get("document")
	canvas := doc.Call("createElement", "canvas")
	canvas.Set("width", bounds.Dx())
	canvas.Set("height", bounds.Dy())
	c2d := canvas.Call("getContext", "2d")

	pix := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(pix, img.Pix)
	data := js.Global().Get("ImageData").New(pix, bounds.Dx(), bounds.Dy())
	c2d.Call("putImageData", data, 0, 0)

	t.bitmap.surface = &jsBitmap{canvas: canvas}
	return canvas
}

// jsBitmap wraps the offscreen canvas so DestroyTexture can drop its
// backing store without the renderer.
type jsBitmap struct {
	canvas js.Value
}

func (b *jsBitmap) Release() {
	b.canvas.Set("width", 0)
	b.canvas.Set("height", 0)
}
