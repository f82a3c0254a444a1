package gfx

import (
	"image"
	"sync/atomic"

	"github.com/pixlgo/pixl/internal/glctx"
)

var textureIDs atomic.Uint64

// Texture is a drawable image owned by a TextureFactory. Exactly one of
// the backend variants (gpu / bitmap) is populated, depending on whether
// the factory was built with a GL context.
//
// Loading is asynchronous: a freshly created Texture is 1x1 and unloaded,
// and flips to loaded once its image has been decoded and uploaded (or
// replaced by the missing-texture placeholder). Callers poll Loaded and
// Missing; drawing an unloaded texture on the GPU backend is a caller
// error.
type Texture struct {
	id     uint64
	width  int
	height int

	loaded  bool
	missing bool

	// gen invalidates in-flight load completions after a destroy.
	gen uint64

	gpu    *gpuData
	bitmap *bitmapData
}

type gpuData struct {
	handle glctx.Texture
	bound  bool
	unit   int
}

type bitmapData struct {
	img        *image.RGBA
	cropScaleX float32
	cropScaleY float32

	// surface is the backend draw handle (an offscreen canvas on js),
	// created lazily by the canvas renderer.
	surface releasable
}

// releasable is implemented by backend draw handles that hold host
// resources beyond Go memory.
type releasable interface {
	Release()
}

func newGPUTexture() *Texture {
	return &Texture{
		id:     textureIDs.Add(1),
		width:  1,
		height: 1,
		gpu:    &gpuData{},
	}
}

func newBitmapTexture() *Texture {
	return &Texture{
		id:     textureIDs.Add(1),
		width:  1,
		height: 1,
		bitmap: &bitmapData{cropScaleX: 1, cropScaleY: 1},
	}
}

func (t *Texture) ID() uint64  { return t.id }
func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

// Loaded reports whether the asynchronous load has finished, successfully
// or not. A missing texture is still loaded (it carries the placeholder).
func (t *Texture) Loaded() bool { return t.loaded }

// Missing reports that the source image could not be fetched or decoded.
func (t *Texture) Missing() bool { return t.missing }

// Bound reports whether the texture currently occupies a GPU texture unit.
func (t *Texture) Bound() bool { return t.gpu != nil && t.gpu.bound }

// reset returns every field to its empty default, keeping the backend
// variant. Bumping gen makes any still-running load a no-op.
func (t *Texture) reset() {
	t.width = 1
	t.height = 1
	t.loaded = false
	t.missing = false
	t.gen++
	if t.gpu != nil {
		*t.gpu = gpuData{}
	}
	if t.bitmap != nil {
		*t.bitmap = bitmapData{cropScaleX: 1, cropScaleY: 1}
	}
}
