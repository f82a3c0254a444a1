package gfx

import (
	"bytes"
	"image"
	"io"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/pixlgo/pixl/internal/glctx"
)

// FetchFunc resolves an opaque texture locator to raw encoded image bytes.
// The default implementation uses net/http, which maps onto the browser
// fetch API under wasm.
type FetchFunc func(src string) ([]byte, error)

func httpFetch(src string) ([]byte, error) {
	resp, err := http.Get(src)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", src)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s: %s", src, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// TextureFactory creates and destroys Textures. With a GL context it
// produces GPU textures; with a nil context it produces bitmap textures
// for the 2D canvas backend. Image fetch and decode run on their own
// goroutine; the results are applied through the post hook so that all
// GL calls stay on the frame loop.
type TextureFactory struct {
	ctx   glctx.Context
	fetch FetchFunc
	post  func(func())
	binds *BindingTracker
}

func NewTextureFactory(ctx glctx.Context) *TextureFactory {
	return &TextureFactory{
		ctx:   ctx,
		fetch: httpFetch,
		binds: &BindingTracker{},
	}
}

// SetFetch replaces the image fetch primitive.
func (f *TextureFactory) SetFetch(fn FetchFunc) {
	if fn != nil {
		f.fetch = fn
	}
}

// Fetch resolves src through the factory's fetch primitive, for callers
// loading non-image assets (manifests) from the same source space.
func (f *TextureFactory) Fetch(src string) ([]byte, error) {
	return f.fetch(src)
}

// SetPost installs the hook that marshals load completions onto the frame
// loop. With no hook installed completions run on the loader goroutine.
func (f *TextureFactory) SetPost(post func(func())) { f.post = post }

// Bindings exposes the tracker the texture cache records its unit
// assignments in.
func (f *TextureFactory) Bindings() *BindingTracker { return f.binds }

// CreateTexture returns an empty 1x1 unloaded Texture immediately and
// starts fetching and decoding src in the background. Once decoded the
// texture's dimensions become expectWidth/expectHeight when non-zero, the
// natural image dimensions otherwise. A fetch or decode failure marks the
// texture missing and substitutes the built-in placeholder; the texture
// still becomes loaded.
func (f *TextureFactory) CreateTexture(src string, expectWidth, expectHeight int) *Texture {
	var t *Texture
	if f.ctx != nil {
		t = newGPUTexture()
	} else {
		t = newBitmapTexture()
	}
	gen := t.gen
	go f.load(t, gen, src, expectWidth, expectHeight)
	return t
}

func (f *TextureFactory) load(t *Texture, gen uint64, src string, expectW, expectH int) {
	img, err := f.fetchImage(src)
	missing := false
	if err != nil {
		slog.Warn("texture load failed, using placeholder", "src", src, "error", err)
		missing = true
		img = missingImage()
	}
	f.complete(func() {
		if t.gen != gen {
			// Destroyed while the load was in flight.
			return
		}
		t.missing = missing
		f.finishLoad(t, img, expectW, expectH)
	})
}

func (f *TextureFactory) fetchImage(src string) (image.Image, error) {
	data, err := f.fetch(src)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", src)
	}
	return img, nil
}

func (f *TextureFactory) complete(fn func()) {
	if f.post != nil {
		f.post(fn)
		return
	}
	fn()
}

func (f *TextureFactory) finishLoad(t *Texture, img image.Image, expectW, expectH int) {
	natural := img.Bounds()
	w, h := expectW, expectH
	if w <= 0 {
		w = natural.Dx()
	}
	if h <= 0 {
		h = natural.Dy()
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	t.width, t.height = w, h

	if t.gpu != nil {
		// The GPU texture keeps the natural pixel dimensions; crop
		// rectangles are normalized against the logical width/height, so
		// no resampling is needed here.
		f.uploadRGBA(t.gpu, toRGBA(img))
	} else {
		prepareBitmap(t.bitmap, img, w, h)
	}
	t.loaded = true
}

// uploadRGBA opens a GL texture object, uploads the pixels with nearest
// filtering, and restores whatever binding was active beforehand so the
// texture cache's unit assignments stay intact.
func (f *TextureFactory) uploadRGBA(g *gpuData, img *image.RGBA) {
	prev := f.binds.Current()
	g.handle = f.ctx.CreateTexture()
	f.ctx.BindTexture(g.handle)
	f.ctx.TexParamNearest()
	f.ctx.TexImage2D(img.Bounds().Dx(), img.Bounds().Dy(), img.Pix)
	f.binds.restoreTo(f.ctx, prev)
}

// DestroyTexture releases the texture's backend resources and resets it
// to the empty 1x1 default. Safe to call on an already-empty texture.
// A load still in flight for this texture is invalidated, not cancelled.
func (f *TextureFactory) DestroyTexture(t *Texture) {
	if t == nil {
		return
	}
	if t.gpu != nil && t.gpu.handle.Valid() {
		prev := f.binds.Current()
		var none glctx.Texture
		f.ctx.BindTexture(none)
		f.ctx.DeleteTexture(t.gpu.handle)
		f.binds.forget(t.gpu.handle)
		if prev.ok && !prev.tex.Equal(t.gpu.handle) {
			f.binds.restoreTo(f.ctx, prev)
		}
	}
	if t.bitmap != nil && t.bitmap.surface != nil {
		t.bitmap.surface.Release()
	}
	t.reset()
}

// CreateSolidPixelTexture synchronously builds a loaded 1x1 GPU texture
// of the given color. The texture cache pads unused units with these so
// every unit has something bound.
func (f *TextureFactory) CreateSolidPixelTexture(r, g, b, a byte) *Texture {
	t := newGPUTexture()
	prev := f.binds.Current()
	t.gpu.handle = f.ctx.CreateTexture()
	f.ctx.BindTexture(t.gpu.handle)
	f.ctx.TexParamNearest()
	f.ctx.TexImage2D(1, 1, []byte{r, g, b, a})
	f.binds.restoreTo(f.ctx, prev)
	t.loaded = true
	return t
}
