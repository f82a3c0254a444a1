package gfx

import (
	"log/slog"

	"github.com/pixlgo/pixl/internal/glctx"
)

// Renderer draws textured quads into the current surface. Draws are
// batched: nothing is guaranteed to reach the screen until OnPostDraw,
// which ends the frame with one final flush.
//
// ApplyTexture selects the texture the following DrawTexture calls crop
// from. Applying a texture whose load has not finished deselects instead;
// the draws are skipped until a loaded texture is applied.
type Renderer interface {
	Resize(width, height int)
	Clear()
	ApplyTexture(t *Texture)
	// DrawTexture draws the crop rectangle (in logical texture pixels) of
	// the applied texture into the destination rectangle (in screen
	// pixels).
	DrawTexture(x, y, w, h, cropX, cropY, cropW, cropH float32)
	// SetTint sets the color the following draws are modulated by.
	SetTint(r, g, b, a byte)
	OnPreDraw()
	OnPostDraw()
	Destroy()
}

// New picks a backend and builds the renderer plus the factory that makes
// textures for it. The configured preference degrades GPU -> 2D -> none;
// each step down is logged. The factory is tied to the chosen backend and
// must not outlive the renderer.
func New(gl glctx.Context, ctx2d any, cfg Config) (Renderer, *TextureFactory) {
	cfg = cfg.normalized()
	if cfg.Backend == BackendGPU {
		if gl != nil {
			f := NewTextureFactory(gl)
			return newWebGLRenderer(gl, f, cfg), f
		}
		slog.Warn("gpu context unavailable, trying 2d fallback")
		cfg.Backend = Backend2D
	}
	if cfg.Backend == Backend2D {
		if r := newCanvasRenderer(ctx2d, cfg); r != nil {
			return r, NewTextureFactory(nil)
		}
		slog.Warn("2d context unavailable, rendering disabled")
	}
	return noopRenderer{}, NewTextureFactory(nil)
}

// noopRenderer swallows every call. Textures created alongside it still
// load and decode, they just never reach a surface.
type noopRenderer struct{}

func (noopRenderer) Resize(int, int)                                              {}
func (noopRenderer) Clear()                                                       {}
func (noopRenderer) ApplyTexture(*Texture)                                        {}
func (noopRenderer) DrawTexture(_, _, _, _, _, _, _, _ float32)                   {}
func (noopRenderer) SetTint(_, _, _, _ byte)                                      {}
func (noopRenderer) OnPreDraw()                                                   {}
func (noopRenderer) OnPostDraw()                                                  {}
func (noopRenderer) Destroy()                                                     {}
