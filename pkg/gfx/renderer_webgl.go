package gfx

import (
	"log/slog"

	"github.com/pixlgo/pixl/internal/glctx"
)

const whiteTint = 0xffffffff

// webglRenderer is the batched GPU backend: one shader program, one
// vertex buffer and one texture-unit cache. Quads accumulate until the
// vertex buffer fills or the unit pool runs out; OnPostDraw flushes
// whatever is left, so a frame that fits the batch costs one draw call.
type webglRenderer struct {
	ctx     glctx.Context
	factory *TextureFactory
	prog    *shaderProgram
	mvp     *mvpMatrix
	vbuf    *vertexBuffer
	cache   *textureCache

	applied    appliedTexture
	hasApplied bool
	tint       uint32
}

func newWebGLRenderer(ctx glctx.Context, factory *TextureFactory, cfg Config) *webglRenderer {
	maxUnits := cfg.MaxBatchTextures
	if host := ctx.MaxTextureUnits(); host > 0 && host < maxUnits {
		slog.Warn("batch texture count reduced to host limit",
			"configured", maxUnits, "host", host)
		maxUnits = host
	}

	prog := newShaderProgram(ctx, vertexShaderSource, fragmentShaderTemplate, maxUnits)
	prog.use()
	prog.setSamplerUnits("uTextures", maxUnits)
	mvp := newMVPMatrix(prog)
	vbuf := newVertexBuffer(ctx, prog, mvp, cfg.MaxBatchVertices)
	cache := newTextureCache(factory, vbuf, maxUnits)

	r := &webglRenderer{
		ctx:     ctx,
		factory: factory,
		prog:    prog,
		mvp:     mvp,
		vbuf:    vbuf,
		cache:   cache,
		tint:    whiteTint,
	}
	ctx.EnableBlend()
	ctx.ClearColor(0, 0, 0, 1)
	r.Resize(cfg.Width, cfg.Height)
	return r
}

func (r *webglRenderer) Resize(width, height int) {
	r.ctx.Viewport(0, 0, width, height)
	r.mvp.setOrthographicProjection(width, height)
}

func (r *webglRenderer) Clear() {
	r.ctx.Clear()
}

func (r *webglRenderer) ApplyTexture(t *Texture) {
	r.applied, r.hasApplied = r.cache.applyTexture(t)
}

func (r *webglRenderer) DrawTexture(x, y, w, h, cropX, cropY, cropW, cropH float32) {
	if !r.hasApplied {
		return
	}
	tw := float32(r.applied.width)
	th := float32(r.applied.height)
	u0 := cropX / tw
	v0 := cropY / th
	u1 := (cropX + cropW) / tw
	v1 := (cropY + cropH) / th
	r.vbuf.pushQuad(x, y, w, h, float32(r.applied.unit), u0, v0, u1, v1, r.tint)
}

func (r *webglRenderer) SetTint(red, green, blue, alpha byte) {
	r.tint = uint32(red) | uint32(green)<<8 | uint32(blue)<<16 | uint32(alpha)<<24
}

func (r *webglRenderer) OnPreDraw() {
	r.Clear()
}

func (r *webglRenderer) OnPostDraw() {
	r.cache.flush()
}

func (r *webglRenderer) Destroy() {
	r.cache.destroy()
	r.vbuf.destroy()
	r.prog.destroy()
	r.hasApplied = false
	r.ctx.ClearColor(0, 0, 0, 0)
	r.ctx.Clear()
}
