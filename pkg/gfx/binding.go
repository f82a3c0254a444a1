package gfx

import "github.com/pixlgo/pixl/internal/glctx"

// Binding is a snapshot of the GL texture binding to restore after a
// transient rebind (texture upload or destroy).
type Binding struct {
	tex  glctx.Texture
	unit int
	ok   bool
}

// BindingTracker records the last texture binding established on behalf
// of the renderer, so factory operations that rebind temporarily can put
// the context back the way the texture cache left it. It is shared by
// exactly one TextureFactory and one textureCache; the restoration
// contract is explicit at each call site via Current/restoreTo.
type BindingTracker struct {
	cur Binding
}

func (bt *BindingTracker) note(tex glctx.Texture, unit int) {
	bt.cur = Binding{tex: tex, unit: unit, ok: true}
}

// Current returns the binding a transient rebind must restore afterwards.
func (bt *BindingTracker) Current() Binding { return bt.cur }

// forget drops the record when its texture is destroyed, so a later
// restore does not rebind a deleted handle.
func (bt *BindingTracker) forget(tex glctx.Texture) {
	if bt.cur.ok && bt.cur.tex.Equal(tex) {
		bt.cur = Binding{}
	}
}

func (bt *BindingTracker) restoreTo(ctx glctx.Context, prev Binding) {
	if !prev.ok {
		var none glctx.Texture
		ctx.BindTexture(none)
		return
	}
	ctx.ActiveTexture(prev.unit)
	ctx.BindTexture(prev.tex)
}
