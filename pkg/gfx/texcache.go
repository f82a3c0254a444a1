package gfx

// appliedTexture is what the cache hands back for drawing: the unit the
// texture sits on plus the logical dimensions crop rectangles are
// normalized against.
type appliedTexture struct {
	id     uint64
	unit   int
	width  int
	height int
}

// textureCache manages the fixed pool of GPU texture units. Textures are
// assigned units in the order they are first applied within a batch; when
// the pool runs out the whole batch is drawn and every assignment dropped,
// so the requesting texture starts the next batch on unit zero.
//
// Every unit is padded with a 1x1 solid placeholder at construction so the
// shader's sampler array never reads an unbound unit.
type textureCache struct {
	factory *TextureFactory
	vbuf    *vertexBuffer
	binds   *BindingTracker

	maxUnits     int
	nextFree     int
	bound        []*Texture
	placeholders []*Texture
}

func newTextureCache(factory *TextureFactory, vbuf *vertexBuffer, maxUnits int) *textureCache {
	tc := &textureCache{
		factory:  factory,
		vbuf:     vbuf,
		binds:    factory.Bindings(),
		maxUnits: maxUnits,
		bound:    make([]*Texture, 0, maxUnits),
	}
	ctx := factory.ctx
	for unit := 0; unit < maxUnits; unit++ {
		p := factory.CreateSolidPixelTexture(255, 255, 255, 255)
		ctx.ActiveTexture(unit)
		ctx.BindTexture(p.gpu.handle)
		tc.binds.note(p.gpu.handle, unit)
		tc.placeholders = append(tc.placeholders, p)
	}
	return tc
}

// applyTexture ensures the texture occupies a unit and returns its
// assignment. Re-applying a texture already on a unit touches no GL state.
// Applying a texture that is not yet loaded fails; the caller decides
// whether to skip or substitute.
func (tc *textureCache) applyTexture(t *Texture) (appliedTexture, bool) {
	if t == nil || t.gpu == nil || !t.loaded {
		return appliedTexture{}, false
	}
	if t.gpu.bound {
		return tc.snapshot(t), true
	}
	if tc.nextFree == tc.maxUnits {
		tc.flush()
	}
	unit := tc.nextFree
	tc.nextFree++
	ctx := tc.factory.ctx
	ctx.ActiveTexture(unit)
	ctx.BindTexture(t.gpu.handle)
	tc.binds.note(t.gpu.handle, unit)
	t.gpu.bound = true
	t.gpu.unit = unit
	tc.bound = append(tc.bound, t)
	return tc.snapshot(t), true
}

func (tc *textureCache) snapshot(t *Texture) appliedTexture {
	return appliedTexture{id: t.id, unit: t.gpu.unit, width: t.width, height: t.height}
}

// flush draws everything batched so far, then releases every unit
// assignment. The draw must land before assignments are dropped, since the
// batched vertices reference the current ones.
func (tc *textureCache) flush() {
	tc.vbuf.flush()
	for _, t := range tc.bound {
		t.gpu.bound = false
		t.gpu.unit = 0
	}
	tc.bound = tc.bound[:0]
	tc.nextFree = 0
}

func (tc *textureCache) destroy() {
	tc.flush()
	for _, p := range tc.placeholders {
		tc.factory.DestroyTexture(p)
	}
	tc.placeholders = nil
}
