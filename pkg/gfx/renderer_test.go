package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, f *fakeGL, cfg Config) (*webglRenderer, *TextureFactory) {
	t.Helper()
	factory := NewTextureFactory(f)
	r := newWebGLRenderer(f, factory, cfg.normalized())
	require.True(t, r.prog.ok)
	return r, factory
}

func TestRendererBatchesIntoOneDrawCall(t *testing.T) {
	f := newFakeGL()
	r, _ := newTestRenderer(t, f, Config{MaxBatchTextures: 4, MaxBatchVertices: 60})

	t1 := loadedGPUTexture(f, 16, 16)
	t2 := loadedGPUTexture(f, 16, 16)

	r.OnPreDraw()
	for i := 0; i < 3; i++ {
		r.ApplyTexture(t1)
		r.DrawTexture(float32(i)*16, 0, 16, 16, 0, 0, 16, 16)
		r.ApplyTexture(t2)
		r.DrawTexture(float32(i)*16, 16, 16, 16, 0, 0, 16, 16)
	}
	assert.Empty(t, f.drawCounts, "draws must stay batched within the frame")

	r.OnPostDraw()
	require.Len(t, f.drawCounts, 1, "frame within limits ends in exactly one draw call")
	assert.Equal(t, 6*vertsPerQuad, f.drawCounts[0])
}

func TestRendererCropToUV(t *testing.T) {
	f := newFakeGL()
	r, _ := newTestRenderer(t, f, Config{})

	tex := loadedGPUTexture(f, 100, 50)
	r.ApplyTexture(tex)
	r.DrawTexture(0, 0, 20, 20, 10, 10, 20, 20)
	r.OnPostDraw()

	require.Len(t, f.uploads, 1)
	data := f.uploads[0]

	_, _, _, u0, v0, _ := vertexAt(data, 0) // top-left
	_, _, _, u1, v1, _ := vertexAt(data, 5) // bottom-right
	assert.InDelta(t, 0.1, u0, 1e-6)
	assert.InDelta(t, 0.2, v0, 1e-6)
	assert.InDelta(t, 0.3, u1, 1e-6)
	assert.InDelta(t, 0.4, v1, 1e-6)
}

func TestRendererSkipsDrawsWithoutAppliedTexture(t *testing.T) {
	f := newFakeGL()
	r, _ := newTestRenderer(t, f, Config{})

	r.DrawTexture(0, 0, 10, 10, 0, 0, 10, 10)
	r.ApplyTexture(newGPUTexture()) // not loaded
	r.DrawTexture(0, 0, 10, 10, 0, 0, 10, 10)
	r.OnPostDraw()

	assert.Empty(t, f.drawCounts)
}

func TestRendererTintPacksRGBA(t *testing.T) {
	f := newFakeGL()
	r, _ := newTestRenderer(t, f, Config{})

	tex := loadedGPUTexture(f, 8, 8)
	r.SetTint(0x11, 0x22, 0x33, 0x44)
	r.ApplyTexture(tex)
	r.DrawTexture(0, 0, 8, 8, 0, 0, 8, 8)
	r.OnPostDraw()

	require.Len(t, f.uploads, 1)
	data := f.uploads[0]
	// Color bytes land in r,g,b,a order for the normalized ubyte attribute.
	assert.Equal(t, byte(0x11), data[20])
	assert.Equal(t, byte(0x22), data[21])
	assert.Equal(t, byte(0x33), data[22])
	assert.Equal(t, byte(0x44), data[23])
}

func TestRendererClampsUnitsToHostLimit(t *testing.T) {
	f := newFakeGL()
	f.maxUnits = 2
	r, _ := newTestRenderer(t, f, Config{MaxBatchTextures: 8})
	assert.Equal(t, 2, r.cache.maxUnits)
}

func TestRendererResizeUpdatesProjection(t *testing.T) {
	f := newFakeGL()
	r, _ := newTestRenderer(t, f, Config{Width: 800, Height: 600})

	r.Resize(400, 300)
	tex := loadedGPUTexture(f, 8, 8)
	r.ApplyTexture(tex)
	r.DrawTexture(0, 0, 8, 8, 0, 0, 8, 8)
	r.OnPostDraw()

	m := f.matrices["uMVP"]
	require.Len(t, m, 16)
	assert.InDelta(t, 2.0/400, m[0], 1e-6)
	assert.InDelta(t, -2.0/300, m[5], 1e-6)
}

func TestRendererSamplerUniformsPointAtUnits(t *testing.T) {
	f := newFakeGL()
	newTestRenderer(t, f, Config{MaxBatchTextures: 3})

	assert.Equal(t, 0, f.int1s["uTextures[0]"])
	assert.Equal(t, 1, f.int1s["uTextures[1]"])
	assert.Equal(t, 2, f.int1s["uTextures[2]"])
}

func TestNewFallsBackToNoop(t *testing.T) {
	r, factory := New(nil, nil, Config{})
	require.NotNil(t, factory)
	assert.IsType(t, noopRenderer{}, r)

	// Calls on the no-op renderer are safe.
	r.OnPreDraw()
	r.ApplyTexture(nil)
	r.DrawTexture(0, 0, 1, 1, 0, 0, 1, 1)
	r.OnPostDraw()
	r.Destroy()
}

func TestNewDisabledBackend(t *testing.T) {
	f := newFakeGL()
	r, _ := New(f, nil, Config{Backend: BackendNone})
	assert.IsType(t, noopRenderer{}, r)
}

func TestNewPrefersGPU(t *testing.T) {
	f := newFakeGL()
	r, factory := New(f, nil, Config{})
	assert.IsType(t, &webglRenderer{}, r)
	require.NotNil(t, factory)
	r.Destroy()
}
