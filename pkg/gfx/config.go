package gfx

// Backend selects the rendering implementation probed at startup.
type Backend int

const (
	// BackendGPU prefers the batched WebGL/GL renderer, falling back to
	// the 2D canvas renderer and finally to the no-op renderer.
	BackendGPU Backend = iota
	// Backend2D skips the GPU probe entirely.
	Backend2D
	// BackendNone disables drawing; all renderer calls become no-ops.
	BackendNone
)

const (
	minBatchTextures     = 1
	maxBatchTextures     = 32
	defaultBatchTextures = 16

	minBatchVertices     = 6
	maxBatchVertices     = 65536
	defaultBatchVertices = 6144
)

// Config describes the renderer requested by the host application.
type Config struct {
	Backend Backend

	// CanvasID is the DOM id of the target canvas (js builds); when no
	// element with that id exists one is created. Ignored on native builds.
	CanvasID string

	// Width and Height are the base resolution in pixels.
	Width  int
	Height int

	// MaxBatchTextures caps how many distinct textures one batch may
	// sample. Clamped to [1,32] here and to the host texture-unit limit
	// at renderer construction.
	MaxBatchTextures int

	// MaxBatchVertices caps the vertex buffer capacity per batch.
	// Clamped to [6,65536] and floored to a multiple of 6 so the buffer
	// always holds whole quads.
	MaxBatchVertices int
}

func (c Config) normalized() Config {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.MaxBatchTextures == 0 {
		c.MaxBatchTextures = defaultBatchTextures
	}
	if c.MaxBatchTextures < minBatchTextures {
		c.MaxBatchTextures = minBatchTextures
	}
	if c.MaxBatchTextures > maxBatchTextures {
		c.MaxBatchTextures = maxBatchTextures
	}
	if c.MaxBatchVertices == 0 {
		c.MaxBatchVertices = defaultBatchVertices
	}
	if c.MaxBatchVertices < minBatchVertices {
		c.MaxBatchVertices = minBatchVertices
	}
	if c.MaxBatchVertices > maxBatchVertices {
		c.MaxBatchVertices = maxBatchVertices
	}
	c.MaxBatchVertices -= c.MaxBatchVertices % 6
	return c
}
