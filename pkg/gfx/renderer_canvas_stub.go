//go:build !js

package gfx

// The 2D canvas fallback only exists in the browser.
func newCanvasRenderer(ctx2d any, cfg Config) Renderer { return nil }
