package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMVPOrthographicProjection(t *testing.T) {
	f := newFakeGL()
	p := newShaderProgram(f, vertexShaderSource, fragmentShaderTemplate, 2)
	mvp := newMVPMatrix(p)

	mvp.setOrthographicProjection(800, 600)
	mvp.flushIfDirty()

	m := f.matrices["uMVP"]
	require.Len(t, m, 16)
	assert.InDelta(t, 2.0/800, m[0], 1e-6)
	assert.InDelta(t, -2.0/600, m[5], 1e-6)
	assert.InDelta(t, -1, m[12], 1e-6)
	assert.InDelta(t, 1, m[13], 1e-6)
	assert.InDelta(t, 1, m[15], 1e-6)
}

func TestMVPUploadsLazily(t *testing.T) {
	f := newFakeGL()
	p := newShaderProgram(f, vertexShaderSource, fragmentShaderTemplate, 2)
	mvp := newMVPMatrix(p)

	mvp.setOrthographicProjection(100, 100)
	mvp.setOrthographicProjection(200, 100)
	assert.Empty(t, f.matrices, "no upload before a flush")

	mvp.flushIfDirty()
	require.Contains(t, f.matrices, "uMVP")
	uploaded := f.matrices["uMVP"]
	assert.InDelta(t, 2.0/200, uploaded[0], 1e-6)

	delete(f.matrices, "uMVP")
	mvp.flushIfDirty()
	assert.Empty(t, f.matrices, "clean matrix must not re-upload")
}
