package gfx

// mvpMatrix holds the model-view-projection uniform for the quad shader.
// Only the orthographic 2D projection is expressed, so just four cells of
// the column-major 4x4 ever change. Updates are lazy: the matrix is
// uploaded right before the next draw, never per mutation.
type mvpMatrix struct {
	prog  *shaderProgram
	m     [16]float32
	dirty bool
}

func newMVPMatrix(prog *shaderProgram) *mvpMatrix {
	mvp := &mvpMatrix{prog: prog}
	mvp.m[0] = 1
	mvp.m[5] = 1
	mvp.m[10] = 1
	mvp.m[15] = 1
	mvp.dirty = true
	return mvp
}

// setOrthographicProjection maps pixel coordinates with the origin at the
// top-left onto clip space: x right, y down.
func (mvp *mvpMatrix) setOrthographicProjection(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	mvp.m[0] = 2 / float32(width)
	mvp.m[5] = -2 / float32(height)
	mvp.m[12] = -1
	mvp.m[13] = 1
	mvp.dirty = true
}

// flushIfDirty uploads the matrix if it changed since the last upload.
func (mvp *mvpMatrix) flushIfDirty() {
	if !mvp.dirty {
		return
	}
	mvp.prog.setMatrix4("uMVP", mvp.m[:])
	mvp.dirty = false
}
