package gfx

import (
	"encoding/binary"
	"math"

	"github.com/pixlgo/pixl/internal/glctx"
)

// vertexStride is the byte size of one vertex: position vec2, texture
// unit float, texture coordinate vec2, then the color packed as four
// normalized unsigned bytes.
const vertexStride = 2*4 + 4 + 2*4 + 4

const vertsPerQuad = 6

// vertexBuffer accumulates quad vertices in a CPU staging slice backed by
// one GL array buffer of fixed capacity. Pushing a quad that would not
// fit flushes first, so a single quad never spans two draw calls.
type vertexBuffer struct {
	ctx    glctx.Context
	prog   *shaderProgram
	mvp    *mvpMatrix
	handle glctx.Buffer

	data  []byte
	count int
	cap   int
}

func newVertexBuffer(ctx glctx.Context, prog *shaderProgram, mvp *mvpMatrix, capacity int) *vertexBuffer {
	vb := &vertexBuffer{
		ctx:  ctx,
		prog: prog,
		mvp:  mvp,
		data: make([]byte, capacity*vertexStride),
		cap:  capacity,
	}
	vb.handle = ctx.CreateBuffer()
	ctx.BindBuffer(vb.handle)
	ctx.BufferDataSize(len(vb.data))

	prog.setAttribFloat("aPosition", 2, vertexStride, 0)
	prog.setAttribFloat("aTexUnit", 1, vertexStride, 8)
	prog.setAttribFloat("aTexCoord", 2, vertexStride, 12)
	prog.setAttribUByte("aColor", 4, true, vertexStride, 20)
	return vb
}

func (vb *vertexBuffer) pushVertex(x, y, unit, u, v float32, rgba uint32) {
	off := vb.count * vertexStride
	b := vb.data[off : off+vertexStride]
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(x))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(unit))
	binary.LittleEndian.PutUint32(b[12:], math.Float32bits(u))
	binary.LittleEndian.PutUint32(b[16:], math.Float32bits(v))
	binary.LittleEndian.PutUint32(b[20:], rgba)
	vb.count++
}

// pushQuad appends the two triangles covering the destination rectangle,
// flushing first when fewer than six vertex slots remain.
func (vb *vertexBuffer) pushQuad(x, y, w, h, unit, u0, v0, u1, v1 float32, rgba uint32) {
	if vb.count+vertsPerQuad > vb.cap {
		vb.flush()
	}
	vb.pushVertex(x, y, unit, u0, v0, rgba)
	vb.pushVertex(x, y+h, unit, u0, v1, rgba)
	vb.pushVertex(x+w, y, unit, u1, v0, rgba)
	vb.pushVertex(x+w, y, unit, u1, v0, rgba)
	vb.pushVertex(x, y+h, unit, u0, v1, rgba)
	vb.pushVertex(x+w, y+h, unit, u1, v1, rgba)
}

// flush uploads the staged vertices and issues one draw call. Pending
// uniform state goes out first; with nothing staged no draw is issued.
func (vb *vertexBuffer) flush() {
	vb.mvp.flushIfDirty()
	if vb.count == 0 {
		return
	}
	vb.ctx.BufferSubData(0, vb.data[:vb.count*vertexStride])
	vb.ctx.DrawTriangles(0, vb.count)
	vb.count = 0
}

func (vb *vertexBuffer) destroy() {
	if vb.handle.Valid() {
		var none glctx.Buffer
		vb.ctx.BindBuffer(none)
		vb.ctx.DeleteBuffer(vb.handle)
	}
	vb.count = 0
}
