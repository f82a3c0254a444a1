package gfx

import (
	"github.com/pixlgo/pixl/internal/glctx"
)

// fakeGL records every call the renderer core makes, so the batching
// behavior can be asserted without a GPU.
type fakeGL struct {
	maxUnits   int
	nextHandle uint32

	activeUnit int
	boundTex   map[int]glctx.Texture
	texDims    map[glctx.Texture][2]int
	deletedTex []glctx.Texture
	bindCalls  int

	bufferSize int
	uploads    [][]byte
	drawCounts []int

	compileFail bool
	linkFail    bool

	uniformNames []string
	attribNames  []string
	locNames     []string
	int1s        map[string]int
	matrices     map[string][]float32

	enabledAttribs map[glctx.Attrib]bool
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		maxUnits:       16,
		boundTex:       make(map[int]glctx.Texture),
		texDims:        make(map[glctx.Texture][2]int),
		uniformNames:   []string{"uMVP", "uTextures[0]"},
		attribNames:    []string{"aPosition", "aTexUnit", "aTexCoord", "aColor"},
		int1s:          make(map[string]int),
		matrices:       make(map[string][]float32),
		enabledAttribs: make(map[glctx.Attrib]bool),
	}
}

func (f *fakeGL) handle() uint32 {
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeGL) MaxTextureUnits() int          { return f.maxUnits }
func (f *fakeGL) Viewport(x, y, w, h int)       {}
func (f *fakeGL) ClearColor(r, g, b, a float32) {}
func (f *fakeGL) Clear()                        {}
func (f *fakeGL) EnableBlend()                  {}

func (f *fakeGL) CreateTexture() glctx.Texture {
	return glctx.Texture(f.handle())
}

func (f *fakeGL) BindTexture(t glctx.Texture) {
	f.boundTex[f.activeUnit] = t
	f.bindCalls++
}

func (f *fakeGL) ActiveTexture(unit int) { f.activeUnit = unit }

func (f *fakeGL) DeleteTexture(t glctx.Texture) {
	f.deletedTex = append(f.deletedTex, t)
}

func (f *fakeGL) TexImage2D(width, height int, pix []byte) {
	f.texDims[f.boundTex[f.activeUnit]] = [2]int{width, height}
}

func (f *fakeGL) TexParamNearest() {}

func (f *fakeGL) CreateBuffer() glctx.Buffer  { return glctx.Buffer(f.handle()) }
func (f *fakeGL) BindBuffer(b glctx.Buffer)   {}
func (f *fakeGL) DeleteBuffer(b glctx.Buffer) {}
func (f *fakeGL) BufferDataSize(size int)     { f.bufferSize = size }

func (f *fakeGL) BufferSubData(offset int, data []byte) {
	cp := make([]byte, len(data))
	copy(cp, data)
	f.uploads = append(f.uploads, cp)
}

func (f *fakeGL) DrawTriangles(first, count int) {
	f.drawCounts = append(f.drawCounts, count)
}

func (f *fakeGL) CreateShader(stage glctx.Stage) glctx.Shader { return glctx.Shader(f.handle()) }
func (f *fakeGL) ShaderSource(s glctx.Shader, src string)     {}
func (f *fakeGL) CompileShader(s glctx.Shader) bool           { return !f.compileFail }
func (f *fakeGL) ShaderInfoLog(s glctx.Shader) string         { return "fake compile log" }
func (f *fakeGL) DeleteShader(s glctx.Shader)                 {}

func (f *fakeGL) CreateProgram() glctx.Program                   { return glctx.Program(f.handle()) }
func (f *fakeGL) AttachShader(p glctx.Program, s glctx.Shader)   {}
func (f *fakeGL) LinkProgram(p glctx.Program) bool               { return !f.linkFail }
func (f *fakeGL) ProgramInfoLog(p glctx.Program) string          { return "fake link log" }
func (f *fakeGL) UseProgram(p glctx.Program)                     {}
func (f *fakeGL) DeleteProgram(p glctx.Program)                  {}
func (f *fakeGL) ActiveUniforms(p glctx.Program) []string        { return f.uniformNames }
func (f *fakeGL) ActiveAttribs(p glctx.Program) []string         { return f.attribNames }

func (f *fakeGL) UniformLocation(p glctx.Program, name string) glctx.Uniform {
	for i, n := range f.locNames {
		if n == name {
			return glctx.Uniform(i)
		}
	}
	f.locNames = append(f.locNames, name)
	return glctx.Uniform(len(f.locNames) - 1)
}

func (f *fakeGL) AttribLocation(p glctx.Program, name string) glctx.Attrib {
	for i, n := range f.attribNames {
		if n == name {
			return glctx.Attrib(i)
		}
	}
	return glctx.NoAttrib
}

func (f *fakeGL) locName(u glctx.Uniform) string {
	if int(u) < len(f.locNames) {
		return f.locNames[u]
	}
	return ""
}

func (f *fakeGL) Uniform1i(u glctx.Uniform, v int) { f.int1s[f.locName(u)] = v }

func (f *fakeGL) Uniform2i(u glctx.Uniform, v0, v1 int)             {}
func (f *fakeGL) Uniform3i(u glctx.Uniform, v0, v1, v2 int)         {}
func (f *fakeGL) Uniform4i(u glctx.Uniform, v0, v1, v2, v3 int)     {}
func (f *fakeGL) Uniform1f(u glctx.Uniform, v float32)              {}
func (f *fakeGL) Uniform2f(u glctx.Uniform, v0, v1 float32)         {}
func (f *fakeGL) Uniform3f(u glctx.Uniform, v0, v1, v2 float32)     {}
func (f *fakeGL) Uniform4f(u glctx.Uniform, v0, v1, v2, v3 float32) {}

func (f *fakeGL) setMatrix(u glctx.Uniform, m []float32) {
	cp := make([]float32, len(m))
	copy(cp, m)
	f.matrices[f.locName(u)] = cp
}

func (f *fakeGL) UniformMatrix2fv(u glctx.Uniform, m []float32) { f.setMatrix(u, m) }
func (f *fakeGL) UniformMatrix3fv(u glctx.Uniform, m []float32) { f.setMatrix(u, m) }
func (f *fakeGL) UniformMatrix4fv(u glctx.Uniform, m []float32) { f.setMatrix(u, m) }

func (f *fakeGL) EnableVertexAttrib(a glctx.Attrib)  { f.enabledAttribs[a] = true }
func (f *fakeGL) DisableVertexAttrib(a glctx.Attrib) { delete(f.enabledAttribs, a) }

func (f *fakeGL) VertexAttribFloat(a glctx.Attrib, size, stride, offset int) {}
func (f *fakeGL) VertexAttribUByte(a glctx.Attrib, size int, normalized bool, stride, offset int) {
}

// loadedGPUTexture fabricates a texture in the state finishLoad leaves it,
// bypassing the fetch pipeline.
func loadedGPUTexture(f *fakeGL, w, h int) *Texture {
	t := newGPUTexture()
	t.width, t.height = w, h
	t.loaded = true
	t.gpu.handle = f.CreateTexture()
	return t
}
