// Package glctx abstracts the subset of the GL API used by the batched
// quad renderer behind a single interface with two implementations:
// a WebGL2 context obtained from a canvas (js/wasm) and a desktop
// OpenGL 3.3 core context (everything else). Handle types are defined
// per platform in types_js.go / types_gl.go.
//
// ShaderSource prepends the platform version header ("#version 300 es"
// or "#version 330 core"), so shader sources are written once in the
// shared in/out dialect.
package glctx

// Stage selects the shader stage for CreateShader.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

// Context is the GL surface the renderer core is written against.
// All texture-unit arguments are plain indices; implementations map
// them onto TEXTURE0+i themselves.
type Context interface {
	// MaxTextureUnits reports the host limit on fragment texture units.
	MaxTextureUnits() int

	Viewport(x, y, w, h int)
	ClearColor(r, g, b, a float32)
	Clear()
	// EnableBlend enables standard src-alpha / one-minus-src-alpha blending.
	EnableBlend()

	CreateTexture() Texture
	BindTexture(t Texture)
	ActiveTexture(unit int)
	DeleteTexture(t Texture)
	// TexImage2D uploads pix as RGBA/UNSIGNED_BYTE to the bound texture.
	TexImage2D(width, height int, pix []byte)
	// TexParamNearest sets nearest min/mag filtering and clamp-to-edge
	// wrapping on the bound texture.
	TexParamNearest()

	CreateBuffer() Buffer
	BindBuffer(b Buffer)
	DeleteBuffer(b Buffer)
	// BufferDataSize allocates size bytes of dynamic-draw storage for the
	// bound array buffer.
	BufferDataSize(size int)
	BufferSubData(offset int, data []byte)
	DrawTriangles(first, count int)

	CreateShader(stage Stage) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	// ActiveUniforms and ActiveAttribs list the names of every active
	// uniform / vertex attribute of a linked program, as reported by the
	// driver (array uniforms keep their "[0]" suffix).
	ActiveUniforms(p Program) []string
	ActiveAttribs(p Program) []string
	UniformLocation(p Program, name string) Uniform
	AttribLocation(p Program, name string) Attrib

	Uniform1i(u Uniform, v int)
	Uniform2i(u Uniform, v0, v1 int)
	Uniform3i(u Uniform, v0, v1, v2 int)
	Uniform4i(u Uniform, v0, v1, v2, v3 int)
	Uniform1f(u Uniform, v float32)
	Uniform2f(u Uniform, v0, v1 float32)
	Uniform3f(u Uniform, v0, v1, v2 float32)
	Uniform4f(u Uniform, v0, v1, v2, v3 float32)
	UniformMatrix2fv(u Uniform, m []float32)
	UniformMatrix3fv(u Uniform, m []float32)
	UniformMatrix4fv(u Uniform, m []float32)

	EnableVertexAttrib(a Attrib)
	DisableVertexAttrib(a Attrib)
	// VertexAttribFloat points a float attribute of size components at the
	// bound array buffer.
	VertexAttribFloat(a Attrib, size, stride, offset int)
	// VertexAttribUByte points an unsigned-byte attribute of size
	// components at the bound array buffer.
	VertexAttribUByte(a Attrib, size int, normalized bool, stride, offset int)
}
