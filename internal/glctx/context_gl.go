//go:build !js

package glctx

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// glContext implements Context over desktop OpenGL 3.3 core. The caller
// must have made a GL context current on this thread (the platform layer
// does that through GLFW) before calling New.
type glContext struct {
	vao      uint32
	maxUnits int
}

// New initializes the GL bindings and creates the single VAO the core
// profile requires for vertex attribute state.
func New() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "glctx: init")
	}
	c := &glContext{}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	var units int32
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &units)
	c.maxUnits = int(units)
	return c, nil
}

const shaderHeader = "#version 330 core\n"

func (c *glContext) MaxTextureUnits() int { return c.maxUnits }

func (c *glContext) Viewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

func (c *glContext) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (c *glContext) Clear()                        { gl.Clear(gl.COLOR_BUFFER_BIT) }

func (c *glContext) EnableBlend() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (c *glContext) CreateTexture() Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return Texture(t)
}

func (c *glContext) BindTexture(t Texture) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

func (c *glContext) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (c *glContext) DeleteTexture(t Texture) {
	h := uint32(t)
	gl.DeleteTextures(1, &h)
}

func (c *glContext) TexImage2D(width, height int, pix []byte) {
	if len(pix) == 0 {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		return
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

func (c *glContext) TexParamNearest() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (c *glContext) CreateBuffer() Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return Buffer(b)
}

func (c *glContext) BindBuffer(b Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

func (c *glContext) DeleteBuffer(b Buffer) {
	h := uint32(b)
	gl.DeleteBuffers(1, &h)
}

func (c *glContext) BufferDataSize(size int) {
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
}

func (c *glContext) BufferSubData(offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data), gl.Ptr(data))
}

func (c *glContext) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

func (c *glContext) CreateShader(stage Stage) Shader {
	t := uint32(gl.VERTEX_SHADER)
	if stage == FragmentStage {
		t = gl.FRAGMENT_SHADER
	}
	return Shader(gl.CreateShader(t))
}

func (c *glContext) ShaderSource(s Shader, src string) {
	csources, free := gl.Strs(shaderHeader + src + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (c *glContext) CompileShader(s Shader) bool {
	gl.CompileShader(uint32(s))
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *glContext) ShaderInfoLog(s Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *glContext) CreateProgram() Program { return Program(gl.CreateProgram()) }

func (c *glContext) AttachShader(p Program, s Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (c *glContext) LinkProgram(p Program) bool {
	gl.LinkProgram(uint32(p))
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *glContext) ProgramInfoLog(p Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *glContext) UseProgram(p Program)    { gl.UseProgram(uint32(p)) }
func (c *glContext) DeleteProgram(p Program) { gl.DeleteProgram(uint32(p)) }
func (c *glContext) DeleteShader(s Shader)   { gl.DeleteShader(uint32(s)) }

func (c *glContext) ActiveUniforms(p Program) []string {
	var count int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_UNIFORMS, &count)
	names := make([]string, 0, count)
	buf := make([]byte, 256)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(uint32(p), uint32(i), int32(len(buf)), &length, &size, &xtype, &buf[0])
		names = append(names, string(buf[:length]))
	}
	return names
}

func (c *glContext) ActiveAttribs(p Program) []string {
	var count int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_ATTRIBUTES, &count)
	names := make([]string, 0, count)
	buf := make([]byte, 256)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveAttrib(uint32(p), uint32(i), int32(len(buf)), &length, &size, &xtype, &buf[0])
		names = append(names, string(buf[:length]))
	}
	return names
}

func (c *glContext) UniformLocation(p Program, name string) Uniform {
	return Uniform(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (c *glContext) AttribLocation(p Program, name string) Attrib {
	return Attrib(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

func (c *glContext) Uniform1i(u Uniform, v int) { gl.Uniform1i(int32(u), int32(v)) }
func (c *glContext) Uniform2i(u Uniform, v0, v1 int) {
	gl.Uniform2i(int32(u), int32(v0), int32(v1))
}
func (c *glContext) Uniform3i(u Uniform, v0, v1, v2 int) {
	gl.Uniform3i(int32(u), int32(v0), int32(v1), int32(v2))
}
func (c *glContext) Uniform4i(u Uniform, v0, v1, v2, v3 int) {
	gl.Uniform4i(int32(u), int32(v0), int32(v1), int32(v2), int32(v3))
}
func (c *glContext) Uniform1f(u Uniform, v float32)          { gl.Uniform1f(int32(u), v) }
func (c *glContext) Uniform2f(u Uniform, v0, v1 float32)     { gl.Uniform2f(int32(u), v0, v1) }
func (c *glContext) Uniform3f(u Uniform, v0, v1, v2 float32) { gl.Uniform3f(int32(u), v0, v1, v2) }
func (c *glContext) Uniform4f(u Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(u), v0, v1, v2, v3)
}

func (c *glContext) UniformMatrix2fv(u Uniform, m []float32) {
	gl.UniformMatrix2fv(int32(u), 1, false, &m[0])
}
func (c *glContext) UniformMatrix3fv(u Uniform, m []float32) {
	gl.UniformMatrix3fv(int32(u), 1, false, &m[0])
}
func (c *glContext) UniformMatrix4fv(u Uniform, m []float32) {
	gl.UniformMatrix4fv(int32(u), 1, false, &m[0])
}

func (c *glContext) EnableVertexAttrib(a Attrib)  { gl.EnableVertexAttribArray(uint32(a)) }
func (c *glContext) DisableVertexAttrib(a Attrib) { gl.DisableVertexAttribArray(uint32(a)) }

func (c *glContext) VertexAttribFloat(a Attrib, size, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(a), int32(size), gl.FLOAT, false, int32(stride), uintptr(offset))
}

func (c *glContext) VertexAttribUByte(a Attrib, size int, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(a), int32(size), gl.UNSIGNED_BYTE, normalized, int32(stride), uintptr(offset))
}
