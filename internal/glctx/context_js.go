//go:build js && wasm

package glctx

import (
	"syscall/js"

	"github.com/pkg/errors"
)

// jsContext implements Context over a WebGL2RenderingContext. GL enum
// values are looked up once at construction instead of per call.
type jsContext struct {
	gl     js.Value
	consts glConsts

	uint8Array js.Value
	staging    js.Value // reusable ArrayBuffer for uploads

	maxUnits int
}

type glConsts struct {
	arrayBuffer      int
	dynamicDraw      int
	triangles        int
	texture2D        int
	texture0         int
	rgba             int
	unsignedByte     int
	textureMinFilter int
	textureMagFilter int
	textureWrapS     int
	textureWrapT     int
	nearest          int
	clampToEdge      int
	colorBufferBit   int
	blend            int
	srcAlpha         int
	oneMinusSrcAlpha int
	compileStatus    int
	linkStatus       int
	vertexShader     int
	fragmentShader   int
	floatType        int
	activeUniforms   int
	activeAttributes int
	maxTextureUnits  int
}

// NewFromCanvas acquires a WebGL2 context from the given canvas element.
func NewFromCanvas(canvas js.Value) (Context, error) {
	gl := canvas.Call("getContext", "webgl2")
	if gl.IsUndefined() || gl.IsNull() {
		return nil, errors.New("glctx: webgl2 not available")
	}
	return newJSContext(gl), nil
}

func newJSContext(gl js.Value) *jsContext {
	c := &jsContext{
		gl:         gl,
		uint8Array: js.Global().Get("Uint8Array"),
	}
	c.consts = glConsts{
		arrayBuffer:      gl.Get("ARRAY_BUFFER").Int(),
		dynamicDraw:      gl.Get("DYNAMIC_DRAW").Int(),
		triangles:        gl.Get("TRIANGLES").Int(),
		texture2D:        gl.Get("TEXTURE_2D").Int(),
		texture0:         gl.Get("TEXTURE0").Int(),
		rgba:             gl.Get("RGBA").Int(),
		unsignedByte:     gl.Get("UNSIGNED_BYTE").Int(),
		textureMinFilter: gl.Get("TEXTURE_MIN_FILTER").Int(),
		textureMagFilter: gl.Get("TEXTURE_MAG_FILTER").Int(),
		textureWrapS:     gl.Get("TEXTURE_WRAP_S").Int(),
		textureWrapT:     gl.Get("TEXTURE_WRAP_T").Int(),
		nearest:          gl.Get("NEAREST").Int(),
		clampToEdge:      gl.Get("CLAMP_TO_EDGE").Int(),
		colorBufferBit:   gl.Get("COLOR_BUFFER_BIT").Int(),
		blend:            gl.Get("BLEND").Int(),
		srcAlpha:         gl.Get("SRC_ALPHA").Int(),
		oneMinusSrcAlpha: gl.Get("ONE_MINUS_SRC_ALPHA").Int(),
		compileStatus:    gl.Get("COMPILE_STATUS").Int(),
		linkStatus:       gl.Get("LINK_STATUS").Int(),
		vertexShader:     gl.Get("VERTEX_SHADER").Int(),
		fragmentShader:   gl.Get("FRAGMENT_SHADER").Int(),
		floatType:        gl.Get("FLOAT").Int(),
		activeUniforms:   gl.Get("ACTIVE_UNIFORMS").Int(),
		activeAttributes: gl.Get("ACTIVE_ATTRIBUTES").Int(),
		maxTextureUnits:  gl.Get("MAX_TEXTURE_IMAGE_UNITS").Int(),
	}
	c.maxUnits = gl.Call("getParameter", c.consts.maxTextureUnits).Int()
	return c
}

const shaderHeader = "#version 300 es\nprecision mediump float;\n"

func (c *jsContext) byteArrayOf(data []byte) js.Value {
	if len(data) == 0 {
		return js.Null()
	}
	if c.staging.IsUndefined() || c.staging.Get("byteLength").Int() < len(data) {
		c.staging = js.Global().Get("ArrayBuffer").New(len(data))
	}
	ba := c.uint8Array.New(c.staging, 0, len(data))
	js.CopyBytesToJS(ba, data)
	return ba
}

func (c *jsContext) MaxTextureUnits() int { return c.maxUnits }

func (c *jsContext) Viewport(x, y, w, h int) {
	c.gl.Call("viewport", x, y, w, h)
}

func (c *jsContext) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

func (c *jsContext) Clear() {
	c.gl.Call("clear", c.consts.colorBufferBit)
}

func (c *jsContext) EnableBlend() {
	c.gl.Call("enable", c.consts.blend)
	c.gl.Call("blendFunc", c.consts.srcAlpha, c.consts.oneMinusSrcAlpha)
}

func (c *jsContext) CreateTexture() Texture {
	return Texture(c.gl.Call("createTexture"))
}

func (c *jsContext) BindTexture(t Texture) {
	if !t.Valid() {
		c.gl.Call("bindTexture", c.consts.texture2D, js.Null())
		return
	}
	c.gl.Call("bindTexture", c.consts.texture2D, js.Value(t))
}

func (c *jsContext) ActiveTexture(unit int) {
	c.gl.Call("activeTexture", c.consts.texture0+unit)
}

func (c *jsContext) DeleteTexture(t Texture) {
	c.gl.Call("deleteTexture", js.Value(t))
}

func (c *jsContext) TexImage2D(width, height int, pix []byte) {
	c.gl.Call("texImage2D", c.consts.texture2D, 0, c.consts.rgba,
		width, height, 0, c.consts.rgba, c.consts.unsignedByte, c.byteArrayOf(pix))
}

func (c *jsContext) TexParamNearest() {
	c.gl.Call("texParameteri", c.consts.texture2D, c.consts.textureMinFilter, c.consts.nearest)
	c.gl.Call("texParameteri", c.consts.texture2D, c.consts.textureMagFilter, c.consts.nearest)
	c.gl.Call("texParameteri", c.consts.texture2D, c.consts.textureWrapS, c.consts.clampToEdge)
	c.gl.Call("texParameteri", c.consts.texture2D, c.consts.textureWrapT, c.consts.clampToEdge)
}

func (c *jsContext) CreateBuffer() Buffer {
	return Buffer(c.gl.Call("createBuffer"))
}

func (c *jsContext) BindBuffer(b Buffer) {
	if !b.Valid() {
		c.gl.Call("bindBuffer", c.consts.arrayBuffer, js.Null())
		return
	}
	c.gl.Call("bindBuffer", c.consts.arrayBuffer, js.Value(b))
}

func (c *jsContext) DeleteBuffer(b Buffer) {
	c.gl.Call("deleteBuffer", js.Value(b))
}

func (c *jsContext) BufferDataSize(size int) {
	c.gl.Call("bufferData", c.consts.arrayBuffer, size, c.consts.dynamicDraw)
}

func (c *jsContext) BufferSubData(offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	c.gl.Call("bufferSubData", c.consts.arrayBuffer, offset, c.byteArrayOf(data))
}

func (c *jsContext) DrawTriangles(first, count int) {
	c.gl.Call("drawArrays", c.consts.triangles, first, count)
}

func (c *jsContext) CreateShader(stage Stage) Shader {
	t := c.consts.vertexShader
	if stage == FragmentStage {
		t = c.consts.fragmentShader
	}
	return Shader(c.gl.Call("createShader", t))
}

func (c *jsContext) ShaderSource(s Shader, src string) {
	c.gl.Call("shaderSource", js.Value(s), shaderHeader+src)
}

func (c *jsContext) CompileShader(s Shader) bool {
	c.gl.Call("compileShader", js.Value(s))
	return c.gl.Call("getShaderParameter", js.Value(s), c.consts.compileStatus).Bool()
}

func (c *jsContext) ShaderInfoLog(s Shader) string {
	return c.gl.Call("getShaderInfoLog", js.Value(s)).String()
}

func (c *jsContext) DeleteShader(s Shader) {
	c.gl.Call("deleteShader", js.Value(s))
}

func (c *jsContext) CreateProgram() Program {
	return Program(c.gl.Call("createProgram"))
}

func (c *jsContext) AttachShader(p Program, s Shader) {
	c.gl.Call("attachShader", js.Value(p), js.Value(s))
}

func (c *jsContext) LinkProgram(p Program) bool {
	c.gl.Call("linkProgram", js.Value(p))
	return c.gl.Call("getProgramParameter", js.Value(p), c.consts.linkStatus).Bool()
}

func (c *jsContext) ProgramInfoLog(p Program) string {
	return c.gl.Call("getProgramInfoLog", js.Value(p)).String()
}

func (c *jsContext) UseProgram(p Program) {
	if !p.Valid() {
		c.gl.Call("useProgram", js.Null())
		return
	}
	c.gl.Call("useProgram", js.Value(p))
}

func (c *jsContext) DeleteProgram(p Program) {
	c.gl.Call("deleteProgram", js.Value(p))
}

func (c *jsContext) ActiveUniforms(p Program) []string {
	count := c.gl.Call("getProgramParameter", js.Value(p), c.consts.activeUniforms).Int()
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		info := c.gl.Call("getActiveUniform", js.Value(p), i)
		names = append(names, info.Get("name").String())
	}
	return names
}

func (c *jsContext) ActiveAttribs(p Program) []string {
	count := c.gl.Call("getProgramParameter", js.Value(p), c.consts.activeAttributes).Int()
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		info := c.gl.Call("getActiveAttrib", js.Value(p), i)
		names = append(names, info.Get("name").String())
	}
	return names
}

func (c *jsContext) UniformLocation(p Program, name string) Uniform {
	return Uniform(c.gl.Call("getUniformLocation", js.Value(p), name))
}

func (c *jsContext) AttribLocation(p Program, name string) Attrib {
	return Attrib(c.gl.Call("getAttribLocation", js.Value(p), name).Int())
}

func (c *jsContext) Uniform1i(u Uniform, v int) {
	c.gl.Call("uniform1i", js.Value(u), v)
}
func (c *jsContext) Uniform2i(u Uniform, v0, v1 int) {
	c.gl.Call("uniform2i", js.Value(u), v0, v1)
}
func (c *jsContext) Uniform3i(u Uniform, v0, v1, v2 int) {
	c.gl.Call("uniform3i", js.Value(u), v0, v1, v2)
}
func (c *jsContext) Uniform4i(u Uniform, v0, v1, v2, v3 int) {
	c.gl.Call("uniform4i", js.Value(u), v0, v1, v2, v3)
}
func (c *jsContext) Uniform1f(u Uniform, v float32) {
	c.gl.Call("uniform1f", js.Value(u), v)
}
func (c *jsContext) Uniform2f(u Uniform, v0, v1 float32) {
	c.gl.Call("uniform2f", js.Value(u), v0, v1)
}
func (c *jsContext) Uniform3f(u Uniform, v0, v1, v2 float32) {
	c.gl.Call("uniform3f", js.Value(u), v0, v1, v2)
}
func (c *jsContext) Uniform4f(u Uniform, v0, v1, v2, v3 float32) {
	c.gl.Call("uniform4f", js.Value(u), v0, v1, v2, v3)
}

func (c *jsContext) UniformMatrix2fv(u Uniform, m []float32) {
	c.gl.Call("uniformMatrix2fv", js.Value(u), false, float32Array(m))
}
func (c *jsContext) UniformMatrix3fv(u Uniform, m []float32) {
	c.gl.Call("uniformMatrix3fv", js.Value(u), false, float32Array(m))
}
func (c *jsContext) UniformMatrix4fv(u Uniform, m []float32) {
	c.gl.Call("uniformMatrix4fv", js.Value(u), false, float32Array(m))
}

func (c *jsContext) EnableVertexAttrib(a Attrib) {
	c.gl.Call("enableVertexAttribArray", int(a))
}

func (c *jsContext) DisableVertexAttrib(a Attrib) {
	c.gl.Call("disableVertexAttribArray", int(a))
}

func (c *jsContext) VertexAttribFloat(a Attrib, size, stride, offset int) {
	c.gl.Call("vertexAttribPointer", int(a), size, c.consts.floatType, false, stride, offset)
}

func (c *jsContext) VertexAttribUByte(a Attrib, size int, normalized bool, stride, offset int) {
	c.gl.Call("vertexAttribPointer", int(a), size, c.consts.unsignedByte, normalized, stride, offset)
}

func float32Array(data []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(data))
	if len(data) == 0 {
		return arr
	}
	buf := arr.Get("buffer")
	view := js.Global().Get("Uint8Array").New(buf, arr.Get("byteOffset"), arr.Get("byteLength"))
	js.CopyBytesToJS(view, float32Bytes(data))
	return arr
}
