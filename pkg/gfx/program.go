package gfx

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixlgo/pixl/internal/glctx"
)

// shaderProgram compiles and links the fixed vertex/fragment pair and
// caches every active uniform and attribute location by name, so per-frame
// setters never re-query the driver. A compile or link failure leaves the
// program non-functional but safe to call: the failure is logged and all
// setters become no-ops.
type shaderProgram struct {
	ctx    glctx.Context
	handle glctx.Program
	ok     bool

	uniforms map[string]glctx.Uniform
	attribs  map[string]glctx.Attrib
}

// newShaderProgram expands the fragment template for maxTextures units,
// compiles both stages and introspects the linked program.
func newShaderProgram(ctx glctx.Context, vertSrc, fragTemplate string, maxTextures int) *shaderProgram {
	p := &shaderProgram{
		ctx:      ctx,
		uniforms: make(map[string]glctx.Uniform),
		attribs:  make(map[string]glctx.Attrib),
	}

	vs, vok := compileStage(ctx, glctx.VertexStage, vertSrc)
	fs, fok := compileStage(ctx, glctx.FragmentStage, expandFragmentTemplate(fragTemplate, maxTextures))
	if !vok || !fok {
		if vok {
			ctx.DeleteShader(vs)
		}
		if fok {
			ctx.DeleteShader(fs)
		}
		return p
	}

	p.handle = ctx.CreateProgram()
	ctx.AttachShader(p.handle, vs)
	ctx.AttachShader(p.handle, fs)
	if !ctx.LinkProgram(p.handle) {
		slog.Error("shader program link failed", "log", ctx.ProgramInfoLog(p.handle))
		ctx.DeleteShader(vs)
		ctx.DeleteShader(fs)
		return p
	}
	ctx.DeleteShader(vs)
	ctx.DeleteShader(fs)

	for _, name := range ctx.ActiveUniforms(p.handle) {
		p.uniforms[stripIndexSuffix(name)] = ctx.UniformLocation(p.handle, name)
	}
	for _, name := range ctx.ActiveAttribs(p.handle) {
		p.attribs[stripIndexSuffix(name)] = ctx.AttribLocation(p.handle, name)
	}
	p.ok = true
	return p
}

func compileStage(ctx glctx.Context, stage glctx.Stage, src string) (glctx.Shader, bool) {
	s := ctx.CreateShader(stage)
	ctx.ShaderSource(s, src)
	if !ctx.CompileShader(s) {
		slog.Error("shader compile failed", "stage", int(stage), "log", ctx.ShaderInfoLog(s))
		ctx.DeleteShader(s)
		var none glctx.Shader
		return none, false
	}
	return s, true
}

// stripIndexSuffix normalizes driver-reported array uniform names,
// e.g. "uTextures[0]" -> "uTextures".
func stripIndexSuffix(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

func (p *shaderProgram) use() {
	if !p.ok {
		return
	}
	p.ctx.UseProgram(p.handle)
}

func (p *shaderProgram) unuse() {
	var none glctx.Program
	p.ctx.UseProgram(none)
}

func (p *shaderProgram) uniform(name string) (glctx.Uniform, bool) {
	u, found := p.uniforms[name]
	return u, found && p.ok
}

func (p *shaderProgram) setUniform1i(name string, v int) {
	if u, ok := p.uniform(name); ok {
		p.ctx.Uniform1i(u, v)
	}
}

func (p *shaderProgram) setUniform2i(name string, v0, v1 int) {
	if u, ok := p.uniform(name); ok {
		p.ctx.Uniform2i(u, v0, v1)
	}
}

func (p *shaderProgram) setUniform3i(name string, v0, v1, v2 int) {
	if u, ok := p.uniform(name); ok {
		p.ctx.Uniform3i(u, v0, v1, v2)
	}
}

func (p *shaderProgram) setUniform4i(name string, v0, v1, v2, v3 int) {
	if u, ok := p.uniform(name); ok {
		p.ctx.Uniform4i(u, v0, v1, v2, v3)
	}
}

func (p *shaderProgram) setUniform1f(name string, v float32) {
	if u, ok := p.uniform(name); ok {
		p.ctx.Uniform1f(u, v)
	}
}

func (p *shaderProgram) setUniform2f(name string, v0, v1 float32) {
	if u, ok := p.uniform(name); ok {
		p.ctx.Uniform2f(u, v0, v1)
	}
}

func (p *shaderProgram) setUniform3f(name string, v0, v1, v2 float32) {
	if u, ok := p.uniform(name); ok {
		p.ctx.Uniform3f(u, v0, v1, v2)
	}
}

func (p *shaderProgram) setUniform4f(name string, v0, v1, v2, v3 float32) {
	if u, ok := p.uniform(name); ok {
		p.ctx.Uniform4f(u, v0, v1, v2, v3)
	}
}

var (
	identity2 = []float32{1, 0, 0, 1}
	identity3 = []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	identity4 = []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
)

// setMatrix2/3/4 upload a column-major matrix; a nil slice uploads the
// identity.
func (p *shaderProgram) setMatrix2(name string, m []float32) {
	if u, ok := p.uniform(name); ok {
		if m == nil {
			m = identity2
		}
		p.ctx.UniformMatrix2fv(u, m)
	}
}

func (p *shaderProgram) setMatrix3(name string, m []float32) {
	if u, ok := p.uniform(name); ok {
		if m == nil {
			m = identity3
		}
		p.ctx.UniformMatrix3fv(u, m)
	}
}

func (p *shaderProgram) setMatrix4(name string, m []float32) {
	if u, ok := p.uniform(name); ok {
		if m == nil {
			m = identity4
		}
		p.ctx.UniformMatrix4fv(u, m)
	}
}

// setSamplerUnits assigns name[i] = i for a sampler array, so texture
// unit indices map straight through to samplers. Array elements past the
// first need their own locations, so the cache is bypassed here.
func (p *shaderProgram) setSamplerUnits(name string, count int) {
	if !p.ok {
		return
	}
	for i := 0; i < count; i++ {
		u := p.ctx.UniformLocation(p.handle, fmt.Sprintf("%s[%d]", name, i))
		if u.Valid() {
			p.ctx.Uniform1i(u, i)
		}
	}
}

// setAttribFloat points a float vertex attribute at the bound buffer and
// enables its array.
func (p *shaderProgram) setAttribFloat(name string, size, stride, offset int) {
	a, found := p.attribs[name]
	if !found || !p.ok {
		return
	}
	p.ctx.EnableVertexAttrib(a)
	p.ctx.VertexAttribFloat(a, size, stride, offset)
}

func (p *shaderProgram) setAttribUByte(name string, size int, normalized bool, stride, offset int) {
	a, found := p.attribs[name]
	if !found || !p.ok {
		return
	}
	p.ctx.EnableVertexAttrib(a)
	p.ctx.VertexAttribUByte(a, size, normalized, stride, offset)
}

// destroy disables every registered attribute array, unuses and deletes
// the program object.
func (p *shaderProgram) destroy() {
	for _, a := range p.attribs {
		p.ctx.DisableVertexAttrib(a)
	}
	p.unuse()
	if p.handle.Valid() {
		p.ctx.DeleteProgram(p.handle)
	}
	p.ok = false
}
