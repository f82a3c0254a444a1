package gfx

import (
	"fmt"
	"strings"
)

// Shader sources are written in the in/out dialect shared by GLSL 330
// core and GLSL ES 300; the glctx implementation prepends the matching
// #version header.
const vertexShaderSource = `
in vec2 aPosition;
in float aTexUnit;
in vec2 aTexCoord;
in vec4 aColor;

uniform mat4 uMVP;

out float vTexUnit;
out vec2 vTexCoord;
out vec4 vColor;

void main() {
	vTexUnit = aTexUnit;
	vTexCoord = aTexCoord;
	vColor = aColor;
	gl_Position = uMVP * vec4(aPosition, 0.0, 1.0);
}
`

// fragmentShaderTemplate carries two substitution markers: {{UNIT_COUNT}}
// for the sampler array size and {{UNIT_SWITCH}} for the generated branch
// chain. GLSL forbids indexing a sampler array with a non-constant value,
// so the per-unit if/else chain is the only portable selection mechanism.
const fragmentShaderTemplate = `
uniform sampler2D uTextures[{{UNIT_COUNT}}];

in float vTexUnit;
in vec2 vTexCoord;
in vec4 vColor;

out vec4 fragColor;

void main() {
{{UNIT_SWITCH}}
}
`

// expandFragmentTemplate resolves both markers for a fixed unit count.
func expandFragmentTemplate(template string, maxTextures int) string {
	if maxTextures < 1 {
		maxTextures = 1
	}
	var sb strings.Builder
	for i := 0; i < maxTextures; i++ {
		if i == 0 {
			sb.WriteString("\tif ")
		} else {
			sb.WriteString(" else if ")
		}
		fmt.Fprintf(&sb, "(vTexUnit < %d.5) {\n", i)
		fmt.Fprintf(&sb, "\t\tfragColor = texture(uTextures[%d], vTexCoord) * vColor;\n", i)
		sb.WriteString("\t}")
	}
	out := strings.ReplaceAll(template, "{{UNIT_COUNT}}", fmt.Sprintf("%d", maxTextures))
	out = strings.ReplaceAll(out, "{{UNIT_SWITCH}}", sb.String())
	return out
}
