package gfx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandFragmentTemplate(t *testing.T) {
	src := expandFragmentTemplate(fragmentShaderTemplate, 3)

	assert.NotContains(t, src, "{{UNIT_COUNT}}")
	assert.NotContains(t, src, "{{UNIT_SWITCH}}")
	assert.Contains(t, src, "uniform sampler2D uTextures[3];")

	assert.Contains(t, src, "if (vTexUnit < 0.5)")
	assert.Contains(t, src, "else if (vTexUnit < 1.5)")
	assert.Contains(t, src, "else if (vTexUnit < 2.5)")
	assert.NotContains(t, src, "vTexUnit < 3.5")

	for i := 0; i < 3; i++ {
		assert.Contains(t, src, "texture(uTextures["+string(rune('0'+i))+"], vTexCoord) * vColor")
	}
}

func TestExpandFragmentTemplateSingleUnit(t *testing.T) {
	src := expandFragmentTemplate(fragmentShaderTemplate, 1)
	assert.Equal(t, 1, strings.Count(src, "if (vTexUnit"))
	assert.NotContains(t, src, "else if")
}
