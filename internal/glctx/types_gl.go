//go:build !js

package glctx

type (
	Texture uint32
	Buffer  uint32
	Shader  uint32
	Program uint32
	Uniform int32
	Attrib  int32
)

func (t Texture) Valid() bool { return t != 0 }
func (b Buffer) Valid() bool  { return b != 0 }
func (s Shader) Valid() bool  { return s != 0 }
func (p Program) Valid() bool { return p != 0 }

// Uniform and Attrib zero values are valid GL locations; NoUniform and
// NoAttrib are the explicit "not found" sentinels GL itself reports.
const (
	NoUniform Uniform = -1
	NoAttrib  Attrib  = -1
)

func (u Uniform) Valid() bool { return u >= 0 }
func (a Attrib) Valid() bool  { return a >= 0 }

func (t Texture) Equal(o Texture) bool { return t == o }
