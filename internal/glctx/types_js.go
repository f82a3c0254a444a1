//go:build js && wasm

package glctx

import "syscall/js"

type (
	Texture js.Value
	Buffer  js.Value
	Shader  js.Value
	Program js.Value
	Uniform js.Value
	Attrib  int32
)

func (t Texture) Valid() bool { return js.Value(t).Truthy() }
func (b Buffer) Valid() bool  { return js.Value(b).Truthy() }
func (s Shader) Valid() bool  { return js.Value(s).Truthy() }
func (p Program) Valid() bool { return js.Value(p).Truthy() }
func (u Uniform) Valid() bool { return js.Value(u).Truthy() }

const NoAttrib Attrib = -1

func (a Attrib) Valid() bool { return a >= 0 }

func (t Texture) Equal(o Texture) bool { return js.Value(t).Equal(js.Value(o)) }
