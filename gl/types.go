// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gl

// Object handles. The zero value of every handle is the "no object" value;
// GL never returns zero for a live object.
type (
	Buffer      struct{ V uint32 }
	Program     struct{ V uint32 }
	Shader      struct{ V uint32 }
	VertexArray struct{ V uint32 }
)

// Attrib is a vertex attribute slot.
type Attrib uint32

// Enum is a GLenum.
type Enum uint32

func (b Buffer) Valid() bool {
	return b.V != 0
}

func (p Program) Valid() bool {
	return p.V != 0
}

func (s Shader) Valid() bool {
	return s.V != 0
}

func (a VertexArray) Valid() bool {
	return a.V != 0
}
