// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gl defines the subset of OpenGL ES 3.0 used by glarea.
//
// The package holds no bindings of its own. [Functions] is implemented by
// gl/glimpl on top of go-gl, and by internal/gltest for call-recording tests.
// All methods must be called on the thread that owns the current context.
package gl

const (
	ARRAY_BUFFER     Enum = 0x8892
	COLOR_BUFFER_BIT Enum = 0x4000
	COMPILE_STATUS   Enum = 0x8b81
	FALSE                 = 0
	FLOAT            Enum = 0x1406
	FRAGMENT_SHADER  Enum = 0x8b30
	INFO_LOG_LENGTH  Enum = 0x8b84
	LINK_STATUS      Enum = 0x8b82
	STATIC_DRAW      Enum = 0x88e4
	TRIANGLE_FAN     Enum = 0x0006
	TRUE                  = 1
	VERTEX_SHADER    Enum = 0x8b31
)

// Functions is the GL function table.
type Functions interface {
	// Shaders.
	CreateShader(ty Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	// Programs.
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	// Vertex state.
	CreateVertexArray() VertexArray
	BindVertexArray(a VertexArray)
	DeleteVertexArray(a VertexArray)
	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, data []byte, usage Enum)
	DeleteBuffer(b Buffer)
	EnableVertexAttribArray(a Attrib)
	DisableVertexAttribArray(a Attrib)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)

	// Drawing.
	ClearColor(red, green, blue, alpha float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int)
	Flush()
}
