// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glimpl implements gl.Functions on top of the go-gl bindings.
//
// Init must be called with a context current before the first call, and every
// call must come from the thread that owns that context.
package glimpl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	glapi "github.com/gogpu/glarea/gl"
)

// Functions dispatches to the process-wide GL entry points loaded by Init.
type Functions struct{}

var _ glapi.Functions = Functions{}

// Init loads the GL entry points for the current context.
func Init() (Functions, error) {
	if err := gl.Init(); err != nil {
		return Functions{}, fmt.Errorf("glimpl: load GL entry points: %w", err)
	}
	return Functions{}, nil
}

func (Functions) CreateShader(ty glapi.Enum) glapi.Shader {
	return glapi.Shader{V: gl.CreateShader(uint32(ty))}
}

func (Functions) ShaderSource(s glapi.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(s.V, 1, csrc, nil)
}

func (Functions) CompileShader(s glapi.Shader) {
	gl.CompileShader(s.V)
}

func (Functions) GetShaderi(s glapi.Shader, pname glapi.Enum) int {
	var v int32
	gl.GetShaderiv(s.V, uint32(pname), &v)
	return int(v)
}

// GetShaderInfoLog reads the log into a buffer sized to the reported length
// plus a terminator.
func (f Functions) GetShaderInfoLog(s glapi.Shader) string {
	n := f.GetShaderi(s, glapi.INFO_LOG_LENGTH)
	buf := make([]byte, n+1)
	gl.GetShaderInfoLog(s.V, int32(n), nil, &buf[0])
	return trimLog(buf)
}

func (Functions) DeleteShader(s glapi.Shader) {
	gl.DeleteShader(s.V)
}

func (Functions) CreateProgram() glapi.Program {
	return glapi.Program{V: gl.CreateProgram()}
}

func (Functions) AttachShader(p glapi.Program, s glapi.Shader) {
	gl.AttachShader(p.V, s.V)
}

func (Functions) DetachShader(p glapi.Program, s glapi.Shader) {
	gl.DetachShader(p.V, s.V)
}

func (Functions) LinkProgram(p glapi.Program) {
	gl.LinkProgram(p.V)
}

func (Functions) GetProgrami(p glapi.Program, pname glapi.Enum) int {
	var v int32
	gl.GetProgramiv(p.V, uint32(pname), &v)
	return int(v)
}

func (f Functions) GetProgramInfoLog(p glapi.Program) string {
	n := f.GetProgrami(p, glapi.INFO_LOG_LENGTH)
	buf := make([]byte, n+1)
	gl.GetProgramInfoLog(p.V, int32(n), nil, &buf[0])
	return trimLog(buf)
}

func (Functions) UseProgram(p glapi.Program) {
	gl.UseProgram(p.V)
}

func (Functions) DeleteProgram(p glapi.Program) {
	gl.DeleteProgram(p.V)
}

func (Functions) CreateVertexArray() glapi.VertexArray {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return glapi.VertexArray{V: a}
}

func (Functions) BindVertexArray(a glapi.VertexArray) {
	gl.BindVertexArray(a.V)
}

func (Functions) DeleteVertexArray(a glapi.VertexArray) {
	gl.DeleteVertexArrays(1, &a.V)
}

func (Functions) CreateBuffer() glapi.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return glapi.Buffer{V: b}
}

func (Functions) BindBuffer(target glapi.Enum, b glapi.Buffer) {
	gl.BindBuffer(uint32(target), b.V)
}

func (Functions) BufferData(target glapi.Enum, data []byte, usage glapi.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data), gl.Ptr(data), uint32(usage))
}

func (Functions) DeleteBuffer(b glapi.Buffer) {
	gl.DeleteBuffers(1, &b.V)
}

func (Functions) EnableVertexAttribArray(a glapi.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (Functions) DisableVertexAttribArray(a glapi.Attrib) {
	gl.DisableVertexAttribArray(uint32(a))
}

func (Functions) VertexAttribPointer(dst glapi.Attrib, size int, ty glapi.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (Functions) Clear(mask glapi.Enum) {
	gl.Clear(uint32(mask))
}

func (Functions) DrawArrays(mode glapi.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (Functions) Flush() {
	gl.Flush()
}

func trimLog(buf []byte) string {
	return strings.TrimRight(string(buf), "\x00")
}
