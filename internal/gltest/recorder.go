// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gltest provides a call-recording gl.Functions for tests.
//
// Recorder keeps enough object state to catch leaks, double deletes and
// bindings left behind between frames. It performs no rendering.
package gltest

import (
	"fmt"
	"sort"

	"github.com/gogpu/glarea/gl"
)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

type shaderState struct {
	stage    gl.Enum
	source   string
	compiled bool
}

type programState struct {
	attached map[uint32]bool
	linked   bool
}

// Recorder implements gl.Functions and records every call.
//
// Set CompileFailures or LinkFailure before use to make compilation or linking
// fail with the given info log.
type Recorder struct {
	// CompileFailures maps a shader stage (gl.VERTEX_SHADER, gl.FRAGMENT_SHADER)
	// to the info log reported when a shader of that stage is compiled.
	CompileFailures map[gl.Enum]string
	// LinkFailure, when non-empty, makes LinkProgram fail with this log.
	LinkFailure string

	calls []Call
	// Errors collects misuse such as deleting an unknown object.
	errors []string

	next         uint32
	shaders      map[uint32]*shaderState
	programs     map[uint32]*programState
	buffers      map[uint32][]byte
	vertexArrays map[uint32]bool

	arrayBuffer  uint32
	program      uint32
	vertexArray  uint32
	attribs      map[gl.Attrib]bool
	attribBuffer map[gl.Attrib]uint32
}

var _ gl.Functions = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		CompileFailures: map[gl.Enum]string{},
		shaders:         map[uint32]*shaderState{},
		programs:        map[uint32]*programState{},
		buffers:         map[uint32][]byte{},
		vertexArrays:    map[uint32]bool{},
		attribs:         map[gl.Attrib]bool{},
		attribBuffer:    map[gl.Attrib]uint32{},
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

func (r *Recorder) fail(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *Recorder) alloc() uint32 {
	r.next++
	return r.next
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Names returns the names of the recorded calls in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times the named call was made.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns the first recorded call with the given name.
func (r *Recorder) Find(name string) (Call, bool) {
	for _, c := range r.calls {
		if c.Name == name {
			return c, true
		}
	}
	return Call{}, false
}

// ResetCalls clears the call log but keeps object state.
func (r *Recorder) ResetCalls() {
	r.calls = nil
}

// Errors returns the misuse detected so far.
func (r *Recorder) Errors() []string {
	return r.errors
}

// LiveShaders returns the number of shader objects not yet deleted.
func (r *Recorder) LiveShaders() int { return len(r.shaders) }

// LivePrograms returns the number of program objects not yet deleted.
func (r *Recorder) LivePrograms() int { return len(r.programs) }

// LiveBuffers returns the number of buffer objects not yet deleted.
func (r *Recorder) LiveBuffers() int { return len(r.buffers) }

// LiveVertexArrays returns the number of vertex arrays not yet deleted.
func (r *Recorder) LiveVertexArrays() int { return len(r.vertexArrays) }

// Live returns the total number of live objects of every kind.
func (r *Recorder) Live() int {
	return r.LiveShaders() + r.LivePrograms() + r.LiveBuffers() + r.LiveVertexArrays()
}

// BufferContents returns the contents last uploaded to b.
func (r *Recorder) BufferContents(b gl.Buffer) []byte {
	return r.buffers[b.V]
}

// Attached returns the shaders attached to p, in ascending handle order.
func (r *Recorder) Attached(p gl.Program) []gl.Shader {
	ps, ok := r.programs[p.V]
	if !ok {
		return nil
	}
	var out []gl.Shader
	for s := range ps.attached {
		out = append(out, gl.Shader{V: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].V < out[j].V })
	return out
}

// Linked reports whether p exists and linked successfully.
func (r *Recorder) Linked(p gl.Program) bool {
	ps, ok := r.programs[p.V]
	return ok && ps.linked
}

// BoundArrayBuffer returns the buffer bound to ARRAY_BUFFER.
func (r *Recorder) BoundArrayBuffer() gl.Buffer { return gl.Buffer{V: r.arrayBuffer} }

// CurrentProgram returns the program in use.
func (r *Recorder) CurrentProgram() gl.Program { return gl.Program{V: r.program} }

// BoundVertexArray returns the bound vertex array.
func (r *Recorder) BoundVertexArray() gl.VertexArray { return gl.VertexArray{V: r.vertexArray} }

// AttribEnabled reports whether the attribute slot is enabled.
func (r *Recorder) AttribEnabled(a gl.Attrib) bool { return r.attribs[a] }

func (r *Recorder) CreateShader(ty gl.Enum) gl.Shader {
	id := r.alloc()
	r.shaders[id] = &shaderState{stage: ty}
	r.record("CreateShader", ty)
	return gl.Shader{V: id}
}

func (r *Recorder) ShaderSource(s gl.Shader, src string) {
	r.record("ShaderSource", s, src)
	st, ok := r.shaders[s.V]
	if !ok {
		r.fail("ShaderSource: unknown shader %d", s.V)
		return
	}
	st.source = src
}

func (r *Recorder) CompileShader(s gl.Shader) {
	r.record("CompileShader", s)
	st, ok := r.shaders[s.V]
	if !ok {
		r.fail("CompileShader: unknown shader %d", s.V)
		return
	}
	_, failing := r.CompileFailures[st.stage]
	st.compiled = !failing && st.source != ""
}

func (r *Recorder) GetShaderi(s gl.Shader, pname gl.Enum) int {
	r.record("GetShaderi", s, pname)
	st, ok := r.shaders[s.V]
	if !ok {
		r.fail("GetShaderi: unknown shader %d", s.V)
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		if st.compiled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if n := len(r.shaderLog(st)); n > 0 {
			return n + 1
		}
		return 0
	}
	return 0
}

func (r *Recorder) shaderLog(st *shaderState) string {
	if msg, ok := r.CompileFailures[st.stage]; ok {
		return msg
	}
	if st.source == "" {
		return "empty shader source"
	}
	return ""
}

func (r *Recorder) GetShaderInfoLog(s gl.Shader) string {
	r.record("GetShaderInfoLog", s)
	st, ok := r.shaders[s.V]
	if !ok {
		r.fail("GetShaderInfoLog: unknown shader %d", s.V)
		return ""
	}
	return r.shaderLog(st)
}

func (r *Recorder) DeleteShader(s gl.Shader) {
	r.record("DeleteShader", s)
	if s.V == 0 {
		return
	}
	if _, ok := r.shaders[s.V]; !ok {
		r.fail("DeleteShader: unknown shader %d", s.V)
		return
	}
	delete(r.shaders, s.V)
}

func (r *Recorder) CreateProgram() gl.Program {
	id := r.alloc()
	r.programs[id] = &programState{attached: map[uint32]bool{}}
	r.record("CreateProgram")
	return gl.Program{V: id}
}

func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) {
	r.record("AttachShader", p, s)
	ps, ok := r.programs[p.V]
	if !ok {
		r.fail("AttachShader: unknown program %d", p.V)
		return
	}
	if _, ok := r.shaders[s.V]; !ok {
		r.fail("AttachShader: unknown shader %d", s.V)
		return
	}
	ps.attached[s.V] = true
}

func (r *Recorder) DetachShader(p gl.Program, s gl.Shader) {
	r.record("DetachShader", p, s)
	ps, ok := r.programs[p.V]
	if !ok {
		r.fail("DetachShader: unknown program %d", p.V)
		return
	}
	if !ps.attached[s.V] {
		r.fail("DetachShader: shader %d not attached to program %d", s.V, p.V)
		return
	}
	delete(ps.attached, s.V)
}

func (r *Recorder) LinkProgram(p gl.Program) {
	r.record("LinkProgram", p)
	ps, ok := r.programs[p.V]
	if !ok {
		r.fail("LinkProgram: unknown program %d", p.V)
		return
	}
	ps.linked = r.LinkFailure == "" && len(ps.attached) == 2
}

func (r *Recorder) GetProgrami(p gl.Program, pname gl.Enum) int {
	r.record("GetProgrami", p, pname)
	ps, ok := r.programs[p.V]
	if !ok {
		r.fail("GetProgrami: unknown program %d", p.V)
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		if ps.linked {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if n := len(r.programLog(ps)); n > 0 {
			return n + 1
		}
		return 0
	}
	return 0
}

func (r *Recorder) programLog(ps *programState) string {
	if r.LinkFailure != "" {
		return r.LinkFailure
	}
	if !ps.linked {
		return "missing shader stages"
	}
	return ""
}

func (r *Recorder) GetProgramInfoLog(p gl.Program) string {
	r.record("GetProgramInfoLog", p)
	ps, ok := r.programs[p.V]
	if !ok {
		r.fail("GetProgramInfoLog: unknown program %d", p.V)
		return ""
	}
	return r.programLog(ps)
}

func (r *Recorder) UseProgram(p gl.Program) {
	r.record("UseProgram", p)
	if p.V != 0 {
		if _, ok := r.programs[p.V]; !ok {
			r.fail("UseProgram: unknown program %d", p.V)
			return
		}
	}
	r.program = p.V
}

func (r *Recorder) DeleteProgram(p gl.Program) {
	r.record("DeleteProgram", p)
	if p.V == 0 {
		return
	}
	if _, ok := r.programs[p.V]; !ok {
		r.fail("DeleteProgram: unknown program %d", p.V)
		return
	}
	delete(r.programs, p.V)
	if r.program == p.V {
		r.program = 0
	}
}

func (r *Recorder) CreateVertexArray() gl.VertexArray {
	id := r.alloc()
	r.vertexArrays[id] = true
	r.record("CreateVertexArray")
	return gl.VertexArray{V: id}
}

func (r *Recorder) BindVertexArray(a gl.VertexArray) {
	r.record("BindVertexArray", a)
	if a.V != 0 && !r.vertexArrays[a.V] {
		r.fail("BindVertexArray: unknown vertex array %d", a.V)
		return
	}
	r.vertexArray = a.V
}

func (r *Recorder) DeleteVertexArray(a gl.VertexArray) {
	r.record("DeleteVertexArray", a)
	if a.V == 0 {
		return
	}
	if !r.vertexArrays[a.V] {
		r.fail("DeleteVertexArray: unknown vertex array %d", a.V)
		return
	}
	delete(r.vertexArrays, a.V)
	if r.vertexArray == a.V {
		r.vertexArray = 0
	}
}

func (r *Recorder) CreateBuffer() gl.Buffer {
	id := r.alloc()
	r.buffers[id] = nil
	r.record("CreateBuffer")
	return gl.Buffer{V: id}
}

func (r *Recorder) BindBuffer(target gl.Enum, b gl.Buffer) {
	r.record("BindBuffer", target, b)
	if target != gl.ARRAY_BUFFER {
		r.fail("BindBuffer: unsupported target %#x", uint32(target))
		return
	}
	if b.V != 0 {
		if _, ok := r.buffers[b.V]; !ok {
			r.fail("BindBuffer: unknown buffer %d", b.V)
			return
		}
	}
	r.arrayBuffer = b.V
}

func (r *Recorder) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	r.record("BufferData", target, len(data), usage)
	if target != gl.ARRAY_BUFFER || r.arrayBuffer == 0 {
		r.fail("BufferData: no buffer bound")
		return
	}
	r.buffers[r.arrayBuffer] = append([]byte(nil), data...)
}

func (r *Recorder) DeleteBuffer(b gl.Buffer) {
	r.record("DeleteBuffer", b)
	if b.V == 0 {
		return
	}
	if _, ok := r.buffers[b.V]; !ok {
		r.fail("DeleteBuffer: unknown buffer %d", b.V)
		return
	}
	delete(r.buffers, b.V)
	if r.arrayBuffer == b.V {
		r.arrayBuffer = 0
	}
}

func (r *Recorder) EnableVertexAttribArray(a gl.Attrib) {
	r.record("EnableVertexAttribArray", a)
	r.attribs[a] = true
}

func (r *Recorder) DisableVertexAttribArray(a gl.Attrib) {
	r.record("DisableVertexAttribArray", a)
	delete(r.attribs, a)
}

func (r *Recorder) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
	if r.arrayBuffer == 0 {
		r.fail("VertexAttribPointer: no buffer bound")
		return
	}
	r.attribBuffer[dst] = r.arrayBuffer
}

// AttribBuffer returns the buffer the attribute slot was last pointed at.
func (r *Recorder) AttribBuffer(a gl.Attrib) gl.Buffer {
	return gl.Buffer{V: r.attribBuffer[a]}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask gl.Enum) {
	r.record("Clear", mask)
}

func (r *Recorder) DrawArrays(mode gl.Enum, first, count int) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) Flush() {
	r.record("Flush")
}
