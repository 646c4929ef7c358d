// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import (
	"log/slog"

	"github.com/gogpu/glarea/gl"
)

// Context is the host's graphics context as seen by a Surface.
//
// The host makes the context current before calling any Surface method. Err
// reports whether the context is unusable; a non-nil error makes the surface
// skip all GPU work for that call. The host owns the error and reports it.
type Context interface {
	Err() error
}

// State is the lifecycle state of a Surface.
type State uint8

const (
	// StateTornDown means no GPU objects are held. It is the initial state.
	StateTornDown State = iota
	// StateReady means the vertex buffer exists and the program was built,
	// possibly as the zero program after a compile or link failure.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateTornDown:
		return "torn-down"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Surface owns the GPU objects of one drawing area: a vertex array, the quad
// vertex buffer and the linked program. Its three entry points map to the
// host notifications:
//
//	context became current       -> Realize
//	context about to be destroyed -> Unrealize
//	repaint requested             -> Render
//
// A Surface is bound to the thread of its context and is NOT safe for
// concurrent use. The host must deliver one Realize before the first Render,
// and Unrealize after the last.
type Surface struct {
	gl   gl.Functions
	opts surfaceOptions

	state   State
	vao     gl.VertexArray
	vbo     gl.Buffer
	program gl.Program
	err     error

	// warnedRange is set once the draw-range warning has been logged.
	warnedRange bool
}

// NewSurface creates a torn-down Surface that issues GL calls through f.
// No GL call is made until Realize.
func NewSurface(f gl.Functions, opts ...SurfaceOption) *Surface {
	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Surface{gl: f, opts: o}
}

func (s *Surface) logger() *slog.Logger {
	if s.opts.logger != nil {
		return s.opts.logger
	}
	return Logger()
}

// Realize creates the vertex buffer and program. It must be called with ctx
// current, once per context.
//
// If ctx reports an error, Realize makes no GL call and the surface stays
// torn down. A compile or link failure is not fatal: the surface becomes
// ready with the zero program, and renders draw nothing visible. Realize on a
// ready surface is a no-op.
func (s *Surface) Realize(ctx Context) {
	if ctx.Err() != nil {
		return
	}
	log := s.logger()
	if s.state == StateReady {
		log.Debug("glarea: realize on ready surface ignored")
		return
	}

	s.vao, s.vbo = initBuffers(s.gl)
	s.program, s.err = createProgram(s.gl, log, s.opts.sources)
	s.state = StateReady

	if s.opts.drawCount > quadVertexCount && !s.warnedRange {
		s.warnedRange = true
		log.Warn("glarea: draw range exceeds uploaded vertices",
			"draw", s.opts.drawCount, "uploaded", quadVertexCount)
	}
	log.Info("glarea: surface realized",
		"program", s.program.V, "buffer", s.vbo.V, "vertexArray", s.vao.V)
}

// Unrealize releases the vertex buffer, vertex array and program. It must be
// called with ctx current, before the context is destroyed.
//
// If ctx reports an error the objects are not deleted, since no GL call can
// be made; they go away with the context. Either way the handles are reset
// to zero and the surface is torn down. Unrealize on a torn-down surface is
// a no-op.
func (s *Surface) Unrealize(ctx Context) {
	if s.state == StateTornDown {
		return
	}
	log := s.logger()
	if ctx.Err() == nil {
		s.gl.DeleteBuffer(s.vbo)
		s.gl.DeleteProgram(s.program)
		s.gl.DeleteVertexArray(s.vao)
	} else {
		log.Debug("glarea: context unusable, skipping GPU object release")
	}

	s.vao = gl.VertexArray{}
	s.vbo = gl.Buffer{}
	s.program = gl.Program{}
	s.state = StateTornDown
	log.Info("glarea: surface unrealized")
}

// State returns the lifecycle state.
func (s *Surface) State() State {
	return s.state
}

// Program returns the linked program, or the zero program when the surface
// is torn down or the program failed to build.
func (s *Surface) Program() gl.Program {
	return s.program
}

// VertexBuffer returns the quad vertex buffer, or zero when torn down.
func (s *Surface) VertexBuffer() gl.Buffer {
	return s.vbo
}

// VertexArray returns the vertex array, or zero when torn down.
func (s *Surface) VertexArray() gl.VertexArray {
	return s.vao
}

// Err returns the compile or link error of the last Realize, if any.
func (s *Surface) Err() error {
	return s.err
}

// DrawCount returns the number of vertices passed to each draw.
func (s *Surface) DrawCount() int {
	return s.opts.drawCount
}
