// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/glarea/gl"
	"github.com/gogpu/glarea/internal/gltest"
)

var errContextLost = errors.New("context lost")

func newTestSurface(t *testing.T, opts ...SurfaceOption) (*Surface, *gltest.Recorder) {
	t.Helper()
	rec := gltest.NewRecorder()
	log, _ := captureLogger(t)
	opts = append([]SurfaceOption{WithLogger(log)}, opts...)
	return NewSurface(rec, opts...), rec
}

func assertTornDown(t *testing.T, s *Surface) {
	t.Helper()
	if s.State() != StateTornDown {
		t.Errorf("State() = %v, want %v", s.State(), StateTornDown)
	}
	if s.Program().Valid() || s.VertexBuffer().Valid() || s.VertexArray().Valid() {
		t.Errorf("handles not reset: program=%d buffer=%d vao=%d",
			s.Program().V, s.VertexBuffer().V, s.VertexArray().V)
	}
}

func TestNewSurface(t *testing.T) {
	s, rec := newTestSurface(t)
	assertTornDown(t, s)
	if len(rec.Calls()) != 0 {
		t.Errorf("NewSurface made GL calls: %v", rec.Names())
	}
	if s.DrawCount() != defaultDrawCount {
		t.Errorf("DrawCount() = %d, want %d", s.DrawCount(), defaultDrawCount)
	}
}

func TestRealize(t *testing.T) {
	s, rec := newTestSurface(t)
	s.Realize(&gltest.Context{})

	if s.State() != StateReady {
		t.Fatalf("State() = %v, want %v", s.State(), StateReady)
	}
	if !s.Program().Valid() || !s.VertexBuffer().Valid() || !s.VertexArray().Valid() {
		t.Fatal("Realize left a handle unset")
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v, want nil", s.Err())
	}
	// Only the program, the buffer and the vertex array survive.
	if rec.LivePrograms() != 1 || rec.LiveBuffers() != 1 || rec.LiveVertexArrays() != 1 || rec.LiveShaders() != 0 {
		t.Errorf("live objects: programs=%d buffers=%d vaos=%d shaders=%d",
			rec.LivePrograms(), rec.LiveBuffers(), rec.LiveVertexArrays(), rec.LiveShaders())
	}
}

func TestRealizeContextError(t *testing.T) {
	s, rec := newTestSurface(t)
	s.Realize(&gltest.Context{Error: errContextLost})

	assertTornDown(t, s)
	if len(rec.Calls()) != 0 {
		t.Errorf("GL calls on a faulted context: %v", rec.Names())
	}
}

func TestRealizeTwiceIsNoop(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{}
	s.Realize(ctx)
	program, calls := s.Program(), len(rec.Calls())

	s.Realize(ctx)
	if len(rec.Calls()) != calls {
		t.Errorf("second Realize made GL calls: %v", rec.Names()[calls:])
	}
	if s.Program() != program {
		t.Error("second Realize replaced the program")
	}
}

func TestRealizeBuildFailureStillReady(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*gltest.Recorder)
		want  error
	}{
		{"vertex", func(r *gltest.Recorder) { r.CompileFailures[gl.VERTEX_SHADER] = "bad vertex" }, ErrCompile},
		{"fragment", func(r *gltest.Recorder) { r.CompileFailures[gl.FRAGMENT_SHADER] = "bad fragment" }, ErrCompile},
		{"link", func(r *gltest.Recorder) { r.LinkFailure = "bad link" }, ErrLink},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newTestSurface(t)
			tt.setup(rec)
			ctx := &gltest.Context{}
			s.Realize(ctx)

			if s.State() != StateReady {
				t.Fatalf("State() = %v, want %v", s.State(), StateReady)
			}
			if s.Program().Valid() {
				t.Error("Program() valid after a failed build")
			}
			if !s.VertexBuffer().Valid() {
				t.Error("VertexBuffer() not created")
			}
			if !errors.Is(s.Err(), tt.want) {
				t.Errorf("Err() = %v, want %v", s.Err(), tt.want)
			}

			// Drawing with the zero program is allowed and reported as drawn.
			rec.ResetCalls()
			if !s.Render(ctx) {
				t.Error("Render() = false on a ready surface")
			}
			c, _ := rec.Find("UseProgram")
			if c.Args[0] != (gl.Program{}) {
				t.Errorf("UseProgram(%v), want the zero program", c.Args[0])
			}

			s.Unrealize(ctx)
			if rec.Live() != 0 {
				t.Errorf("%d objects leaked", rec.Live())
			}
			if errs := rec.Errors(); len(errs) != 0 {
				t.Errorf("GL misuse: %v", errs)
			}
		})
	}
}

func TestUnrealize(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{}
	s.Realize(ctx)
	vbo, program := s.VertexBuffer(), s.Program()
	rec.ResetCalls()

	s.Unrealize(ctx)

	assertTornDown(t, s)
	if rec.Live() != 0 {
		t.Errorf("%d objects leaked", rec.Live())
	}
	want := []string{"DeleteBuffer", "DeleteProgram", "DeleteVertexArray"}
	got := rec.Names()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, got[i], want[i])
		}
	}
	if c := rec.Calls()[0]; c.Args[0] != vbo {
		t.Errorf("DeleteBuffer(%v), want %v", c.Args[0], vbo)
	}
	if c := rec.Calls()[1]; c.Args[0] != program {
		t.Errorf("DeleteProgram(%v), want %v", c.Args[0], program)
	}
}

func TestUnrealizeTwiceIsNoop(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{}
	s.Realize(ctx)
	s.Unrealize(ctx)
	rec.ResetCalls()

	s.Unrealize(ctx)
	if len(rec.Calls()) != 0 {
		t.Errorf("second Unrealize made GL calls: %v", rec.Names())
	}
	assertTornDown(t, s)
	if errs := rec.Errors(); len(errs) != 0 {
		t.Errorf("GL misuse: %v", errs)
	}
}

func TestUnrealizeBeforeRealize(t *testing.T) {
	s, rec := newTestSurface(t)
	s.Unrealize(&gltest.Context{})
	if len(rec.Calls()) != 0 {
		t.Errorf("Unrealize on a fresh surface made GL calls: %v", rec.Names())
	}
	assertTornDown(t, s)
}

func TestUnrealizeContextError(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{}
	s.Realize(ctx)
	rec.ResetCalls()

	ctx.Error = errContextLost
	s.Unrealize(ctx)

	if len(rec.Calls()) != 0 {
		t.Errorf("GL calls on a faulted context: %v", rec.Names())
	}
	assertTornDown(t, s)
}

func TestRealizeAfterUnrealize(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{}
	s.Realize(ctx)
	s.Unrealize(ctx)
	s.Realize(ctx)

	if s.State() != StateReady || !s.Program().Valid() {
		t.Fatal("surface did not come back after a new context")
	}
	s.Unrealize(ctx)
	if rec.Live() != 0 {
		t.Errorf("%d objects leaked", rec.Live())
	}
}

func TestDrawRangeWarning(t *testing.T) {
	tests := []struct {
		name string
		opts []SurfaceOption
		warn bool
	}{
		{"default", nil, true},
		{"uploaded quad", []SurfaceOption{WithDrawCount(4)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := captureLogger(t)
			s := NewSurface(gltest.NewRecorder(), append(tt.opts, WithLogger(log))...)
			ctx := &gltest.Context{}
			s.Realize(ctx)
			s.Unrealize(ctx)
			s.Realize(ctx)

			n := strings.Count(buf.String(), "draw range exceeds uploaded vertices")
			switch {
			case tt.warn && n != 1:
				t.Errorf("warning logged %d times, want once", n)
			case !tt.warn && n != 0:
				t.Errorf("unexpected draw range warning")
			}
		})
	}
}

func TestWithDrawCountIgnoresNonPositive(t *testing.T) {
	s := NewSurface(gltest.NewRecorder(), WithDrawCount(0), WithDrawCount(-3))
	if s.DrawCount() != defaultDrawCount {
		t.Errorf("DrawCount() = %d, want %d", s.DrawCount(), defaultDrawCount)
	}
}

func TestWithShaderSources(t *testing.T) {
	src := ShaderSources{Vertex: "#version 300 es\nvoid main(){}", Fragment: "#version 300 es\nvoid main(){}"}
	s, rec := newTestSurface(t, WithShaderSources(src))
	s.Realize(&gltest.Context{})

	var got []string
	for _, c := range rec.Calls() {
		if c.Name == "ShaderSource" {
			got = append(got, c.Args[1].(string))
		}
	}
	if len(got) != 2 || got[0] != src.Vertex || got[1] != src.Fragment {
		t.Errorf("ShaderSource called with %q", got)
	}
}

func TestStateString(t *testing.T) {
	if StateTornDown.String() != "torn-down" || StateReady.String() != "ready" || State(9).String() != "unknown" {
		t.Error("unexpected State strings")
	}
}

// TestLifecycleEndToEnd covers become-current, one repaint and destroy with
// valid sources.
func TestLifecycleEndToEnd(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{}

	s.Realize(ctx)
	if !s.Render(ctx) {
		t.Fatal("Render() = false")
	}
	s.Unrealize(ctx)

	if got := rec.Count("CompileShader"); got != 2 {
		t.Errorf("CompileShader calls = %d, want 2", got)
	}
	if got := rec.Count("LinkProgram"); got != 1 {
		t.Errorf("LinkProgram calls = %d, want 1", got)
	}
	if got := rec.Count("DrawArrays"); got != 1 {
		t.Fatalf("DrawArrays calls = %d, want 1", got)
	}
	c, _ := rec.Find("DrawArrays")
	if c.Args[0] != gl.TRIANGLE_FAN || c.Args[1] != 0 || c.Args[2] != 6 {
		t.Errorf("DrawArrays%v, want (TRIANGLE_FAN, 0, 6)", c.Args)
	}
	if rec.Live() != 0 {
		t.Errorf("%d objects leaked", rec.Live())
	}
	if errs := rec.Errors(); len(errs) != 0 {
		t.Errorf("GL misuse: %v", errs)
	}
	assertTornDown(t, s)
}

// TestLifecycleFaultedContext covers become-current on a context that is
// already in error.
func TestLifecycleFaultedContext(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{Error: errContextLost}

	s.Realize(ctx)
	for _, name := range []string{"CreateBuffer", "CreateVertexArray", "CreateShader", "CreateProgram"} {
		if n := rec.Count(name); n != 0 {
			t.Errorf("%s calls = %d, want 0", name, n)
		}
	}
	assertTornDown(t, s)
}
