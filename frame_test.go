// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import (
	"reflect"
	"slices"
	"testing"

	"github.com/gogpu/glarea/gl"
	"github.com/gogpu/glarea/internal/gltest"
)

var frameCalls = []string{
	"ClearColor", "Clear",
	"UseProgram",
	"EnableVertexAttribArray", "BindBuffer", "VertexAttribPointer",
	"DrawArrays",
	"DisableVertexAttribArray", "BindBuffer", "UseProgram",
	"Flush",
}

func TestRenderBeforeRealize(t *testing.T) {
	s, rec := newTestSurface(t)
	if s.Render(&gltest.Context{}) {
		t.Error("Render() = true on a torn-down surface")
	}
	if len(rec.Calls()) != 0 {
		t.Errorf("GL calls before Realize: %v", rec.Names())
	}
}

func TestRenderAfterUnrealize(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{}
	s.Realize(ctx)
	s.Unrealize(ctx)
	rec.ResetCalls()

	if s.Render(ctx) {
		t.Error("Render() = true after Unrealize")
	}
	if len(rec.Calls()) != 0 {
		t.Errorf("GL calls after Unrealize: %v", rec.Names())
	}
}

func TestRenderContextError(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{}
	s.Realize(ctx)
	rec.ResetCalls()

	ctx.Error = errContextLost
	if s.Render(ctx) {
		t.Error("Render() = true on a faulted context")
	}
	for _, name := range []string{"Clear", "UseProgram", "DrawArrays", "Flush"} {
		if n := rec.Count(name); n != 0 {
			t.Errorf("%s calls = %d, want 0", name, n)
		}
	}
	if s.State() != StateReady {
		t.Errorf("State() = %v, a skipped frame must not tear down", s.State())
	}
}

func TestRenderCallSequence(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{}
	s.Realize(ctx)
	rec.ResetCalls()

	if !s.Render(ctx) {
		t.Fatal("Render() = false")
	}
	if got := rec.Names(); !slices.Equal(got, frameCalls) {
		t.Fatalf("calls = %v\nwant %v", got, frameCalls)
	}

	calls := rec.Calls()
	tests := []struct {
		idx  int
		args []any
	}{
		{0, []any{float32(0), float32(0), float32(0), float32(1)}},
		{1, []any{gl.COLOR_BUFFER_BIT}},
		{2, []any{s.Program()}},
		{3, []any{gl.Attrib(0)}},
		{4, []any{gl.ARRAY_BUFFER, s.VertexBuffer()}},
		{5, []any{gl.Attrib(0), 2, gl.FLOAT, false, 0, 0}},
		{6, []any{gl.TRIANGLE_FAN, 0, 6}},
		{7, []any{gl.Attrib(0)}},
		{8, []any{gl.ARRAY_BUFFER, gl.Buffer{}}},
		{9, []any{gl.Program{}}},
	}
	for _, tt := range tests {
		if got := calls[tt.idx].Args; !reflect.DeepEqual(got, tt.args) {
			t.Errorf("%s args = %v, want %v", calls[tt.idx].Name, got, tt.args)
		}
	}
}

func TestRenderLeavesNeutralState(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{}
	s.Realize(ctx)
	s.Render(ctx)

	if rec.CurrentProgram().Valid() {
		t.Error("program left in use after the frame")
	}
	if rec.BoundArrayBuffer().Valid() {
		t.Error("array buffer left bound after the frame")
	}
	if rec.AttribEnabled(positionAttrib) {
		t.Error("attribute slot 0 left enabled after the frame")
	}
	if rec.AttribBuffer(positionAttrib) != s.VertexBuffer() {
		t.Error("attribute slot 0 did not read from the vertex buffer")
	}
	if errs := rec.Errors(); len(errs) != 0 {
		t.Errorf("GL misuse: %v", errs)
	}
}

func TestRenderConsecutiveFramesIdentical(t *testing.T) {
	s, rec := newTestSurface(t)
	ctx := &gltest.Context{}
	s.Realize(ctx)

	var frames [][]gltest.Call
	for i := 0; i < 3; i++ {
		rec.ResetCalls()
		if !s.Render(ctx) {
			t.Fatalf("frame %d: Render() = false", i)
		}
		frames = append(frames, rec.Calls())
	}
	for i := 1; i < len(frames); i++ {
		if !reflect.DeepEqual(frames[0], frames[i]) {
			t.Errorf("frame %d differs from frame 0", i)
		}
	}
}

// TestRenderDrawRangeExceedsUploadedQuad pins the default draw range: six fan
// vertices are requested while the buffer holds four.
func TestRenderDrawRangeExceedsUploadedQuad(t *testing.T) {
	tests := []struct {
		name string
		opts []SurfaceOption
		want int
	}{
		{"default", nil, 6},
		{"uploaded quad", []SurfaceOption{WithDrawCount(4)}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newTestSurface(t, tt.opts...)
			ctx := &gltest.Context{}
			s.Realize(ctx)
			s.Render(ctx)

			uploaded := len(rec.BufferContents(s.VertexBuffer())) / (positionComponents * 4)
			if uploaded != 4 {
				t.Fatalf("uploaded %d vertices, want 4", uploaded)
			}
			c, _ := rec.Find("DrawArrays")
			if c.Args[2] != tt.want {
				t.Errorf("DrawArrays count = %v, want %d", c.Args[2], tt.want)
			}
			if got := c.Args[2].(int); (got > uploaded) != (tt.want > uploaded) {
				t.Errorf("draw range %d vs %d uploaded", got, uploaded)
			}
		})
	}
}
