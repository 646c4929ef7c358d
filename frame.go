// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import "github.com/gogpu/glarea/gl"

// Render draws one frame into the current context's back buffer and reports
// whether the host should present it.
//
// Render returns false without any GL call when ctx reports an error or the
// surface is torn down. No retry is scheduled; the host decides whether to
// request another repaint.
func (s *Surface) Render(ctx Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if s.state != StateReady {
		return false
	}

	s.drawObject()
	s.gl.Flush()
	return true
}

// drawObject clears to opaque black and draws the quad as a triangle fan.
// Attribute, buffer and program bindings are reset before returning so no
// frame depends on state left by the previous one.
func (s *Surface) drawObject() {
	f := s.gl

	f.ClearColor(0, 0, 0, 1)
	f.Clear(gl.COLOR_BUFFER_BIT)

	// The zero program is valid here and draws nothing.
	f.UseProgram(s.program)

	f.EnableVertexAttribArray(positionAttrib)
	f.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	f.VertexAttribPointer(positionAttrib, positionComponents, gl.FLOAT, false, 0, 0)

	f.DrawArrays(gl.TRIANGLE_FAN, 0, s.opts.drawCount)

	f.DisableVertexAttribArray(positionAttrib)
	f.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{})
	f.UseProgram(gl.Program{})
}
