// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import (
	"log/slog"

	"github.com/gogpu/glarea/gl"
)

// createProgram compiles both stages and links them.
//
// The fragment stage is only compiled once the vertex stage succeeded, and
// no program object is created unless both stages compiled. Every shader
// created here is deleted before returning.
func createProgram(f gl.Functions, log *slog.Logger, src ShaderSources) (gl.Program, error) {
	vs, err := compileShader(f, log, StageVertex, src.Vertex)
	if err != nil {
		return gl.Program{}, err
	}

	fs, err := compileShader(f, log, StageFragment, src.Fragment)
	if err != nil {
		f.DeleteShader(vs)
		return gl.Program{}, err
	}

	return linkProgram(f, log, vs, fs)
}

// linkProgram links two compiled stages into a program.
//
// vs and fs are consumed: both are deleted exactly once whether or not the
// link succeeds. On success they are detached first; the linked program keeps
// its own copy of the compiled code.
func linkProgram(f gl.Functions, log *slog.Logger, vs, fs gl.Shader) (gl.Program, error) {
	defer func() {
		f.DeleteShader(vs)
		f.DeleteShader(fs)
	}()

	p := f.CreateProgram()
	f.AttachShader(p, vs)
	f.AttachShader(p, fs)
	f.LinkProgram(p)

	if f.GetProgrami(p, gl.LINK_STATUS) == gl.FALSE {
		msg := f.GetProgramInfoLog(p)
		log.Warn("glarea: linking failure", "log", msg)
		f.DeleteProgram(p)
		return gl.Program{}, &LinkError{Log: msg}
	}

	f.DetachShader(p, vs)
	f.DetachShader(p, fs)

	log.Debug("glarea: program linked", "program", p.V)
	return p, nil
}
