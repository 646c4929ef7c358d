// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import (
	"log/slog"

	"github.com/gogpu/glarea/gl"
)

// compileShader creates and compiles one shader stage.
//
// On failure the info log is logged as a warning tagged with the stage, the
// shader object is deleted and the zero shader is returned with a
// *CompileError. The caller owns a returned valid shader.
func compileShader(f gl.Functions, log *slog.Logger, stage Stage, src string) (gl.Shader, error) {
	s := f.CreateShader(stage.shaderType())
	f.ShaderSource(s, src)
	f.CompileShader(s)

	if f.GetShaderi(s, gl.COMPILE_STATUS) == gl.FALSE {
		msg := f.GetShaderInfoLog(s)
		log.Warn("glarea: compile failure", "stage", stage.String(), "log", msg)
		f.DeleteShader(s)
		return gl.Shader{}, &CompileError{Stage: stage, Log: msg}
	}

	log.Debug("glarea: shader compiled", "stage", stage.String(), "shader", s.V)
	return s, nil
}
