// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import "github.com/gogpu/glarea/gl"

// Stage is a programmable pipeline stage.
type Stage uint8

const (
	StageVertex Stage = iota + 1
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// shaderType returns the GL shader type for the stage.
func (s Stage) shaderType() gl.Enum {
	if s == StageVertex {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}
