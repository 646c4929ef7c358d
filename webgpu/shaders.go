// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import (
	_ "embed"

	"github.com/gogpu/glarea"
)

//go:embed shaders/quad_vert.wgsl
var quadVertexSource string

//go:embed shaders/checker_frag.wgsl
var checkerFragmentSource string

// Entry points every WGSL stage must define.
const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// DefaultShaderSources returns the built-in WGSL stages. They draw the same
// checkerboard as glarea.DefaultShaderSources.
func DefaultShaderSources() glarea.ShaderSources {
	return glarea.ShaderSources{
		Vertex:   quadVertexSource,
		Fragment: checkerFragmentSource,
	}
}
