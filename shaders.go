// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import _ "embed"

//go:embed shaders/quad.vert
var quadVertexSource string

//go:embed shaders/checker.frag
var checkerFragmentSource string

// ShaderSources is the source text for the two stages of the surface program.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// DefaultShaderSources returns the built-in GLSL ES 3.00 sources: a
// pass-through vertex stage and a fragment stage that paints alternating
// black and white pixels from gl_FragCoord. The fragment stage declares a
// sampler uniform that is never bound.
func DefaultShaderSources() ShaderSources {
	return ShaderSources{
		Vertex:   quadVertexSource,
		Fragment: checkerFragmentSource,
	}
}
