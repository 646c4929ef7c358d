// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/glarea/gl"
)

// quadVertices are the corners of the unit square in clip space, in
// triangle-fan order.
var quadVertices = [...][2]float32{
	{-1, -1},
	{-1, 1},
	{1, 1},
	{1, -1},
}

const (
	// positionAttrib is the attribute slot of a_position.
	positionAttrib gl.Attrib = 0
	// positionComponents is the number of floats per vertex.
	positionComponents = 2
	// quadVertexCount is the number of vertices uploaded.
	quadVertexCount = len(quadVertices)
)

// quadVertexData returns the vertex positions as tightly packed float32s in
// native byte order.
func quadVertexData() []byte {
	buf := make([]byte, 0, quadVertexCount*positionComponents*4)
	for _, v := range quadVertices {
		buf = binary.NativeEndian.AppendUint32(buf, math.Float32bits(v[0]))
		buf = binary.NativeEndian.AppendUint32(buf, math.Float32bits(v[1]))
	}
	return buf
}

// initBuffers creates the vertex array and uploads the quad into a new
// buffer. The vertex array stays bound: the surface only ever uses one. The
// array buffer binding is reset to zero before returning.
//
// Failures are not reported here; they surface through the context's error
// state.
func initBuffers(f gl.Functions) (gl.VertexArray, gl.Buffer) {
	vao := f.CreateVertexArray()
	f.BindVertexArray(vao)

	vbo := f.CreateBuffer()
	f.BindBuffer(gl.ARRAY_BUFFER, vbo)
	f.BufferData(gl.ARRAY_BUFFER, quadVertexData(), gl.STATIC_DRAW)
	f.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{})

	return vao, vbo
}
