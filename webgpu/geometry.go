// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// quadVertices is the glarea fan (-1,-1) (-1,1) (1,1) (1,-1) expanded to a
// triangle list, since WebGPU has no fan topology: (v0,v1,v2) (v0,v2,v3).
var quadVertices = [...][2]float32{
	{-1, -1}, {-1, 1}, {1, 1},
	{-1, -1}, {1, 1}, {1, -1},
}

const (
	quadVertexCount = len(quadVertices)
	vertexStride    = 2 * 4
)

func quadVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			},
		},
	}
}

// quadVertexData encodes quadVertices as little-endian float32 pairs.
func quadVertexData() []byte {
	data := make([]byte, 0, quadVertexCount*vertexStride)
	for _, v := range quadVertices {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(v[0]))
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(v[1]))
	}
	return data
}

// createVertexBuffer allocates the quad vertex buffer and uploads the
// vertices through the queue.
func createVertexBuffer(device hal.Device, queue hal.Queue) (hal.Buffer, error) {
	data := quadVertexData()
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "glarea_vertices",
		Size:  uint64(len(data)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}
	queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
