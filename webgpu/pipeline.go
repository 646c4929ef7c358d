// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import (
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glarea"
)

// pipeline is the linked form of the two stages.
type pipeline struct {
	layout hal.PipelineLayout
	render hal.RenderPipeline
}

// createPipeline compiles both stages and links them into a render pipeline.
// The vertex stage is compiled first; if the fragment stage fails the vertex
// module is destroyed before returning.
func createPipeline(device hal.Device, log *slog.Logger, src glarea.ShaderSources, format gputypes.TextureFormat) (pipeline, error) {
	vs, err := compileStage(device, log, glarea.StageVertex, src.Vertex)
	if err != nil {
		return pipeline{}, err
	}
	fs, err := compileStage(device, log, glarea.StageFragment, src.Fragment)
	if err != nil {
		device.DestroyShaderModule(vs)
		return pipeline{}, err
	}
	return linkPipeline(device, log, vs, fs, format)
}

// linkPipeline creates the pipeline layout and render pipeline from two
// compiled modules. The modules are destroyed on every path; the pipeline
// does not need them once created.
func linkPipeline(device hal.Device, log *slog.Logger, vs, fs hal.ShaderModule, format gputypes.TextureFormat) (pipeline, error) {
	defer device.DestroyShaderModule(fs)
	defer device.DestroyShaderModule(vs)

	layout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "glarea_pipeline_layout",
	})
	if err != nil {
		log.Warn("glarea: linking failure", "log", err.Error())
		return pipeline{}, &glarea.LinkError{Log: err.Error()}
	}

	render, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "glarea_pipeline",
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     vs,
			EntryPoint: vertexEntryPoint,
			Buffers:    quadVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     fs,
			EntryPoint: fragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		device.DestroyPipelineLayout(layout)
		log.Warn("glarea: linking failure", "log", err.Error())
		return pipeline{}, &glarea.LinkError{Log: err.Error()}
	}
	return pipeline{layout: layout, render: render}, nil
}

func (p *pipeline) valid() bool {
	return p.render != nil
}

// destroy releases the pipeline before its layout.
func (p *pipeline) destroy(device hal.Device) {
	if p.render != nil {
		device.DestroyRenderPipeline(p.render)
		p.render = nil
	}
	if p.layout != nil {
		device.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
}
