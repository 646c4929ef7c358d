// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glarea"
)

// fenceTimeout bounds the wait for one submitted frame.
const fenceTimeout = 5 * time.Second

// Surface draws the glarea quad with a HAL device. Like glarea.Surface it is
// driven by Realize, Render and Unrealize, and is NOT safe for concurrent
// use.
type Surface struct {
	device hal.Device
	queue  hal.Queue
	opts   options

	state    glarea.State
	buffer   hal.Buffer
	pipeline pipeline
	err      error
}

// NewSurface creates a torn-down Surface on device and queue. No GPU object
// is created until Realize.
func NewSurface(device hal.Device, queue hal.Queue, opts ...Option) *Surface {
	return &Surface{device: device, queue: queue, opts: newOptions(opts)}
}

func (s *Surface) logger() *slog.Logger {
	if s.opts.logger != nil {
		return s.opts.logger
	}
	return glarea.Logger()
}

// Realize creates the vertex buffer and render pipeline.
//
// If ctx reports an error nothing is created. A compile or link failure
// leaves the surface ready without a pipeline: frames clear but draw
// nothing. If the vertex buffer cannot be allocated the surface stays torn
// down and Err reports why. Realize on a ready surface is a no-op.
func (s *Surface) Realize(ctx glarea.Context) {
	if ctx.Err() != nil {
		return
	}
	log := s.logger()
	if s.state == glarea.StateReady {
		log.Debug("glarea: realize on ready surface ignored")
		return
	}

	buf, err := createVertexBuffer(s.device, s.queue)
	if err != nil {
		s.err = err
		log.Warn("glarea: vertex buffer allocation failed", "err", err)
		return
	}
	s.buffer = buf
	s.pipeline, s.err = createPipeline(s.device, log, s.opts.sources, s.opts.format)
	s.state = glarea.StateReady
	log.Info("glarea: surface realized", "backend", "webgpu", "pipeline", s.pipeline.valid())
}

// Unrealize destroys the render pipeline, its layout and the vertex buffer.
// If ctx reports an error the objects are only forgotten. Unrealize on a
// torn-down surface is a no-op.
func (s *Surface) Unrealize(ctx glarea.Context) {
	if s.state == glarea.StateTornDown {
		return
	}
	log := s.logger()
	if ctx.Err() == nil {
		s.pipeline.destroy(s.device)
		s.device.DestroyBuffer(s.buffer)
	} else {
		log.Debug("glarea: context unusable, skipping GPU object release")
	}
	s.pipeline = pipeline{}
	s.buffer = nil
	s.state = glarea.StateTornDown
	log.Info("glarea: surface unrealized", "backend", "webgpu")
}

// Render clears target to opaque black and draws the quad into it, then
// waits for the GPU to finish. It returns false, without submitting work,
// when ctx reports an error or the surface is torn down, and false when the
// frame could not be submitted.
func (s *Surface) Render(ctx glarea.Context, target hal.TextureView) bool {
	if ctx.Err() != nil || s.state != glarea.StateReady {
		return false
	}
	if err := s.submitFrame(target, nil); err != nil {
		s.logger().Warn("glarea: frame failed", "err", err)
		return false
	}
	return true
}

// submitFrame records the frame pass into a fresh encoder, lets after record
// further commands into the same encoder, then submits and waits.
func (s *Surface) submitFrame(target hal.TextureView, after func(hal.CommandEncoder)) error {
	encoder, err := s.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "glarea_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("glarea_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	s.encodeFrame(encoder, target)
	if after != nil {
		after(encoder)
	}

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer s.device.FreeCommandBuffer(cmdBuf)

	fence, err := s.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer s.device.DestroyFence(fence)

	if err := s.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	ok, err := s.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !ok {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", ok, err)
	}
	return nil
}

// encodeFrame records one render pass: clear, then the quad when a pipeline
// exists. The pass leaves no pipeline or buffer bound after End.
func (s *Surface) encodeFrame(encoder hal.CommandEncoder, target hal.TextureView) {
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "glarea_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       target,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	if s.pipeline.valid() {
		rp.SetPipeline(s.pipeline.render)
		rp.SetVertexBuffer(0, s.buffer, 0)
		rp.Draw(uint32(quadVertexCount), 1, 0, 0)
	}
	rp.End()
}

// State returns the lifecycle state.
func (s *Surface) State() glarea.State {
	return s.state
}

// Err returns the error of the last Realize, if any.
func (s *Surface) Err() error {
	return s.err
}

// HasPipeline reports whether the last Realize produced a render pipeline.
func (s *Surface) HasPipeline() bool {
	return s.pipeline.valid()
}

// Format returns the color target format of the pipeline.
func (s *Surface) Format() gputypes.TextureFormat {
	return s.opts.format
}
