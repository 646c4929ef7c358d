// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// captureLogger returns a debug-level logger writing text records to buf.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), &buf
}

// testContext is a glarea.Context whose error can be set by the test.
type testContext struct {
	err error
}

func (c *testContext) Err() error { return c.err }

var errContextLost = errors.New("context lost")

// countingDevice wraps a HAL device, counting releases and optionally
// failing render pipeline creation.
type countingDevice struct {
	hal.Device

	failPipeline bool

	modulesCreated   int
	modulesDestroyed int
	layoutsCreated   int
	layoutsDestroyed int
	pipelines        int
	pipelinesGone    int
	buffersDestroyed int
}

func (d *countingDevice) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	m, err := d.Device.CreateShaderModule(desc)
	if err == nil {
		d.modulesCreated++
	}
	return m, err
}

func (d *countingDevice) DestroyShaderModule(m hal.ShaderModule) {
	d.modulesDestroyed++
	d.Device.DestroyShaderModule(m)
}

func (d *countingDevice) CreatePipelineLayout(desc *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	l, err := d.Device.CreatePipelineLayout(desc)
	if err == nil {
		d.layoutsCreated++
	}
	return l, err
}

func (d *countingDevice) DestroyPipelineLayout(l hal.PipelineLayout) {
	d.layoutsDestroyed++
	d.Device.DestroyPipelineLayout(l)
}

func (d *countingDevice) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	if d.failPipeline {
		return nil, errors.New("entry point vs_main not found")
	}
	p, err := d.Device.CreateRenderPipeline(desc)
	if err == nil {
		d.pipelines++
	}
	return p, err
}

func (d *countingDevice) DestroyRenderPipeline(p hal.RenderPipeline) {
	d.pipelinesGone++
	d.Device.DestroyRenderPipeline(p)
}

func (d *countingDevice) DestroyBuffer(b hal.Buffer) {
	d.buffersDestroyed++
	d.Device.DestroyBuffer(b)
}
