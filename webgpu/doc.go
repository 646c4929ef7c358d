// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package webgpu renders the glarea quad through a wgpu HAL device.
//
// It follows the same lifecycle as glarea.Surface: Realize builds the vertex
// buffer and render pipeline, Render records one clear-and-draw pass into a
// caller-supplied texture view, and Unrealize releases everything. Shader
// stages are WGSL, compiled per stage with naga so that a failing stage is
// reported as a *glarea.CompileError, and pipeline creation failures are
// reported as a *glarea.LinkError.
//
// Offscreen pairs a Surface with its own render target and reads frames back
// into an *image.RGBA, which is how headless hosts and tests look at pixels.
//
//	device, queue, closeDevice, err := webgpu.OpenDevice()
//	if err != nil {
//	    return err
//	}
//	defer closeDevice()
//	off, err := webgpu.NewOffscreen(device, queue, 256, 256)
//	if err != nil {
//	    return err
//	}
//	defer off.Close()
//	img, err := off.Snapshot()
package webgpu
