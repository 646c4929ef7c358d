// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glarea draws a full-screen pattern into a GPU drawing area embedded
// in a desktop window.
//
// # Overview
//
// A [Surface] owns the GPU objects of one drawing area: a static vertex
// buffer holding a unit quad and a program linked from a vertex and a
// fragment shader. The host toolkit (see host/gtkhost and host/glfwhost)
// drives it through three notifications:
//
//	s := glarea.NewSurface(glimpl.Functions{})
//
//	// context became current
//	s.Realize(ctx)
//
//	// repaint requested
//	if s.Render(ctx) {
//	    // present the frame
//	}
//
//	// context about to be destroyed
//	s.Unrealize(ctx)
//
// The webgpu sub-package provides the same Surface over a wgpu HAL device,
// with an offscreen target for headless rendering.
//
// # Errors
//
// Compile and link failures are logged with the driver's info log and leave
// the surface with the zero program, which draws nothing. A context that
// reports an error through [Context.Err] makes every entry point skip its GPU
// work. None of these conditions panic.
//
// # Threading
//
// GL state belongs to the thread that made the context current. A Surface
// does no locking: all calls must come from that thread.
//
// # Logging
//
// glarea is silent by default. Call [SetLogger] to enable output.
package glarea
