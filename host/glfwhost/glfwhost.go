// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glfwhost shows a glarea.Surface in a GLFW window.
//
// The window's context is created current and the surface realized in New.
// Render runs on every refresh request, and Close unrealizes the surface
// before the window and its context are destroyed.
//
// GLFW must be driven from the main thread; lock it with
// runtime.LockOSThread before calling New.
package glfwhost

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glarea"
	"github.com/gogpu/glarea/gl/glimpl"
	"github.com/gogpu/glarea/host"
)

var errWindowClosed = errors.New("glfwhost: window destroyed")

// Config describes the window.
type Config struct {
	Title  string
	Width  int
	Height int
}

// Host is a GLFW window with one surface filling it.
type Host struct {
	win     *glfw.Window
	ctx     *host.Context
	surface *glarea.Surface
	closed  bool
}

// New initializes GLFW, opens a window with a GL 3.3 core context and
// realizes the surface in it.
func New(cfg Config, opts ...glarea.SurfaceOption) (*Host, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwhost: init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwhost: create window: %w", err)
	}

	h := &Host{
		win:     win,
		surface: glarea.NewSurface(glimpl.Functions{}, opts...),
	}
	h.ctx = host.NewContext(h.query)

	win.MakeContextCurrent()
	if !h.ctx.Load(host.DefaultLoader) {
		err := h.ctx.Err()
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	h.surface.Realize(h.ctx)

	win.SetRefreshCallback(func(*glfw.Window) { h.draw() })
	win.SetFramebufferSizeCallback(func(*glfw.Window, int, int) { h.draw() })
	return h, nil
}

func (h *Host) query() error {
	if h.closed {
		return errWindowClosed
	}
	return nil
}

func (h *Host) draw() {
	h.win.MakeContextCurrent()
	if h.surface.Render(h.ctx) {
		h.win.SwapBuffers()
	}
}

// Surface returns the surface drawn by the host.
func (h *Host) Surface() *glarea.Surface {
	return h.surface
}

// Run draws the first frame and processes events until the window is
// closed, then calls Close.
func (h *Host) Run() {
	defer h.Close()
	h.draw()
	for !h.win.ShouldClose() {
		glfw.WaitEvents()
	}
}

// Close unrealizes the surface with its context still current, then
// destroys the window and terminates GLFW. Close is idempotent.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.win.MakeContextCurrent()
	h.surface.Unrealize(h.ctx)
	h.closed = true
	h.win.Destroy()
	glfw.Terminate()
}
