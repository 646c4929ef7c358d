// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gtkhost shows a glarea.Surface in a GTK 3 window through a
// GtkGLArea.
//
// The widget signals map onto the surface entry points:
//
//	realize   -> Surface.Realize
//	render    -> Surface.Render
//	unrealize -> Surface.Unrealize
//
// GtkGLArea makes its context current before emitting render, but not before
// realize or unrealize, so the host does that itself. The widget's error
// state is the context error the surface consults.
//
// GTK is single threaded: New and Run must be called from the main thread,
// which should be locked with runtime.LockOSThread.
package gtkhost

import (
	"fmt"
	"sync"

	"github.com/gotk3/gotk3/gtk"

	"github.com/gogpu/glarea"
	"github.com/gogpu/glarea/gl/glimpl"
	"github.com/gogpu/glarea/host"
)

// Config describes the window.
type Config struct {
	Title  string
	Width  int
	Height int
}

// Host is a top-level GTK window containing one GLArea.
type Host struct {
	win     *gtk.Window
	area    *gtk.GLArea
	ctx     *host.Context
	surface *glarea.Surface
	load    host.Loader
}

var initOnce sync.Once

// New creates the window and its surface. Surface options are passed to
// glarea.NewSurface. The window is not shown until Run.
func New(cfg Config, opts ...glarea.SurfaceOption) (*Host, error) {
	initOnce.Do(func() { gtk.Init(nil) })

	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("gtkhost: create window: %w", err)
	}
	win.SetTitle(cfg.Title)
	win.SetDefaultSize(cfg.Width, cfg.Height)

	area, err := gtk.GLAreaNew()
	if err != nil {
		return nil, fmt.Errorf("gtkhost: create GL area: %w", err)
	}
	area.SetRequiredVersion(3, 0)
	area.SetHasDepthBuffer(false)

	h := &Host{
		win:     win,
		area:    area,
		surface: glarea.NewSurface(glimpl.Functions{}, opts...),
		load:    host.DefaultLoader,
	}
	h.ctx = host.NewContext(area.GetError)

	area.Connect("realize", h.realize)
	area.Connect("render", h.render)
	area.Connect("unrealize", h.unrealize)
	win.Connect("destroy", gtk.MainQuit)
	win.Add(area)
	return h, nil
}

func (h *Host) realize() {
	h.area.MakeCurrent()
	h.ctx.Reset()
	if err := h.ctx.Err(); err != nil {
		glarea.Logger().Warn("gtkhost: GL context unavailable", "err", err)
		return
	}
	if !h.ctx.Load(h.load) {
		glarea.Logger().Warn("gtkhost: GL entry points unavailable", "err", h.ctx.Err())
		return
	}
	h.surface.Realize(h.ctx)
}

func (h *Host) render() bool {
	return h.surface.Render(h.ctx)
}

func (h *Host) unrealize() {
	h.area.MakeCurrent()
	h.surface.Unrealize(h.ctx)
}

// Surface returns the surface drawn by the host.
func (h *Host) Surface() *glarea.Surface {
	return h.surface
}

// Run shows the window and runs the GTK main loop until it is closed.
func (h *Host) Run() {
	h.win.ShowAll()
	gtk.Main()
}
