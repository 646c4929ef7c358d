// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import (
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glarea"
)

// Option configures a Surface or Offscreen during creation.
type Option func(*options)

type options struct {
	sources glarea.ShaderSources
	format  gputypes.TextureFormat
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		sources: DefaultShaderSources(),
		format:  gputypes.TextureFormatBGRA8Unorm,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithShaderSources replaces the built-in WGSL stages. The vertex stage must
// define vs_main and the fragment stage fs_main.
func WithShaderSources(src glarea.ShaderSources) Option {
	return func(o *options) {
		o.sources = src
	}
}

// WithFormat sets the color target format of the render pipeline. It must
// match the texture views passed to Render. Offscreen accepts only
// BGRA8Unorm and RGBA8Unorm.
func WithFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		if f != gputypes.TextureFormatUndefined {
			o.format = f
		}
	}
}

// WithLogger sets a logger for this surface only. Without it the surface logs
// through glarea.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
