// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import "log/slog"

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	s := glarea.NewSurface(glimpl.Functions{},
//	    glarea.WithShaderSources(src),
//	    glarea.WithDrawCount(4))
type SurfaceOption func(*surfaceOptions)

type surfaceOptions struct {
	sources   ShaderSources
	drawCount int
	logger    *slog.Logger
}

// defaultDrawCount is the triangle-fan draw range. It exceeds the four
// uploaded vertices; see WithDrawCount.
const defaultDrawCount = 6

func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		sources:   DefaultShaderSources(),
		drawCount: defaultDrawCount,
	}
}

// WithShaderSources replaces the built-in shader sources.
func WithShaderSources(src ShaderSources) SurfaceOption {
	return func(o *surfaceOptions) {
		o.sources = src
	}
}

// WithDrawCount sets the number of vertices passed to the triangle-fan draw.
//
// The default of 6 reads past the 4 uploaded vertices, which leaves the two
// extra fan vertices undefined; the surface logs a warning when it realizes
// with such a range. WithDrawCount(4) draws exactly the uploaded quad.
// Values below 1 are ignored.
func WithDrawCount(n int) SurfaceOption {
	return func(o *surfaceOptions) {
		if n > 0 {
			o.drawCount = n
		}
	}
}

// WithLogger sets a logger for this surface only. Without it the surface logs
// through Logger().
func WithLogger(l *slog.Logger) SurfaceOption {
	return func(o *surfaceOptions) {
		o.logger = l
	}
}
