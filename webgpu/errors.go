// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import "errors"

var (
	// ErrNoProvider is returned when a device provider is nil or does not
	// expose HAL device and queue objects.
	ErrNoProvider = errors.New("webgpu: no HAL device provider")

	// ErrInvalidDimensions is returned for a zero or oversized render target.
	ErrInvalidDimensions = errors.New("webgpu: invalid target dimensions")

	// ErrNotReady is returned when a frame is requested from a torn-down
	// surface.
	ErrNotReady = errors.New("webgpu: surface not realized")

	errEmptySource = errors.New("empty shader source")
)
