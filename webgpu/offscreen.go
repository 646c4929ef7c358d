// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glarea"
)

// maxTargetDimension matches MaxTextureDimension2D of the default limits.
const maxTargetDimension = 8192

// copyPitchAlignment is the required BytesPerRow alignment of texture to
// buffer copies.
const copyPitchAlignment = 256

var errClosed = errors.New("webgpu: offscreen closed")

// Offscreen is a Surface with its own render target texture. It stands in
// for a window when there is none: the device never loses its context, so
// Offscreen serves as the glarea.Context of its own surface.
type Offscreen struct {
	device hal.Device
	queue  hal.Queue

	width, height uint32
	texture       hal.Texture
	view          hal.TextureView
	surface       *Surface

	// release closes a device opened for this Offscreen; nil when the
	// device is borrowed.
	release func()
	closed  bool
}

// NewOffscreen creates a width x height render target on device and a
// realized Surface drawing into it. The device stays owned by the caller.
func NewOffscreen(device hal.Device, queue hal.Queue, width, height int, opts ...Option) (*Offscreen, error) {
	if device == nil || queue == nil {
		return nil, ErrNoProvider
	}
	if width <= 0 || height <= 0 || width > maxTargetDimension || height > maxTargetDimension {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	o := newOptions(opts)
	if o.format != gputypes.TextureFormatBGRA8Unorm && o.format != gputypes.TextureFormatRGBA8Unorm {
		return nil, fmt.Errorf("webgpu: unsupported offscreen format %v", o.format)
	}

	off := &Offscreen{
		device: device,
		queue:  queue,
		width:  uint32(width),
		height: uint32(height),
	}
	if err := off.createTarget(o.format); err != nil {
		return nil, err
	}
	off.surface = &Surface{device: device, queue: queue, opts: o}
	off.surface.Realize(off)
	if off.surface.State() != glarea.StateReady {
		err := off.surface.Err()
		off.destroyTarget()
		return nil, err
	}
	return off, nil
}

// NewOffscreenFromProvider creates an Offscreen on a device shared by a host
// application. The provider must also expose HalDevice() and HalQueue()
// returning a hal.Device and hal.Queue; otherwise ErrNoProvider is returned.
// When the provider's surface format is usable it becomes the default format.
func NewOffscreenFromProvider(provider gpucontext.DeviceProvider, width, height int, opts ...Option) (*Offscreen, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%w: provider does not expose HAL types", ErrNoProvider)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoProvider)
	}

	switch f := provider.SurfaceFormat(); f {
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatRGBA8Unorm:
		opts = append([]Option{WithFormat(f)}, opts...)
	}
	return NewOffscreen(device, queue, width, height, opts...)
}

// NewOffscreenDevice opens a device with OpenDevice and creates an Offscreen
// on it. Close also closes the device.
func NewOffscreenDevice(width, height int, opts ...Option) (*Offscreen, error) {
	device, queue, release, err := OpenDevice()
	if err != nil {
		return nil, err
	}
	off, err := NewOffscreen(device, queue, width, height, opts...)
	if err != nil {
		release()
		return nil, err
	}
	off.release = release
	return off, nil
}

func (o *Offscreen) createTarget(format gputypes.TextureFormat) error {
	tex, err := o.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "glarea_target",
		Size:          hal.Extent3D{Width: o.width, Height: o.height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create target texture: %w", err)
	}
	o.texture = tex

	view, err := o.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "glarea_target_view",
	})
	if err != nil {
		o.destroyTarget()
		return fmt.Errorf("create target view: %w", err)
	}
	o.view = view
	return nil
}

func (o *Offscreen) destroyTarget() {
	if o.view != nil {
		o.device.DestroyTextureView(o.view)
		o.view = nil
	}
	if o.texture != nil {
		o.device.DestroyTexture(o.texture)
		o.texture = nil
	}
}

// Err implements glarea.Context. It reports an error once o is closed.
func (o *Offscreen) Err() error {
	if o.closed {
		return errClosed
	}
	return nil
}

// Surface returns the surface drawing into the target.
func (o *Offscreen) Surface() *Surface {
	return o.surface
}

// Size returns the target dimensions in pixels.
func (o *Offscreen) Size() (width, height int) {
	return int(o.width), int(o.height)
}

// Render draws one frame into the target without reading it back.
func (o *Offscreen) Render() bool {
	return o.surface.Render(o, o.view)
}

// Snapshot draws one frame and returns the target contents.
func (o *Offscreen) Snapshot() (*image.RGBA, error) {
	if err := o.Err(); err != nil {
		return nil, err
	}
	if o.surface.State() != glarea.StateReady {
		return nil, ErrNotReady
	}

	w, h := o.width, o.height
	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	staging, err := o.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "glarea_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer o.device.DestroyBuffer(staging)

	err = o.surface.submitFrame(o.view, func(encoder hal.CommandEncoder) {
		encoder.TransitionTextures([]hal.TextureBarrier{{
			Texture: o.texture,
			Usage: hal.TextureUsageTransition{
				OldUsage: gputypes.TextureUsageRenderAttachment,
				NewUsage: gputypes.TextureUsageCopySrc,
			},
		}})
		encoder.CopyTextureToBuffer(o.texture, staging, []hal.BufferTextureCopy{{
			BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
			TextureBase:  hal.ImageCopyTexture{Texture: o.texture, MipLevel: 0},
			Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		}})
		encoder.TransitionTextures([]hal.TextureBarrier{{
			Texture: o.texture,
			Usage: hal.TextureUsageTransition{
				OldUsage: gputypes.TextureUsageCopySrc,
				NewUsage: gputypes.TextureUsageRenderAttachment,
			},
		}})
	})
	if err != nil {
		return nil, err
	}

	readback := make([]byte, stagingSize)
	if err := o.queue.ReadBuffer(staging, 0, readback); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	swap := o.surface.Format() == gputypes.TextureFormatBGRA8Unorm
	for row := uint32(0); row < h; row++ {
		src := readback[row*alignedBytesPerRow : row*alignedBytesPerRow+bytesPerRow]
		dst := img.Pix[row*uint32(img.Stride) : row*uint32(img.Stride)+bytesPerRow]
		copyRow(dst, src, swap)
	}
	return img, nil
}

// copyRow copies one row of pixels, swapping red and blue when swap is set.
func copyRow(dst, src []byte, swap bool) {
	if !swap {
		copy(dst, src)
		return
	}
	for i := 0; i+3 < len(src); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
}

// Close unrealizes the surface, destroys the target and, for devices opened
// by NewOffscreenDevice, the device. Close is idempotent.
func (o *Offscreen) Close() {
	if o.closed {
		return
	}
	o.surface.Unrealize(o)
	o.destroyTarget()
	o.closed = true
	if o.release != nil {
		o.release()
		o.release = nil
	}
}
