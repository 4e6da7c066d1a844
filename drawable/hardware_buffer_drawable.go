// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawable

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// HardwareBuffer is an externally owned GPU-importable buffer.
type HardwareBuffer interface {
	// Size returns the buffer dimensions in pixels. They never change.
	Size() (width, height int)

	// Format returns the pixel format of the buffer.
	Format() gputypes.TextureFormat

	// API returns the GPU API the buffer can be imported into.
	API() API

	// Import makes a texture aliasing the buffer on d. The caller owns the
	// returned texture.
	Import(d *Device) (hal.Texture, error)
}

// HardwareBufferDrawable draws into a HardwareBuffer. Its size is fixed by
// the buffer, and Present does nothing: the owner of the buffer decides
// when to read it.
type HardwareBufferDrawable struct {
	base

	buffer HardwareBuffer
	dev    *Device

	// Buffers have a fixed size; UpdateSize never resizes the drawable.
	bufWidth, bufHeight int
}

// MakeFrom returns a drawable rendering into buffer.
//
// When device is nil a new device is opened on the buffer's API. Otherwise
// device must be on the same API; the drawable then takes its own
// reference and Device returns exactly device.
func MakeFrom(buffer HardwareBuffer, device *Device) (*HardwareBufferDrawable, error) {
	if buffer == nil {
		return nil, ErrNilBuffer
	}
	width, height := buffer.Size()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	if device == nil {
		d, err := OpenDevice(buffer.API())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDeviceCreation, err)
		}
		device = d
	} else {
		if device.API() != buffer.API() {
			return nil, fmt.Errorf("%w: device on %s, buffer on %s", ErrIncompatibleDevice, device.API(), buffer.API())
		}
		if device.Retain() == nil {
			return nil, ErrReleased
		}
	}

	d := &HardwareBufferDrawable{buffer: buffer, dev: device, bufWidth: width, bufHeight: height}
	d.backing = d
	d.width, d.height = width, height
	return d, nil
}

// Buffer returns the buffer the drawable renders into.
func (d *HardwareBufferDrawable) Buffer() HardwareBuffer { return d.buffer }

func (d *HardwareBufferDrawable) size() (int, int) {
	return d.bufWidth, d.bufHeight
}

func (d *HardwareBufferDrawable) device() (*Device, error) {
	return d.dev, nil
}

func (d *HardwareBufferDrawable) createSurface(ctx *Context, width, height int) (*Surface, error) {
	tex, err := d.buffer.Import(d.dev)
	if err != nil {
		return nil, fmt.Errorf("import hardware buffer: %w", err)
	}
	return ctx.WrapTexture("pag_hardware_buffer", tex, width, height, d.buffer.Format())
}

func (d *HardwareBufferDrawable) present(*Context, *Surface) error {
	return nil
}

func (d *HardwareBufferDrawable) release() {
	d.dev.Release()
}

var _ Drawable = (*HardwareBufferDrawable)(nil)
