// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawable

import "errors"

// Common errors returned by drawables and devices.
var (
	// ErrNilView is returned by FromView when no view is given.
	ErrNilView = errors.New("drawable: nil view")

	// ErrNilBuffer is returned by MakeFrom when no hardware buffer is given.
	ErrNilBuffer = errors.New("drawable: nil hardware buffer")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("drawable: nil DeviceProvider")

	// ErrNilContext is returned when a surface is requested without a context.
	ErrNilContext = errors.New("drawable: nil context")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("drawable: invalid dimensions")

	// ErrEmptySize is returned when a surface is requested while the
	// drawable has no area. A zero-sized drawable never holds a surface.
	ErrEmptySize = errors.New("drawable: drawable has zero size")

	// ErrReleased is returned by operations on a released drawable or device.
	ErrReleased = errors.New("drawable: released")

	// ErrAPINotAvailable is returned when no backend is registered for an API.
	ErrAPINotAvailable = errors.New("drawable: GPU API not available")

	// ErrNoAdapter is returned when a backend exposes no GPU adapter.
	ErrNoAdapter = errors.New("drawable: no GPU adapter found")

	// ErrNoHALAccess is returned when a DeviceProvider does not expose its
	// HAL device and queue.
	ErrNoHALAccess = errors.New("drawable: provider does not expose HAL device")

	// ErrIncompatibleDevice is returned when a device cannot render into a
	// hardware buffer.
	ErrIncompatibleDevice = errors.New("drawable: device is incompatible with buffer")

	// ErrContextMismatch is returned when a surface is requested with a
	// context that belongs to another device.
	ErrContextMismatch = errors.New("drawable: context belongs to another device")

	// ErrDeviceCreation wraps failures to open or adopt a device.
	ErrDeviceCreation = errors.New("drawable: device creation failed")

	// ErrSurfaceCreation wraps failures to allocate a surface.
	ErrSurfaceCreation = errors.New("drawable: surface creation failed")
)
