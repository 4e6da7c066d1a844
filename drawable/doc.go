// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package drawable provides GPU render targets for the pag renderer.
//
// A Drawable hides where rendering output goes. The renderer asks it for a
// Surface, draws into the surface through the device Context and calls
// Present; it never learns whether the surface belongs to a platform view
// or to an externally supplied buffer.
//
// # Variants
//
//   - GPUDrawable: bound to a View. Its size follows the view (UpdateSize)
//     and its Device comes lazily from a DeviceGroup shared with other
//     drawables. A Window negotiates surfaces and presentation; hosts plug
//     in their window system with WithWindowFactory.
//   - HardwareBufferDrawable: bound to a HardwareBuffer. Size is fixed by
//     the buffer; the device is given to MakeFrom or opened on the buffer's
//     API. ImageBuffer is a CPU-memory buffer for headless use.
//
// # Lifecycle
//
// Every drawable walks the same state machine:
//
//	Unbound -> Sized -> SurfaceReady -> (resize) -> Sized -> ... -> Released
//
// A zero-sized drawable never holds a surface. A resize frees the surface
// but keeps the device. Release frees the surface before dropping the
// device reference, and a failed surface or device creation leaves the
// drawable ready for a retry.
//
// # Devices
//
// Devices are reference counted: the last Release destroys the GPU device.
// The headless noop backend is always available; import
// github.com/mengzhisuoliu/libpag/gpu to register Vulkan. A host that
// already owns a device can share it through NewDeviceFromProvider.
//
// # Usage
//
//	buf := drawable.NewImageBuffer(640, 360, drawable.APINoop)
//	d, err := drawable.MakeFrom(buf, nil)
//	if err != nil {
//		return err
//	}
//	defer d.Release()
//
//	dev, _ := d.Device()
//	ctx := dev.LockContext()
//	surface, err := d.Surface(ctx)
//	// ... render into surface.View() ...
//	dev.UnlockContext()
package drawable
