// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawable

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	pag "github.com/mengzhisuoliu/libpag"
)

// Device is a reference-counted GPU device.
//
// A device may be shared by several drawables. Each holder takes a
// reference with Retain and drops it with Release; the GPU device is
// destroyed when the last reference goes away, so releasing one drawable
// never invalidates a device another one still uses.
//
// Rendering goes through the device Context, which callers bracket with
// LockContext and UnlockContext. Device methods are safe for concurrent use.
type Device struct {
	api      API
	device   hal.Device
	queue    hal.Queue
	adapter  string
	format   gputypes.TextureFormat
	provider gpucontext.DeviceProvider

	// destroy releases GPU objects owned by this Device. Nil for devices
	// adopted from a host, which keeps ownership.
	destroy func()

	refs atomic.Int32

	ctxMu sync.Mutex
	ctx   Context
}

func newDevice(api API, device hal.Device, queue hal.Queue) *Device {
	d := &Device{
		api:    api,
		device: device,
		queue:  queue,
		format: gputypes.TextureFormatBGRA8Unorm,
	}
	d.ctx.device = d
	d.refs.Store(1)
	return d
}

// halProvider is the optional HAL bridge of a gpucontext.DeviceProvider.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewDeviceFromProvider adopts the GPU device of a host application.
//
// The provider must also expose HalDevice() and HalQueue() returning a
// hal.Device and hal.Queue. The host keeps ownership of the GPU device:
// releasing the last reference detaches the Device without destroying it.
func NewDeviceFromProvider(api API, provider gpucontext.DeviceProvider) (*Device, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALAccess)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALAccess)
	}

	d := newDevice(api, device, queue)
	d.provider = provider
	d.adapter = provider.AdapterInfo().Name
	if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		d.format = f
	}
	return d, nil
}

// API returns the backend the device was opened on.
func (d *Device) API() API { return d.api }

// AdapterName returns the adapter name reported by the backend, if any.
func (d *Device) AdapterName() string { return d.adapter }

// SurfaceFormat returns the pixel format used for view surfaces.
func (d *Device) SurfaceFormat() gputypes.TextureFormat { return d.format }

// Provider returns the host provider the device was adopted from, or nil.
func (d *Device) Provider() gpucontext.DeviceProvider { return d.provider }

// HAL returns the underlying HAL device and queue.
func (d *Device) HAL() (hal.Device, hal.Queue) { return d.device, d.queue }

// HalDevice returns the HAL device. Together with HalQueue it lets the
// Device stand in wherever a HAL-capable provider is expected.
func (d *Device) HalDevice() any { return d.device }

// HalQueue returns the HAL queue.
func (d *Device) HalQueue() any { return d.queue }

// RefCount returns the number of live references.
func (d *Device) RefCount() int { return int(d.refs.Load()) }

// Released reports whether the last reference has been dropped.
func (d *Device) Released() bool { return d.refs.Load() <= 0 }

// tryRetain adds a reference unless the device is already released.
func (d *Device) tryRetain() bool {
	for {
		n := d.refs.Load()
		if n <= 0 {
			return false
		}
		if d.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Retain adds a reference and returns d, or nil if d is already released.
func (d *Device) Retain() *Device {
	if !d.tryRetain() {
		return nil
	}
	return d
}

// Release drops a reference. Dropping the last one destroys the GPU device
// when this Device owns it. Extra calls are ignored.
//
// Release does not take the context lock, so a holder may drop its
// reference while the context is locked.
func (d *Device) Release() {
	for {
		n := d.refs.Load()
		if n <= 0 {
			return
		}
		if !d.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n == 1 {
			// The count never rises after zero, so this runs once.
			if d.destroy != nil {
				d.destroy()
				d.destroy = nil
			}
			pag.Logger().Info("drawable: device destroyed", "api", d.api)
		}
		return
	}
}

// LockContext locks the device context for the calling goroutine and
// returns it. It returns nil if the device is released. Every non-nil
// result must be paired with UnlockContext.
func (d *Device) LockContext() *Context {
	d.ctxMu.Lock()
	if d.Released() {
		d.ctxMu.Unlock()
		return nil
	}
	return &d.ctx
}

// UnlockContext releases the lock taken by LockContext.
func (d *Device) UnlockContext() {
	d.ctxMu.Unlock()
}

// Context is the command context of a Device. It is only valid between
// LockContext and UnlockContext, on the goroutine holding the lock.
type Context struct {
	device *Device
}

// Device returns the device the context belongs to.
func (c *Context) Device() *Device { return c.device }

// NewRenderTarget allocates a surface of the given size and format.
func (c *Context) NewRenderTarget(label string, width, height int, format gputypes.TextureFormat) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	//nolint:gosec // G115: dimensions checked positive above
	tex, err := c.device.device.CreateTexture(&hal.TextureDescriptor{
		Label: label,
		Size: hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc | gputypes.TextureUsageTextureBinding,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s texture: %w", label, err)
	}
	return c.WrapTexture(label, tex, width, height, format)
}

// WrapTexture makes a surface from an existing texture on the context's
// device. The surface takes ownership of tex, even on error.
func (c *Context) WrapTexture(label string, tex hal.Texture, width, height int, format gputypes.TextureFormat) (*Surface, error) {
	view, err := c.device.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: label + "_view",
	})
	if err != nil {
		c.device.device.DestroyTexture(tex)
		return nil, fmt.Errorf("create %s texture view: %w", label, err)
	}
	pag.Logger().Debug("drawable: surface allocated", "label", label, "width", width, "height", height)
	return &Surface{
		device:  c.device,
		label:   label,
		width:   width,
		height:  height,
		format:  format,
		texture: tex,
		view:    view,
	}, nil
}

// DeviceGroup hands out one shared device to every drawable drawing into
// the same logical GPU context group.
//
// The group itself holds no reference: once every member releases the
// device it is destroyed, and the next Acquire opens a fresh one.
type DeviceGroup struct {
	api API

	mu     sync.Mutex
	device *Device
}

// NewDeviceGroup returns a group whose device is opened on api.
func NewDeviceGroup(api API) *DeviceGroup {
	return &DeviceGroup{api: api}
}

// API returns the API devices in the group are opened on.
func (g *DeviceGroup) API() API { return g.api }

// Acquire returns the group's device with a new reference owned by the
// caller, opening it if needed.
func (g *DeviceGroup) Acquire() (*Device, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.device != nil && g.device.tryRetain() {
		return g.device, nil
	}
	d, err := OpenDevice(g.api)
	if err != nil {
		return nil, err
	}
	g.device = d
	return d, nil
}

var (
	sharedGroupsMu sync.Mutex
	sharedGroups   = make(map[API]*DeviceGroup)
)

// SharedDeviceGroup returns the process-wide group for api.
func SharedDeviceGroup(api API) *DeviceGroup {
	sharedGroupsMu.Lock()
	defer sharedGroupsMu.Unlock()
	g, ok := sharedGroups[api]
	if !ok {
		g = NewDeviceGroup(api)
		sharedGroups[api] = g
	}
	return g
}
