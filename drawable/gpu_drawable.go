// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawable

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	pag "github.com/mengzhisuoliu/libpag"
)

// View is a platform view or window a GPUDrawable draws into. The drawable
// only borrows it.
type View interface {
	// PixelSize returns the current size in physical pixels.
	PixelSize() (width, height int)
}

// FramePresenter is implemented by views that display a finished surface
// themselves, e.g. by blitting it into a native swapchain.
type FramePresenter interface {
	PresentFrame(s *Surface) error
}

// Window negotiates surfaces between a View and a Device. It is owned by
// the GPUDrawable that created it.
type Window interface {
	// Device returns the device the window renders with. The window owns
	// one reference to it.
	Device() *Device

	// CreateSurface allocates a surface for the view at the given size.
	CreateSurface(ctx *Context, width, height int) (*Surface, error)

	// Present shows s on the view.
	Present(ctx *Context, s *Surface) error

	// Release drops the device reference.
	Release()
}

// WindowConfig is passed to a WindowFactory.
type WindowConfig struct {
	// Group provides the shared device.
	Group *DeviceGroup

	// Format is the requested surface format, or TextureFormatUndefined
	// for the device's surface format.
	Format gputypes.TextureFormat
}

// WindowFactory creates the Window of a view.
type WindowFactory func(view View, cfg WindowConfig) (Window, error)

// NewWindow is the default WindowFactory. It renders into offscreen
// textures on the group's device and presents them through the view when
// the view implements FramePresenter.
func NewWindow(view View, cfg WindowConfig) (Window, error) {
	if view == nil {
		return nil, ErrNilView
	}
	if cfg.Group == nil {
		return nil, fmt.Errorf("%w: nil device group", ErrDeviceCreation)
	}
	dev, err := cfg.Group.Acquire()
	if err != nil {
		return nil, err
	}
	return &halWindow{view: view, device: dev, format: cfg.Format}, nil
}

type halWindow struct {
	view   View
	device *Device
	format gputypes.TextureFormat
}

func (w *halWindow) Device() *Device { return w.device }

func (w *halWindow) CreateSurface(ctx *Context, width, height int) (*Surface, error) {
	format := w.format
	if format == gputypes.TextureFormatUndefined {
		format = w.device.SurfaceFormat()
	}
	return ctx.NewRenderTarget("pag_view", width, height, format)
}

func (w *halWindow) Present(_ *Context, s *Surface) error {
	if p, ok := w.view.(FramePresenter); ok {
		return p.PresentFrame(s)
	}
	return nil
}

func (w *halWindow) Release() {
	w.device.Release()
}

// GPUDrawable draws into a platform view. Its size follows the view, and
// its device is created on first use from the configured DeviceGroup and
// shared with the group's other drawables.
type GPUDrawable struct {
	base

	view   View
	opts   options
	window Window
}

// FromView returns a drawable bound to view, sized to the view's current
// pixel size. It fails with ErrNilView when view is nil.
func FromView(view View, opts ...Option) (*GPUDrawable, error) {
	if view == nil {
		return nil, ErrNilView
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.resolve()

	d := &GPUDrawable{view: view, opts: o}
	d.backing = d
	d.UpdateSize()
	return d, nil
}

// View returns the bound view.
func (d *GPUDrawable) View() View { return d.view }

func (d *GPUDrawable) size() (int, int) {
	return d.view.PixelSize()
}

func (d *GPUDrawable) device() (*Device, error) {
	if d.window != nil {
		return d.window.Device(), nil
	}
	win, err := d.opts.windowFactory(d.view, WindowConfig{Group: d.opts.group, Format: d.opts.format})
	if err == nil {
		switch {
		case win == nil:
			err = errors.New("window factory returned no window")
		case win.Device() == nil:
			win.Release()
			err = errors.New("window has no device")
		}
	}
	if err != nil {
		pag.Logger().Warn("drawable: window creation failed", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrDeviceCreation, err)
	}
	d.window = win
	return win.Device(), nil
}

func (d *GPUDrawable) createSurface(ctx *Context, width, height int) (*Surface, error) {
	return d.window.CreateSurface(ctx, width, height)
}

func (d *GPUDrawable) present(ctx *Context, s *Surface) error {
	return d.window.Present(ctx, s)
}

func (d *GPUDrawable) release() {
	if d.window != nil {
		d.window.Release()
		d.window = nil
	}
}

var _ Drawable = (*GPUDrawable)(nil)
