// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawable

import (
	"fmt"

	pag "github.com/mengzhisuoliu/libpag"
)

// State is the lifecycle state of a Drawable.
type State int

const (
	// StateUnbound means the drawable has no usable size yet.
	StateUnbound State = iota

	// StateSized means the drawable has a size but no surface.
	StateSized

	// StateSurfaceReady means a surface of the current size exists.
	StateSurfaceReady

	// StateReleased is terminal.
	StateReleased
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnbound:
		return "Unbound"
	case StateSized:
		return "Sized"
	case StateSurfaceReady:
		return "SurfaceReady"
	case StateReleased:
		return "Released"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Drawable is a GPU render target whose backing resource is hidden from the
// renderer: a platform view (GPUDrawable) or an externally owned buffer
// (HardwareBufferDrawable).
//
// A Drawable is not safe for concurrent use. Its operations are meant to
// run on the goroutine holding the device context (see Device.LockContext).
type Drawable interface {
	// Width returns the current width in pixels.
	Width() int

	// Height returns the current height in pixels.
	Height() int

	// State returns the lifecycle state.
	State() State

	// Device returns the device the drawable renders with.
	Device() (*Device, error)

	// UpdateSize re-reads the size of the backing resource. A changed size
	// frees the current surface but keeps the device.
	UpdateSize()

	// Surface returns the surface for the current size, creating it on the
	// first call. ctx must belong to the drawable's device.
	Surface(ctx *Context) (*Surface, error)

	// Present shows drawn content. It does nothing without a surface.
	Present(ctx *Context) error

	// FreeSurface releases the current surface. It is safe to call when no
	// surface exists.
	FreeSurface()

	// Release frees the surface and then drops the device reference.
	// It may be called with the device context locked. Further calls are
	// no-ops.
	Release()
}

// backing is what a Drawable variant supplies to the shared lifecycle.
type backing interface {
	size() (width, height int)
	device() (*Device, error)
	createSurface(ctx *Context, width, height int) (*Surface, error)
	present(ctx *Context, s *Surface) error
	release()
}

// base implements the Drawable lifecycle on top of a backing.
type base struct {
	backing backing

	width    int
	height   int
	surface  *Surface
	released bool
}

func (b *base) Width() int  { return b.width }
func (b *base) Height() int { return b.height }

func (b *base) State() State {
	switch {
	case b.released:
		return StateReleased
	case b.surface != nil:
		return StateSurfaceReady
	case b.width > 0 && b.height > 0:
		return StateSized
	default:
		return StateUnbound
	}
}

func (b *base) Device() (*Device, error) {
	if b.released {
		return nil, ErrReleased
	}
	return b.backing.device()
}

func (b *base) UpdateSize() {
	if b.released {
		return
	}
	w, h := b.backing.size()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == b.width && h == b.height {
		return
	}
	b.FreeSurface()
	pag.Logger().Debug("drawable: resized", "from_width", b.width, "from_height", b.height, "width", w, "height", h)
	b.width, b.height = w, h
}

func (b *base) Surface(ctx *Context) (*Surface, error) {
	if b.released {
		return nil, ErrReleased
	}
	if ctx == nil {
		return nil, ErrNilContext
	}
	if b.width <= 0 || b.height <= 0 {
		return nil, ErrEmptySize
	}
	dev, err := b.backing.device()
	if err != nil {
		return nil, err
	}
	if ctx.device != dev {
		return nil, ErrContextMismatch
	}
	if b.surface != nil {
		return b.surface, nil
	}

	s, err := b.backing.createSurface(ctx, b.width, b.height)
	if err != nil {
		pag.Logger().Warn("drawable: surface creation failed",
			"width", b.width, "height", b.height, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrSurfaceCreation, err)
	}
	b.surface = s
	return s, nil
}

func (b *base) Present(ctx *Context) error {
	if b.released {
		return ErrReleased
	}
	if b.surface == nil {
		return nil
	}
	if ctx == nil {
		return ErrNilContext
	}
	return b.backing.present(ctx, b.surface)
}

func (b *base) FreeSurface() {
	if b.surface == nil {
		return
	}
	b.surface.release()
	b.surface = nil
	pag.Logger().Debug("drawable: surface freed", "width", b.width, "height", b.height)
}

func (b *base) Release() {
	if b.released {
		return
	}
	b.FreeSurface()
	b.released = true
	b.backing.release()
}
