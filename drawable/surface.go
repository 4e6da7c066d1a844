// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawable

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Surface is a GPU render target owned by a Drawable.
//
// A Surface stays valid until the drawable frees it: on resize, on
// FreeSurface or on Release. Callers must not keep a Surface across those
// calls; check Released when in doubt.
type Surface struct {
	device *Device
	label  string
	width  int
	height int
	format gputypes.TextureFormat

	texture hal.Texture
	view    hal.TextureView

	released bool
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Format returns the pixel format of the surface.
func (s *Surface) Format() gputypes.TextureFormat { return s.format }

// Device returns the device the surface was allocated on.
func (s *Surface) Device() *Device { return s.device }

// Texture returns the backing texture, or nil once released.
func (s *Surface) Texture() hal.Texture { return s.texture }

// View returns the texture view to render into, or nil once released.
func (s *Surface) View() hal.TextureView { return s.view }

// Released reports whether the surface's GPU resources were freed.
func (s *Surface) Released() bool { return s.released }

// release destroys the view and then the texture. Safe to call twice.
func (s *Surface) release() {
	if s.released {
		return
	}
	s.released = true
	if s.view != nil {
		s.device.device.DestroyTextureView(s.view)
		s.view = nil
	}
	if s.texture != nil {
		s.device.device.DestroyTexture(s.texture)
		s.texture = nil
	}
}
