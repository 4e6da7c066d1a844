// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawable

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	xdraw "golang.org/x/image/draw"
)

// ImageBuffer is a HardwareBuffer backed by CPU memory. Import uploads the
// pixels into a fresh RGBA8 texture. It suits headless rendering and
// tests; platform buffers implement HardwareBuffer directly.
type ImageBuffer struct {
	img *image.RGBA
	api API
}

// NewImageBuffer allocates a transparent width×height buffer importable on api.
func NewImageBuffer(width, height int, api API) *ImageBuffer {
	return &ImageBuffer{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		api: api,
	}
}

// Image returns the pixels. The returned image shares memory with the buffer.
func (b *ImageBuffer) Image() *image.RGBA { return b.img }

// Size returns the buffer dimensions.
func (b *ImageBuffer) Size() (int, int) {
	r := b.img.Bounds()
	return r.Dx(), r.Dy()
}

// Format returns TextureFormatRGBA8Unorm.
func (b *ImageBuffer) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// API returns the API the buffer was created for.
func (b *ImageBuffer) API() API { return b.api }

// CopyFrom replaces the buffer contents with src scaled to the buffer size.
func (b *ImageBuffer) CopyFrom(src image.Image) {
	xdraw.ApproxBiLinear.Scale(b.img, b.img.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

// Import creates a texture on d and uploads the buffer into it.
func (b *ImageBuffer) Import(d *Device) (hal.Texture, error) {
	if d == nil {
		return nil, ErrReleased
	}
	w, h := b.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, w, h)
	}
	device, queue := d.HAL()

	//nolint:gosec // G115: dimensions checked positive above
	size := hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1}
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "pag_image_buffer",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage: gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc |
			gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	})
	if err != nil {
		return nil, fmt.Errorf("create image buffer texture: %w", err)
	}

	//nolint:gosec // G115: stride and height are positive
	queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
		},
		b.img.Pix,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(b.img.Stride),
			RowsPerImage: uint32(h),
		},
		&size,
	)
	return tex, nil
}

var _ HardwareBuffer = (*ImageBuffer)(nil)
