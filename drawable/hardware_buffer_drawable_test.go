// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawable

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// failingBuffer is a hardware buffer whose import fails once.
type failingBuffer struct {
	*ImageBuffer
	failures int
}

func (b *failingBuffer) Import(d *Device) (hal.Texture, error) {
	if b.failures > 0 {
		b.failures--
		return nil, errors.New("buffer busy")
	}
	return b.ImageBuffer.Import(d)
}

// resizingBuffer reports a different size after construction.
type resizingBuffer struct {
	*ImageBuffer
	width, height int
}

func (b *resizingBuffer) Size() (int, int) { return b.width, b.height }

func TestMakeFromNil(t *testing.T) {
	d, err := MakeFrom(nil, nil)
	if d != nil {
		t.Error("MakeFrom(nil) returned a drawable")
	}
	if !errors.Is(err, ErrNilBuffer) {
		t.Errorf("MakeFrom(nil) error = %v, want ErrNilBuffer", err)
	}

	device := openNoopDevice(t)
	if _, err := MakeFrom(nil, device); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("MakeFrom(nil, device) error = %v, want ErrNilBuffer", err)
	}
	if device.RefCount() != 1 {
		t.Errorf("failed MakeFrom changed RefCount to %d", device.RefCount())
	}
}

func TestMakeFromInvalidSize(t *testing.T) {
	_, err := MakeFrom(NewImageBuffer(0, 10, APINoop), nil)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("MakeFrom(0x10) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestMakeFromGivenDevice(t *testing.T) {
	device := openNoopDevice(t)
	buf := NewImageBuffer(64, 48, APINoop)

	d, err := MakeFrom(buf, device)
	if err != nil {
		t.Fatalf("MakeFrom failed: %v", err)
	}
	got, err := d.Device()
	if err != nil {
		t.Fatalf("Device() failed: %v", err)
	}
	if got != device {
		t.Error("Device() should be exactly the given device")
	}
	if device.RefCount() != 2 {
		t.Errorf("RefCount() = %d, want 2 (caller + drawable)", device.RefCount())
	}
	if d.Width() != 64 || d.Height() != 48 {
		t.Errorf("size = %dx%d, want 64x48", d.Width(), d.Height())
	}
	if d.Buffer() != buf {
		t.Error("Buffer() mismatch")
	}

	d.Release()
	if device.Released() {
		t.Error("releasing the drawable must not release the caller's reference")
	}
}

func TestMakeFromCreatesDevice(t *testing.T) {
	d, err := MakeFrom(NewImageBuffer(8, 8, APINoop), nil)
	if err != nil {
		t.Fatalf("MakeFrom failed: %v", err)
	}
	device, err := d.Device()
	if err != nil {
		t.Fatalf("Device() failed: %v", err)
	}
	if device.API() != APINoop {
		t.Errorf("API() = %q, want noop", device.API())
	}

	d.Release()
	if !device.Released() {
		t.Error("device created by MakeFrom should be released with the drawable")
	}
}

func TestMakeFromIncompatibleDevice(t *testing.T) {
	device := openNoopDevice(t)

	_, err := MakeFrom(NewImageBuffer(8, 8, APIVulkan), device)
	if !errors.Is(err, ErrIncompatibleDevice) {
		t.Errorf("MakeFrom error = %v, want ErrIncompatibleDevice", err)
	}

	_, err = MakeFrom(NewImageBuffer(8, 8, "metal"), nil)
	if !errors.Is(err, ErrDeviceCreation) || !errors.Is(err, ErrAPINotAvailable) {
		t.Errorf("MakeFrom error = %v, want ErrDeviceCreation wrapping ErrAPINotAvailable", err)
	}
}

func TestMakeFromReleasedDevice(t *testing.T) {
	device, err := OpenDevice(APINoop)
	if err != nil {
		t.Fatalf("OpenDevice failed: %v", err)
	}
	device.Release()

	if _, err := MakeFrom(NewImageBuffer(8, 8, APINoop), device); !errors.Is(err, ErrReleased) {
		t.Errorf("MakeFrom error = %v, want ErrReleased", err)
	}
}

func TestHardwareBufferDrawableSurface(t *testing.T) {
	d, err := MakeFrom(NewImageBuffer(32, 16, APINoop), nil)
	if err != nil {
		t.Fatalf("MakeFrom failed: %v", err)
	}
	defer d.Release()

	s := acquire(t, d)
	if s.Width() != 32 || s.Height() != 16 {
		t.Errorf("surface = %dx%d, want 32x16", s.Width(), s.Height())
	}
	if s.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want the buffer format", s.Format())
	}

	// Size is fixed: UpdateSize keeps the surface.
	d.UpdateSize()
	if s.Released() || d.State() != StateSurfaceReady {
		t.Error("UpdateSize should not touch a buffer-backed surface")
	}

	dev, _ := d.Device()
	ctx := dev.LockContext()
	err = d.Present(ctx)
	dev.UnlockContext()
	if err != nil {
		t.Errorf("Present() = %v, want nil", err)
	}

	d.FreeSurface()
	d.FreeSurface()
	if !s.Released() || d.State() != StateSized {
		t.Errorf("after FreeSurface: released=%v state=%v", s.Released(), d.State())
	}
}

func TestHardwareBufferDrawableFixedSize(t *testing.T) {
	buf := &resizingBuffer{ImageBuffer: NewImageBuffer(16, 16, APINoop), width: 16, height: 16}
	d, err := MakeFrom(buf, nil)
	if err != nil {
		t.Fatalf("MakeFrom failed: %v", err)
	}
	defer d.Release()
	s := acquire(t, d)

	buf.width, buf.height = 64, 32
	d.UpdateSize()
	if d.Width() != 16 || d.Height() != 16 {
		t.Errorf("size = %dx%d, want 16x16", d.Width(), d.Height())
	}
	if s.Released() || d.State() != StateSurfaceReady {
		t.Error("a buffer reporting a new size must not invalidate the surface")
	}
}

func TestHardwareBufferDrawableReleaseWithContextLocked(t *testing.T) {
	d, err := MakeFrom(NewImageBuffer(4, 4, APINoop), nil)
	if err != nil {
		t.Fatalf("MakeFrom failed: %v", err)
	}
	dev, _ := d.Device()
	ctx := dev.LockContext()
	if ctx == nil {
		t.Fatal("LockContext() = nil")
	}
	if _, err := d.Surface(ctx); err != nil {
		t.Fatalf("Surface() failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		d.Release()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Release blocked while the device context is held")
	}
	dev.UnlockContext()

	if !dev.Released() {
		t.Error("the drawable held the last reference; device should be released")
	}
	if dev.LockContext() != nil {
		t.Error("LockContext() on a released device should return nil")
	}
}

func TestHardwareBufferDrawableImportRetry(t *testing.T) {
	buf := &failingBuffer{ImageBuffer: NewImageBuffer(4, 4, APINoop), failures: 1}
	d, err := MakeFrom(buf, nil)
	if err != nil {
		t.Fatalf("MakeFrom failed: %v", err)
	}
	defer d.Release()
	dev, _ := d.Device()

	ctx := dev.LockContext()
	_, err = d.Surface(ctx)
	dev.UnlockContext()
	if !errors.Is(err, ErrSurfaceCreation) {
		t.Fatalf("Surface() error = %v, want ErrSurfaceCreation", err)
	}
	if d.State() != StateSized {
		t.Errorf("State() = %v, want Sized", d.State())
	}
	acquire(t, d)
}

func TestImageBufferCopyFrom(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 255, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, red)
		}
	}

	buf := NewImageBuffer(8, 8, APINoop)
	buf.CopyFrom(src)

	for _, p := range []image.Point{{0, 0}, {4, 4}, {7, 7}} {
		if got := buf.Image().RGBAAt(p.X, p.Y); got != red {
			t.Errorf("pixel %v = %v, want %v", p, got, red)
		}
	}
	if w, h := buf.Size(); w != 8 || h != 8 {
		t.Errorf("Size() = %dx%d, want 8x8", w, h)
	}
}

func TestImageBufferImport(t *testing.T) {
	device := openNoopDevice(t)
	buf := NewImageBuffer(4, 4, APINoop)

	tex, err := buf.Import(device)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if tex == nil {
		t.Fatal("Import returned nil texture")
	}
	hd, _ := device.HAL()
	hd.DestroyTexture(tex)

	if _, err := buf.Import(nil); !errors.Is(err, ErrReleased) {
		t.Errorf("Import(nil) error = %v, want ErrReleased", err)
	}
}
