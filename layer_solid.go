package pag

import "image/color"

// SolidLayer fills a fixed-size rectangle with one color.
type SolidLayer struct {
	LayerCore

	Color  color.RGBA
	Width  int
	Height int
}

// Type returns LayerTypeSolid.
func (l *SolidLayer) Type() LayerType { return LayerTypeSolid }

// Bounds returns the solid rectangle.
func (l *SolidLayer) Bounds() Rect {
	return MakeWH(float64(l.Width), float64(l.Height))
}

// ExcludeVaryingRanges removes the frames where the layer changes.
// The solid itself is constant.
func (l *SolidLayer) ExcludeVaryingRanges(ranges *[]TimeRange) {
	l.ExcludeVaryingRangesWith(ranges)
}

// Verify checks the shared layer state and a non-empty size.
func (l *SolidLayer) Verify() bool {
	if !l.LayerCore.Verify() {
		return false
	}
	if l.Width <= 0 || l.Height <= 0 {
		return verifyFailed("SolidLayer", "size is empty", "id", l.ID, "width", l.Width, "height", l.Height)
	}
	return true
}

var _ Layer = (*SolidLayer)(nil)
