package pag

// BlurDimensions restricts a blur to one axis or applies it to both.
type BlurDimensions uint8

const (
	BlurDimensionsAll BlurDimensions = iota
	BlurDimensionsHorizontal
	BlurDimensionsVertical
)

// FastBlurEffect is a box-approximated gaussian blur.
type FastBlurEffect struct {
	EffectCore

	Blurriness       Property[float64]
	Dimensions       Property[BlurDimensions]
	RepeatEdgePixels Property[bool]
}

// NewFastBlurEffect returns a blur in both directions that grows the
// content bounds.
func NewFastBlurEffect(blurriness Property[float64]) *FastBlurEffect {
	return &FastBlurEffect{
		EffectCore:       DefaultEffectCore(),
		Blurriness:       blurriness,
		Dimensions:       NewStatic(BlurDimensionsAll),
		RepeatEdgePixels: NewStatic(false),
	}
}

// Type returns EffectTypeFastBlur.
func (e *FastBlurEffect) Type() EffectType { return EffectTypeFastBlur }

// VisibleAt reports whether the blurriness is non-zero at frame.
func (e *FastBlurEffect) VisibleAt(frame Frame) bool {
	return e.Blurriness.ValueAt(frame) != 0
}

// TransformBounds grows bounds by the blur radius along the blurred axes.
// With repeated edge pixels the output is clipped to the input.
func (e *FastBlurEffect) TransformBounds(bounds *Rect, filterScale Point, frame Frame) {
	if e.RepeatEdgePixels.ValueAt(frame) {
		return
	}
	blurriness := e.Blurriness.ValueAt(frame)
	dx := blurriness * filterScale.X
	dy := blurriness * filterScale.Y
	switch e.Dimensions.ValueAt(frame) {
	case BlurDimensionsHorizontal:
		dy = 0
	case BlurDimensionsVertical:
		dx = 0
	}
	*bounds = bounds.Outset(dx, dy)
}

// ExcludeVaryingRanges removes the frames where the blur changes.
func (e *FastBlurEffect) ExcludeVaryingRanges(ranges *[]TimeRange) {
	e.EffectCore.ExcludeVaryingRanges(ranges)
	excludeAll(ranges, e.Blurriness, e.Dimensions, e.RepeatEdgePixels)
}

// Verify checks the shared effect state, then the blur properties.
func (e *FastBlurEffect) Verify() bool {
	if !e.EffectCore.Verify() {
		return false
	}
	return verifyProperties("FastBlurEffect",
		namedProperty{"blurriness", e.Blurriness},
		namedProperty{"dimensions", e.Dimensions},
		namedProperty{"repeat edge pixels", e.RepeatEdgePixels},
	)
}

var _ Effect = (*FastBlurEffect)(nil)
