package pag

// RadialBlurMode selects the direction of a radial blur.
type RadialBlurMode uint8

const (
	// RadialBlurModeSpin blurs along circles around the center.
	RadialBlurModeSpin RadialBlurMode = iota

	// RadialBlurModeZoom blurs along rays from the center.
	RadialBlurModeZoom
)

// RadialBlurAntialias selects the sampling quality of a radial blur.
type RadialBlurAntialias uint8

const (
	RadialBlurAntialiasLow RadialBlurAntialias = iota
	RadialBlurAntialiasHigh
)

// RadialBlurEffect blurs content around a center point.
type RadialBlurEffect struct {
	EffectCore

	Amount    Property[float64]
	Center    Property[Point]
	Mode      Property[RadialBlurMode]
	Antialias Property[RadialBlurAntialias]
}

// NewRadialBlurEffect returns a radial blur with the given amount and center
// and the default spin mode at low antialias.
func NewRadialBlurEffect(amount Property[float64], center Property[Point]) *RadialBlurEffect {
	return &RadialBlurEffect{
		EffectCore: DefaultEffectCore(),
		Amount:     amount,
		Center:     center,
		Mode:       NewStatic(RadialBlurModeSpin),
		Antialias:  NewStatic(RadialBlurAntialiasLow),
	}
}

// Type returns EffectTypeRadialBlur.
func (e *RadialBlurEffect) Type() EffectType { return EffectTypeRadialBlur }

// VisibleAt reports whether the blur amount is non-zero at frame.
func (e *RadialBlurEffect) VisibleAt(frame Frame) bool {
	return e.Amount.ValueAt(frame) != 0
}

// TransformBounds leaves bounds unchanged; a radial blur never samples
// outside the content.
func (e *RadialBlurEffect) TransformBounds(*Rect, Point, Frame) {}

// ExcludeVaryingRanges removes the frames where the blur changes.
func (e *RadialBlurEffect) ExcludeVaryingRanges(ranges *[]TimeRange) {
	e.EffectCore.ExcludeVaryingRanges(ranges)
	excludeAll(ranges, e.Amount, e.Center, e.Mode, e.Antialias)
}

// Verify checks the shared effect state, then the blur properties.
func (e *RadialBlurEffect) Verify() bool {
	if !e.EffectCore.Verify() {
		return false
	}
	return verifyProperties("RadialBlurEffect",
		namedProperty{"amount", e.Amount},
		namedProperty{"center", e.Center},
		namedProperty{"mode", e.Mode},
		namedProperty{"antialias", e.Antialias},
	)
}

var _ Effect = (*RadialBlurEffect)(nil)
