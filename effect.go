package pag

// EffectType identifies a concrete effect.
type EffectType uint8

const (
	EffectTypeUnknown EffectType = iota
	EffectTypeFastBlur
	EffectTypeRadialBlur
)

// String returns the effect type name.
func (t EffectType) String() string {
	switch t {
	case EffectTypeFastBlur:
		return "FastBlur"
	case EffectTypeRadialBlur:
		return "RadialBlur"
	default:
		return "Unknown"
	}
}

// Effect is a filter applied to a layer's content.
//
// Effects are evaluated in the owning layer's local time. Verify must pass
// before any other method is called; the time queries assume every declared
// property is present.
type Effect interface {
	Verifier
	VaryingSource

	// Type returns the concrete effect kind.
	Type() EffectType

	// VisibleAt is a cheap check that reports false when the effect would
	// leave the content untouched at frame.
	VisibleAt(frame Frame) bool

	// TransformBounds grows or shrinks bounds to cover the effect output at
	// frame. filterScale is the content scale the effect is rendered at.
	TransformBounds(bounds *Rect, filterScale Point, frame Frame)
}

// EffectCore holds the state every effect shares. Concrete effects embed it
// and call its Verify and ExcludeVaryingRanges before checking their own
// properties.
type EffectCore struct {
	// Opacity blends the effect result with the unfiltered content.
	Opacity Property[Opacity]
}

// DefaultEffectCore returns a core at full effect opacity.
func DefaultEffectCore() EffectCore {
	return EffectCore{Opacity: NewStatic(Opaque)}
}

// Verify checks the shared effect properties.
func (c *EffectCore) Verify() bool {
	return verifyProperties("Effect", namedProperty{"effect opacity", c.Opacity})
}

// ExcludeVaryingRanges removes frames where a shared effect property changes.
func (c *EffectCore) ExcludeVaryingRanges(ranges *[]TimeRange) {
	c.Opacity.ExcludeVaryingRanges(ranges)
}
