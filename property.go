package pag

import "sort"

// Property is a value that can change along the animation timeline.
//
// Properties are owned by exactly one effect, layer or option group and are
// evaluated in that owner's local time.
type Property[T comparable] interface {
	Verifier
	VaryingSource

	// ValueAt returns the value at frame.
	ValueAt(frame Frame) T

	// VaryingRanges returns the ranges over which the value is interpolated,
	// and so differs from frame to frame.
	VaryingRanges() []TimeRange
}

// StaticProperty is a Property whose value never changes.
type StaticProperty[T comparable] struct {
	Value T
}

// NewStatic returns a property that always evaluates to value.
func NewStatic[T comparable](value T) *StaticProperty[T] {
	return &StaticProperty[T]{Value: value}
}

// ValueAt returns the constant value.
func (p *StaticProperty[T]) ValueAt(Frame) T { return p.Value }

// VaryingRanges returns nil; a static value never varies.
func (p *StaticProperty[T]) VaryingRanges() []TimeRange { return nil }

// ExcludeVaryingRanges leaves ranges untouched.
func (p *StaticProperty[T]) ExcludeVaryingRanges(*[]TimeRange) {}

// Verify succeeds for any non-nil property.
func (p *StaticProperty[T]) Verify() bool {
	if p == nil {
		return verifyFailed("Property", "property is missing")
	}
	return true
}

// Interpolation selects how a keyframe moves from its start to its end value.
type Interpolation uint8

const (
	// InterpolationHold keeps the start value until the keyframe ends.
	InterpolationHold Interpolation = iota

	// InterpolationLinear blends linearly between the start and end values.
	InterpolationLinear
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case InterpolationHold:
		return "hold"
	case InterpolationLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Keyframe is one segment [Start, End) of a property timeline.
type Keyframe[T comparable] struct {
	Start         Frame
	End           Frame
	From          T
	To            T
	Interpolation Interpolation
}

// LerpFunc blends from and to at t in [0, 1].
type LerpFunc[T comparable] func(from, to T, t float64) T

// AnimatedProperty is a Property driven by an ordered list of keyframes.
//
// Before the first keyframe the value is the first From; after the last it
// is the last To. A keyframe without a Lerp function behaves as a hold.
type AnimatedProperty[T comparable] struct {
	Keyframes []Keyframe[T]
	Lerp      LerpFunc[T]
}

// NewAnimated returns a keyframed property.
// lerp may be nil for value types that cannot be blended.
func NewAnimated[T comparable](lerp LerpFunc[T], keyframes ...Keyframe[T]) *AnimatedProperty[T] {
	return &AnimatedProperty[T]{Keyframes: keyframes, Lerp: lerp}
}

// interpolates reports whether k blends between two distinct values.
func (p *AnimatedProperty[T]) interpolates(k *Keyframe[T]) bool {
	return k.Interpolation != InterpolationHold && p.Lerp != nil && k.From != k.To
}

// ValueAt returns the value at frame.
func (p *AnimatedProperty[T]) ValueAt(frame Frame) T {
	n := len(p.Keyframes)
	if n == 0 {
		var zero T
		return zero
	}
	i := sort.Search(n, func(i int) bool {
		return p.Keyframes[i].End > frame
	})
	if i == n {
		return p.Keyframes[n-1].To
	}
	k := &p.Keyframes[i]
	if frame < k.Start {
		if i == 0 {
			return k.From
		}
		return p.Keyframes[i-1].To
	}
	if !p.interpolates(k) {
		return k.From
	}
	t := float64(frame-k.Start) / float64(k.End-k.Start)
	return p.Lerp(k.From, k.To, t)
}

// VaryingRanges returns [Start, End) of every interpolating keyframe.
func (p *AnimatedProperty[T]) VaryingRanges() []TimeRange {
	var out []TimeRange
	for i := range p.Keyframes {
		k := &p.Keyframes[i]
		if p.interpolates(k) {
			out = append(out, TimeRange{Start: k.Start, End: k.End})
		}
	}
	return out
}

// ExcludeVaryingRanges removes interpolated frames from ranges and splits
// ranges wherever the value steps at a keyframe boundary. Both ends of a
// keyframe are boundaries: after a gap the value jumps at the next Start.
func (p *AnimatedProperty[T]) ExcludeVaryingRanges(ranges *[]TimeRange) {
	for _, r := range p.VaryingRanges() {
		SubtractFromTimeRanges(ranges, r)
	}
	for i := range p.Keyframes {
		k := &p.Keyframes[i]
		if p.ValueAt(k.Start-1) != p.ValueAt(k.Start) {
			SplitTimeRangesAt(ranges, k.Start)
		}
		if p.ValueAt(k.End-1) != p.ValueAt(k.End) {
			SplitTimeRangesAt(ranges, k.End)
		}
	}
}

// Verify checks that the timeline has keyframes, each keyframe is non-empty
// and keyframes are ordered without overlapping.
func (p *AnimatedProperty[T]) Verify() bool {
	if p == nil {
		return verifyFailed("Property", "property is missing")
	}
	if len(p.Keyframes) == 0 {
		return verifyFailed("Property", "no keyframes")
	}
	for i := range p.Keyframes {
		k := &p.Keyframes[i]
		if k.End <= k.Start {
			return verifyFailed("Property", "empty keyframe", "index", i, "start", k.Start, "end", k.End)
		}
		if i > 0 && k.Start < p.Keyframes[i-1].End {
			return verifyFailed("Property", "overlapping keyframes", "index", i)
		}
	}
	return true
}

// LerpFloat blends two numbers.
func LerpFloat(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpPoint blends two points component-wise.
func LerpPoint(from, to Point, t float64) Point {
	return Point{X: LerpFloat(from.X, to.X, t), Y: LerpFloat(from.Y, to.Y, t)}
}

// LerpOpacity blends two opacities, rounding to the nearest step.
func LerpOpacity(from, to Opacity, t float64) Opacity {
	return Opacity(LerpFloat(float64(from), float64(to), t) + 0.5)
}

// Opacity is an alpha value where 0 is transparent and Opaque is fully visible.
type Opacity uint8

// Opaque is the maximum opacity.
const Opaque Opacity = 255

var (
	_ Property[float64] = (*StaticProperty[float64])(nil)
	_ Property[float64] = (*AnimatedProperty[float64])(nil)
)
