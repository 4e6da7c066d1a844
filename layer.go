package pag

// LayerType identifies a concrete layer.
type LayerType uint8

const (
	LayerTypeUnknown LayerType = iota
	LayerTypeNull
	LayerTypeSolid
	LayerTypeCamera
)

// String returns the layer type name.
func (t LayerType) String() string {
	switch t {
	case LayerTypeNull:
		return "Null"
	case LayerTypeSolid:
		return "Solid"
	case LayerTypeCamera:
		return "Camera"
	default:
		return "Unknown"
	}
}

// Layer is a node of a composition.
//
// ExcludeVaryingRanges works in composition time; the layer converts to its
// own local time before asking its properties and effects. Verify must pass
// before any other method is called.
type Layer interface {
	Verifier
	VaryingSource

	// Type returns the concrete layer kind.
	Type() LayerType

	// Core returns the state shared by every layer.
	Core() *LayerCore

	// Bounds returns the layer content box in layer coordinates.
	Bounds() Rect
}

// LayerCore holds the state every layer shares. Concrete layers embed it.
type LayerCore struct {
	ID   uint32
	Name string

	// StartTime is the composition frame at which layer frame 0 is shown.
	StartTime Frame
	Duration  Frame

	Transform *Transform2D

	// Effects are applied in order.
	Effects []Effect

	// Composition is the composition containing this layer. It is a back
	// reference set by Composition.AddLayer, not an ownership edge.
	Composition *Composition
}

// Core returns c.
func (c *LayerCore) Core() *LayerCore { return c }

// TimeRange returns the composition frames during which the layer is shown.
func (c *LayerCore) TimeRange() TimeRange {
	return TimeRange{Start: c.StartTime, End: c.StartTime + c.Duration}
}

// LocalFrame converts a composition frame to layer time.
func (c *LayerCore) LocalFrame(frame Frame) Frame {
	return frame - c.StartTime
}

// Verify checks the shared layer state: a containing composition, a
// positive duration, a valid transform and valid effects.
func (c *LayerCore) Verify() bool {
	if c.Composition == nil {
		return verifyFailed("Layer", "containing composition is missing", "id", c.ID)
	}
	if c.Duration <= 0 {
		return verifyFailed("Layer", "duration is not positive", "id", c.ID, "duration", c.Duration)
	}
	if c.Transform == nil {
		return verifyFailed("Layer", "transform is missing", "id", c.ID)
	}
	if !c.Transform.Verify() {
		return false
	}
	for i, e := range c.Effects {
		if isMissing(e) {
			return verifyFailed("Layer", "effect is missing", "id", c.ID, "index", i)
		}
		if !e.Verify() {
			return false
		}
	}
	return true
}

// ExcludeVaryingRangesWith removes from composition-time ranges the frames
// where the layer appears or disappears, where its transform or effects
// change, and where any of own changes. own is evaluated in layer time.
func (c *LayerCore) ExcludeVaryingRangesWith(ranges *[]TimeRange, own ...VaryingSource) {
	visible := c.TimeRange()
	SplitTimeRangesAt(ranges, visible.Start)
	SplitTimeRangesAt(ranges, visible.End)

	OffsetTimeRanges(*ranges, -c.StartTime)
	c.Transform.ExcludeVaryingRanges(ranges)
	for _, e := range c.Effects {
		e.ExcludeVaryingRanges(ranges)
	}
	excludeAll(ranges, own...)
	OffsetTimeRanges(*ranges, c.StartTime)
}

// VisibleAt reports whether the layer draws anything at the composition frame.
func (c *LayerCore) VisibleAt(frame Frame) bool {
	if !c.TimeRange().Contains(frame) {
		return false
	}
	return c.Transform.VisibleAt(c.LocalFrame(frame))
}

// NullLayer has no content of its own; it only carries a transform, usually
// as a parent for other layers.
type NullLayer struct {
	LayerCore
}

// Type returns LayerTypeNull.
func (l *NullLayer) Type() LayerType { return LayerTypeNull }

// Bounds returns an empty rectangle.
func (l *NullLayer) Bounds() Rect { return Rect{} }

// ExcludeVaryingRanges removes the frames where the layer changes.
func (l *NullLayer) ExcludeVaryingRanges(ranges *[]TimeRange) {
	l.ExcludeVaryingRangesWith(ranges)
}

var _ Layer = (*NullLayer)(nil)
