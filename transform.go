package pag

// Transform2D is the placement every layer carries: anchor point, position,
// scale, rotation in degrees and opacity.
type Transform2D struct {
	AnchorPoint Property[Point]
	Position    Property[Point]
	Scale       Property[Point]
	Rotation    Property[float64]
	Opacity     Property[Opacity]
}

// DefaultTransform2D returns the identity transform at full opacity.
func DefaultTransform2D() *Transform2D {
	return &Transform2D{
		AnchorPoint: NewStatic(Point{}),
		Position:    NewStatic(Point{}),
		Scale:       NewStatic(Pt(1, 1)),
		Rotation:    NewStatic(0.0),
		Opacity:     NewStatic(Opaque),
	}
}

func (t *Transform2D) properties() []namedProperty {
	return []namedProperty{
		{"anchor point", t.AnchorPoint},
		{"position", t.Position},
		{"scale", t.Scale},
		{"rotation", t.Rotation},
		{"opacity", t.Opacity},
	}
}

// Verify reports whether every transform property is present and valid.
func (t *Transform2D) Verify() bool {
	return verifyProperties("Transform2D", t.properties()...)
}

// ExcludeVaryingRanges removes the frames where any transform property changes.
func (t *Transform2D) ExcludeVaryingRanges(ranges *[]TimeRange) {
	for _, p := range t.properties() {
		p.property.ExcludeVaryingRanges(ranges)
	}
}

// VisibleAt reports whether the transform leaves anything to draw at frame.
func (t *Transform2D) VisibleAt(frame Frame) bool {
	if t.Opacity.ValueAt(frame) == 0 {
		return false
	}
	s := t.Scale.ValueAt(frame)
	return s.X != 0 && s.Y != 0
}
