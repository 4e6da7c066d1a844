package pag

// CameraOption holds the animated lens settings of a camera layer.
type CameraOption struct {
	Zoom          Property[float64]
	DepthOfField  Property[bool]
	FocusDistance Property[float64]
	Aperture      Property[float64]
	BlurLevel     Property[float64]
}

// DefaultCameraOption returns the lens settings of a newly created camera.
func DefaultCameraOption() *CameraOption {
	return &CameraOption{
		Zoom:          NewStatic(1866.0),
		DepthOfField:  NewStatic(false),
		FocusDistance: NewStatic(1866.0),
		Aperture:      NewStatic(25.3),
		BlurLevel:     NewStatic(100.0),
	}
}

func (o *CameraOption) properties() []namedProperty {
	return []namedProperty{
		{"zoom", o.Zoom},
		{"depth of field", o.DepthOfField},
		{"focus distance", o.FocusDistance},
		{"aperture", o.Aperture},
		{"blur level", o.BlurLevel},
	}
}

// Verify reports whether every lens property is present and valid.
func (o *CameraOption) Verify() bool {
	return verifyProperties("CameraOption", o.properties()...)
}

// ExcludeVaryingRanges removes the frames where any lens setting changes.
func (o *CameraOption) ExcludeVaryingRanges(ranges *[]TimeRange) {
	for _, p := range o.properties() {
		p.property.ExcludeVaryingRanges(ranges)
	}
}

// CameraLayer views the composition through a virtual lens.
type CameraLayer struct {
	LayerCore

	Option *CameraOption
}

// Type returns LayerTypeCamera.
func (l *CameraLayer) Type() LayerType { return LayerTypeCamera }

// Bounds returns the pixel area of the containing composition.
func (l *CameraLayer) Bounds() Rect {
	if l.Composition == nil {
		return Rect{}
	}
	return MakeWH(float64(l.Composition.Width), float64(l.Composition.Height))
}

// ExcludeVaryingRanges removes the frames where the layer or its lens changes.
func (l *CameraLayer) ExcludeVaryingRanges(ranges *[]TimeRange) {
	l.ExcludeVaryingRangesWith(ranges, l.Option)
}

// Verify checks the shared layer state, then the camera options.
func (l *CameraLayer) Verify() bool {
	if !l.LayerCore.Verify() {
		return false
	}
	if l.Option == nil {
		return verifyFailed("CameraLayer", "camera option is missing", "id", l.ID)
	}
	return l.Option.Verify()
}

var _ Layer = (*CameraLayer)(nil)
