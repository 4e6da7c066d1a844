package pag

// Composition is the container a layer graph lives in. It supplies the
// pixel size and timeline that layers measure themselves against.
type Composition struct {
	ID        uint32
	Width     int
	Height    int
	Duration  Frame
	FrameRate float64

	// Layers are ordered from top to bottom.
	Layers []Layer
}

// NewComposition returns an empty composition.
func NewComposition(width, height int, duration Frame, frameRate float64) *Composition {
	return &Composition{
		Width:     width,
		Height:    height,
		Duration:  duration,
		FrameRate: frameRate,
	}
}

// AddLayer appends layer and points its back reference at c.
func (c *Composition) AddLayer(layer Layer) {
	layer.Core().Composition = c
	c.Layers = append(c.Layers, layer)
}

// TimeRange returns [0, Duration).
func (c *Composition) TimeRange() TimeRange {
	return TimeRange{End: c.Duration}
}

// Verify checks the composition size and timeline, then every layer.
func (c *Composition) Verify() bool {
	if c.Width <= 0 || c.Height <= 0 {
		return verifyFailed("Composition", "size is empty", "id", c.ID, "width", c.Width, "height", c.Height)
	}
	if c.Duration <= 0 {
		return verifyFailed("Composition", "duration is not positive", "id", c.ID)
	}
	for i, layer := range c.Layers {
		if isMissing(layer) {
			return verifyFailed("Composition", "layer is missing", "id", c.ID, "index", i)
		}
		if layer.Core().Composition != c {
			return verifyFailed("Composition", "layer belongs to another composition", "id", c.ID, "layer", layer.Core().ID)
		}
		if !layer.Verify() {
			return false
		}
	}
	return true
}

// ExcludeVaryingRanges removes the frames where any layer changes.
func (c *Composition) ExcludeVaryingRanges(ranges *[]TimeRange) {
	for _, layer := range c.Layers {
		layer.ExcludeVaryingRanges(ranges)
	}
}

// StaticTimeRanges returns the runs of frames over which the rendered
// composition is identical, in ascending order. A renderer may draw the
// first frame of a run once and reuse it for the rest.
func (c *Composition) StaticTimeRanges() []TimeRange {
	ranges := []TimeRange{c.TimeRange()}
	c.ExcludeVaryingRanges(&ranges)
	return ranges
}

// LayerByID returns the layer with the given id, or nil.
func (c *Composition) LayerByID(id uint32) Layer {
	for _, layer := range c.Layers {
		if layer != nil && layer.Core().ID == id {
			return layer
		}
	}
	return nil
}
