// Package pag is the object model of the animation engine: compositions,
// layers, effects and the keyframed properties that drive them.
//
// # Overview
//
// A decoder builds a Composition graph once. The engine then calls Verify to
// reject malformed content and, while rendering, asks the graph which frame
// ranges are visually static so that a frame can be drawn once and reused.
//
//	comp := pag.NewComposition(1920, 1080, 150, 30)
//	camera := &pag.CameraLayer{
//	    LayerCore: pag.LayerCore{ID: 1, Duration: 150, Transform: pag.DefaultTransform2D()},
//	    Option:    pag.DefaultCameraOption(),
//	}
//	comp.AddLayer(camera)
//
//	if !comp.Verify() {
//	    // discard the composition
//	}
//	static := comp.StaticTimeRanges()
//
// # Time
//
// Frames are integers and every TimeRange is half-open. Properties and
// effects are evaluated in the local time of the layer that owns them;
// Layer.ExcludeVaryingRanges takes composition-time ranges and converts
// them at the layer boundary using LayerCore.StartTime.
//
// # Verification
//
// Verify walks the graph depth first and stops at the first defect. The node
// that finds the defect logs it once at warn level through Logger; enclosing
// nodes only propagate false.
//
// # Thread Safety
//
// The graph is read-only after construction. Verify and the range queries
// may run concurrently on independent compositions.
package pag
