package pag

import "reflect"

// Verification is a fail-fast, depth-first walk. Each node first checks the
// shared part it is composed of, then its own sub-objects. The node that
// finds a defect reports it through verifyFailed; every enclosing node only
// propagates false, so a broken graph produces exactly one diagnostic.

// VerifyFailedMessage is the log message emitted for a structural defect.
const VerifyFailedMessage = "pag: verify failed"

// verifyFailed records the defect found at node and returns false.
func verifyFailed(node, reason string, args ...any) bool {
	attrs := make([]any, 0, 4+len(args))
	attrs = append(attrs, "node", node, "reason", reason)
	attrs = append(attrs, args...)
	Logger().Warn(VerifyFailedMessage, attrs...)
	return false
}

// Verifier is implemented by every node of the animation graph.
type Verifier interface {
	// Verify reports whether the node and everything it owns is well formed.
	Verify() bool
}

// VaryingSource is implemented by anything whose value may change over time.
type VaryingSource interface {
	// ExcludeVaryingRanges removes from ranges every frame at which the
	// source changes value.
	ExcludeVaryingRanges(ranges *[]TimeRange)
}

// propertyNode is a required, verifiable, time-varying sub-object.
type propertyNode interface {
	Verifier
	VaryingSource
}

// namedProperty pairs a required sub-object with the name used in diagnostics.
type namedProperty struct {
	name     string
	property propertyNode
}

// verifyProperties checks that every property is present and valid.
// A missing property is reported at node; an invalid one has already
// reported itself.
func verifyProperties(node string, props ...namedProperty) bool {
	for _, p := range props {
		if isMissing(p.property) {
			return verifyFailed(node, p.name+" is missing")
		}
		if !p.property.Verify() {
			return false
		}
	}
	return true
}

// isMissing reports whether a required sub-object is absent, either as a
// nil interface or as an interface holding a nil pointer.
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// excludeAll lets every source remove its varying frames from ranges.
func excludeAll(ranges *[]TimeRange, sources ...VaryingSource) {
	for _, s := range sources {
		s.ExcludeVaryingRanges(ranges)
	}
}
