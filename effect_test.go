package pag

import (
	"reflect"
	"testing"
)

func TestRadialBlurScenario(t *testing.T) {
	e := NewRadialBlurEffect(amountTimeline(), NewStatic(Pt(50, 50)))
	if !e.Verify() {
		t.Fatal("radial blur should verify")
	}
	if e.VisibleAt(50) {
		t.Error("VisibleAt(50) = true, want false (amount is 0)")
	}
	if !e.VisibleAt(120) {
		t.Error("VisibleAt(120) = false, want true")
	}

	ranges := []TimeRange{tr(0, 150)}
	e.ExcludeVaryingRanges(&ranges)
	want := []TimeRange{tr(0, 100)}
	if !reflect.DeepEqual(ranges, want) {
		t.Errorf("ExcludeVaryingRanges([0, 150)) = %v, want %v", ranges, want)
	}
}

func TestRadialBlurExcludesEveryProperty(t *testing.T) {
	e := NewRadialBlurEffect(NewStatic(10.0), NewStatic(Pt(0, 0)))
	e.Center = NewAnimated(LerpPoint,
		Keyframe[Point]{Start: 10, End: 20, From: Pt(0, 0), To: Pt(10, 0), Interpolation: InterpolationLinear})
	e.Mode = NewAnimated[RadialBlurMode](nil,
		Keyframe[RadialBlurMode]{Start: 0, End: 40, From: RadialBlurModeSpin, To: RadialBlurModeZoom})
	e.Opacity = NewAnimated(LerpOpacity,
		Keyframe[Opacity]{Start: 60, End: 70, From: 0, To: Opaque, Interpolation: InterpolationLinear})

	ranges := []TimeRange{tr(0, 100)}
	e.ExcludeVaryingRanges(&ranges)
	want := []TimeRange{tr(0, 10), tr(20, 40), tr(40, 60), tr(70, 100)}
	if !reflect.DeepEqual(ranges, want) {
		t.Errorf("ExcludeVaryingRanges = %v, want %v", ranges, want)
	}
}

func TestRadialBlurTransformBounds(t *testing.T) {
	e := NewRadialBlurEffect(NewStatic(10.0), NewStatic(Pt(0, 0)))
	bounds := MakeWH(100, 50)
	e.TransformBounds(&bounds, Pt(1, 1), 0)
	if bounds != MakeWH(100, 50) {
		t.Errorf("TransformBounds changed bounds to %v", bounds)
	}
}

func TestEffectVerifyReportsOnce(t *testing.T) {
	tests := []struct {
		name   string
		effect func() Effect
		want   bool
		node   string
	}{
		{"radial valid", func() Effect { return NewRadialBlurEffect(NewStatic(1.0), NewStatic(Pt(0, 0))) }, true, ""},
		{"radial missing amount", func() Effect {
			e := NewRadialBlurEffect(NewStatic(1.0), NewStatic(Pt(0, 0)))
			e.Amount = nil
			return e
		}, false, "RadialBlurEffect"},
		{"radial missing antialias", func() Effect {
			e := NewRadialBlurEffect(NewStatic(1.0), NewStatic(Pt(0, 0)))
			e.Antialias = nil
			return e
		}, false, "RadialBlurEffect"},
		{"radial missing effect opacity", func() Effect {
			e := NewRadialBlurEffect(NewStatic(1.0), NewStatic(Pt(0, 0)))
			e.Opacity = nil
			return e
		}, false, "Effect"},
		{"radial typed nil static amount", func() Effect {
			return NewRadialBlurEffect((*StaticProperty[float64])(nil), NewStatic(Pt(0, 0)))
		}, false, "RadialBlurEffect"},
		{"radial typed nil animated amount", func() Effect {
			return NewRadialBlurEffect((*AnimatedProperty[float64])(nil), NewStatic(Pt(0, 0)))
		}, false, "RadialBlurEffect"},
		{"radial invalid amount", func() Effect {
			return NewRadialBlurEffect(NewAnimated[float64](LerpFloat), NewStatic(Pt(0, 0)))
		}, false, "Property"},
		{"fast blur missing dimensions", func() Effect {
			e := NewFastBlurEffect(NewStatic(4.0))
			e.Dimensions = nil
			return e
		}, false, "FastBlurEffect"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			if got := tt.effect().Verify(); got != tt.want {
				t.Fatalf("Verify() = %v, want %v", got, tt.want)
			}
			if tt.want {
				if n := logs.count(VerifyFailedMessage); n != 0 {
					t.Errorf("verify diagnostics = %d, want 0", n)
				}
				return
			}
			if n := logs.count(VerifyFailedMessage); n != 1 {
				t.Errorf("verify diagnostics = %d, want 1", n)
			}
			if node := logs.attr(VerifyFailedMessage, "node"); node != tt.node {
				t.Errorf("failure reported at %q, want %q", node, tt.node)
			}
		})
	}
}

func TestFastBlurTransformBounds(t *testing.T) {
	tests := []struct {
		name   string
		dims   BlurDimensions
		repeat bool
		want   Rect
	}{
		{"all", BlurDimensionsAll, false, NewRect(Pt(-10, -20), Pt(110, 70))},
		{"horizontal", BlurDimensionsHorizontal, false, NewRect(Pt(-10, 0), Pt(110, 50))},
		{"vertical", BlurDimensionsVertical, false, NewRect(Pt(0, -20), Pt(100, 70))},
		{"repeat edges", BlurDimensionsAll, true, MakeWH(100, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewFastBlurEffect(NewStatic(10.0))
			e.Dimensions = NewStatic(tt.dims)
			e.RepeatEdgePixels = NewStatic(tt.repeat)
			bounds := MakeWH(100, 50)
			e.TransformBounds(&bounds, Pt(1, 2), 0)
			if bounds != tt.want {
				t.Errorf("TransformBounds = %v, want %v", bounds, tt.want)
			}
		})
	}
}

func TestFastBlurVisibleAt(t *testing.T) {
	e := NewFastBlurEffect(NewAnimated(LerpFloat,
		Keyframe[float64]{Start: 0, End: 10, From: 0, To: 8, Interpolation: InterpolationLinear}))
	if e.VisibleAt(0) {
		t.Error("VisibleAt(0) = true, want false")
	}
	if !e.VisibleAt(5) {
		t.Error("VisibleAt(5) = false, want true")
	}
	if got := e.Type(); got != EffectTypeFastBlur || got.String() != "FastBlur" {
		t.Errorf("Type() = %v, want FastBlur", got)
	}
}
