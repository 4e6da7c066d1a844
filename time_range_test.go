package pag

import (
	"reflect"
	"testing"
)

func tr(start, end Frame) TimeRange { return TimeRange{Start: start, End: end} }

func TestTimeRangeBasics(t *testing.T) {
	r := tr(10, 20)
	if r.Empty() {
		t.Error("[10, 20) should not be empty")
	}
	if r.Duration() != 10 {
		t.Errorf("Duration() = %d, want 10", r.Duration())
	}
	if !r.Contains(10) || r.Contains(20) || r.Contains(9) {
		t.Error("Contains should include Start and exclude End")
	}
	if !tr(5, 5).Empty() || tr(5, 5).Duration() != 0 {
		t.Error("[5, 5) should be empty with zero duration")
	}
	if got := r.String(); got != "[10, 20)" {
		t.Errorf("String() = %q, want %q", got, "[10, 20)")
	}
	if r.Overlaps(tr(20, 30)) || !r.Overlaps(tr(19, 30)) {
		t.Error("half-open ranges touching at 20 must not overlap")
	}
}

func TestSubtractFromTimeRanges(t *testing.T) {
	tests := []struct {
		name    string
		ranges  []TimeRange
		varying TimeRange
		want    []TimeRange
	}{
		{"disjoint", []TimeRange{tr(0, 10)}, tr(10, 20), []TimeRange{tr(0, 10)}},
		{"inside splits", []TimeRange{tr(0, 100)}, tr(40, 60), []TimeRange{tr(0, 40), tr(60, 100)}},
		{"covers", []TimeRange{tr(10, 20)}, tr(0, 100), []TimeRange{}},
		{"head", []TimeRange{tr(0, 100)}, tr(0, 30), []TimeRange{tr(30, 100)}},
		{"tail", []TimeRange{tr(0, 100)}, tr(70, 120), []TimeRange{tr(0, 70)}},
		{"several", []TimeRange{tr(0, 10), tr(20, 30), tr(40, 50)}, tr(5, 45),
			[]TimeRange{tr(0, 5), tr(45, 50)}},
		{"empty varying", []TimeRange{tr(0, 10)}, tr(5, 5), []TimeRange{tr(0, 10)}},
		{"empty candidate dropped", []TimeRange{tr(3, 3), tr(0, 10)}, tr(20, 30), []TimeRange{tr(0, 10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]TimeRange(nil), tt.ranges...)
			SubtractFromTimeRanges(&got, tt.varying)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SubtractFromTimeRanges(%v, %v) = %v, want %v", tt.ranges, tt.varying, got, tt.want)
			}
		})
	}
}

func TestSubtractFromTimeRangesNil(t *testing.T) {
	SubtractFromTimeRanges(nil, tr(0, 10))
	SplitTimeRangesAt(nil, 5)
}

func TestSplitTimeRangesAt(t *testing.T) {
	got := []TimeRange{tr(0, 10), tr(20, 30)}
	SplitTimeRangesAt(&got, 25)
	want := []TimeRange{tr(0, 10), tr(20, 25), tr(25, 30)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitTimeRangesAt(25) = %v, want %v", got, want)
	}

	// Splitting on a boundary is a no-op.
	SplitTimeRangesAt(&got, 20)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitTimeRangesAt(20) = %v, want %v", got, want)
	}
}

func TestOffsetTimeRanges(t *testing.T) {
	got := []TimeRange{tr(0, 10), tr(20, 30)}
	OffsetTimeRanges(got, -5)
	want := []TimeRange{tr(-5, 5), tr(15, 25)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OffsetTimeRanges(-5) = %v, want %v", got, want)
	}
}

func TestFindTimeRange(t *testing.T) {
	ranges := []TimeRange{tr(0, 10), tr(20, 30), tr(30, 40)}
	tests := []struct {
		frame Frame
		want  int
	}{
		{0, 0}, {9, 0}, {10, -1}, {15, -1}, {20, 1}, {30, 2}, {39, 2}, {40, -1}, {-1, -1},
	}
	for _, tt := range tests {
		if got := FindTimeRange(ranges, tt.frame); got != tt.want {
			t.Errorf("FindTimeRange(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestMergeTimeRanges(t *testing.T) {
	in := []TimeRange{tr(20, 30), tr(0, 10), tr(5, 15), tr(30, 40), tr(50, 50), tr(25, 28)}
	got := MergeTimeRanges(in)
	want := []TimeRange{tr(0, 15), tr(20, 30), tr(30, 40)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeTimeRanges = %v, want %v", got, want)
	}
	if got := MergeTimeRanges(nil); len(got) != 0 {
		t.Errorf("MergeTimeRanges(nil) = %v, want empty", got)
	}
}
