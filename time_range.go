package pag

import (
	"fmt"
	"sort"
)

// Frame is the discrete time unit of an animation.
type Frame int64

// TimeRange is the half-open frame interval [Start, End).
//
// The same type describes both a run of frames whose rendered output is
// identical (a static range) and a run of frames where something changes
// (a varying range).
type TimeRange struct {
	Start Frame
	End   Frame
}

// MakeTimeRange returns the range [start, end).
func MakeTimeRange(start, end Frame) TimeRange {
	return TimeRange{Start: start, End: end}
}

// Empty reports whether the range contains no frames.
func (r TimeRange) Empty() bool {
	return r.End <= r.Start
}

// Duration returns the number of frames in the range.
func (r TimeRange) Duration() Frame {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether frame lies inside the range.
func (r TimeRange) Contains(frame Frame) bool {
	return frame >= r.Start && frame < r.End
}

// Overlaps reports whether the two ranges share at least one frame.
func (r TimeRange) Overlaps(other TimeRange) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.Start < other.End && other.Start < r.End
}

// Offset returns the range shifted by delta frames.
func (r TimeRange) Offset(delta Frame) TimeRange {
	return TimeRange{Start: r.Start + delta, End: r.End + delta}
}

// String formats the range as "[start, end)".
func (r TimeRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// SubtractFromTimeRanges removes varying from every range in ranges.
//
// A range that fully contains varying is split into the parts before and
// after it. Ranges left empty are dropped. The result replaces *ranges and
// preserves order.
func SubtractFromTimeRanges(ranges *[]TimeRange, varying TimeRange) {
	if ranges == nil || varying.Empty() {
		return
	}
	src := *ranges
	out := make([]TimeRange, 0, len(src)+1)
	for _, r := range src {
		if r.Empty() {
			continue
		}
		if !r.Overlaps(varying) {
			out = append(out, r)
			continue
		}
		if r.Start < varying.Start {
			out = append(out, TimeRange{Start: r.Start, End: varying.Start})
		}
		if varying.End < r.End {
			out = append(out, TimeRange{Start: varying.End, End: r.End})
		}
	}
	*ranges = out
}

// SplitTimeRangesAt splits every range that strictly contains frame into
// [start, frame) and [frame, end).
//
// Both halves stay static on their own; they just no longer share a cached
// result because the output switches at frame.
func SplitTimeRangesAt(ranges *[]TimeRange, frame Frame) {
	if ranges == nil {
		return
	}
	src := *ranges
	out := make([]TimeRange, 0, len(src)+1)
	for _, r := range src {
		if r.Empty() {
			continue
		}
		if r.Start < frame && frame < r.End {
			out = append(out,
				TimeRange{Start: r.Start, End: frame},
				TimeRange{Start: frame, End: r.End})
			continue
		}
		out = append(out, r)
	}
	*ranges = out
}

// OffsetTimeRanges shifts every range in place by delta frames.
// It converts between composition time and layer-local time.
func OffsetTimeRanges(ranges []TimeRange, delta Frame) {
	if delta == 0 {
		return
	}
	for i := range ranges {
		ranges[i] = ranges[i].Offset(delta)
	}
}

// FindTimeRange returns the index of the range containing frame, or -1.
// ranges must be sorted by Start and must not overlap, which holds for every
// result of the exclusion functions in this package.
func FindTimeRange(ranges []TimeRange, frame Frame) int {
	i := sort.Search(len(ranges), func(i int) bool {
		return ranges[i].End > frame
	})
	if i < len(ranges) && ranges[i].Contains(frame) {
		return i
	}
	return -1
}

// MergeTimeRanges sorts ranges and joins those that overlap. Adjacent
// ranges are kept apart: a boundary between two static ranges marks a
// change in output.
func MergeTimeRanges(ranges []TimeRange) []TimeRange {
	out := make([]TimeRange, 0, len(ranges))
	for _, r := range ranges {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	merged := out[:0]
	for _, r := range out {
		if n := len(merged); n > 0 && r.Start < merged[n-1].End {
			if r.End > merged[n-1].End {
				merged[n-1].End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
