// Package cache reuses rendered output across frames that are known to
// look the same.
//
// A FrameCache is built from the static time ranges of a composition
// (pag.Composition.StaticTimeRanges). Every frame inside a static range
// shares one cached value, rendered once at the range's first frame.
// Frames outside the ranges are never cached.
package cache

import (
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	pag "github.com/mengzhisuoliu/libpag"
)

// DefaultCapacity is the number of static ranges kept when none is given.
const DefaultCapacity = 64

// RenderFunc renders the content of frame.
type RenderFunc[V any] func(frame pag.Frame) (V, error)

// FrameCache maps frames to rendered values through their static range.
//
// FrameCache is safe for concurrent use. Concurrent misses on the same
// range render once and share the result.
type FrameCache[V any] struct {
	mu       sync.Mutex
	ranges   []pag.TimeRange
	entries  map[pag.Frame]*lruNode[pag.Frame, V]
	lru      lruList[pag.Frame, V]
	capacity int
	gen      uint64 // bumped by Invalidate; stale renders are not stored

	group singleflight.Group

	hits      atomic.Uint64
	misses    atomic.Uint64
	uncached  atomic.Uint64
	evictions atomic.Uint64
}

// NewFrameCache returns a cache over ranges keeping at most capacity
// rendered ranges. ranges must be sorted and must not overlap; the result
// of StaticTimeRanges qualifies. If capacity <= 0, DefaultCapacity is used.
func NewFrameCache[V any](ranges []pag.TimeRange, capacity int) *FrameCache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &FrameCache[V]{
		ranges:   append([]pag.TimeRange(nil), ranges...),
		entries:  make(map[pag.Frame]*lruNode[pag.Frame, V]),
		capacity: capacity,
	}
}

// NewCompositionCache returns a cache over the static ranges of comp.
func NewCompositionCache[V any](comp *pag.Composition, capacity int) *FrameCache[V] {
	return NewFrameCache[V](comp.StaticTimeRanges(), capacity)
}

// RangeOf returns the static range containing frame.
func (c *FrameCache[V]) RangeOf(frame pag.Frame) (pag.TimeRange, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rangeOf(frame)
}

func (c *FrameCache[V]) rangeOf(frame pag.Frame) (pag.TimeRange, bool) {
	i := pag.FindTimeRange(c.ranges, frame)
	if i < 0 {
		return pag.TimeRange{}, false
	}
	return c.ranges[i], true
}

// Get returns the cached value for frame's static range.
func (c *FrameCache[V]) Get(frame pag.Frame) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.rangeOf(frame)
	if ok {
		if n, ok := c.entries[r.Start]; ok {
			c.lru.Touch(n)
			c.hits.Add(1)
			return n.value, true
		}
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

// GetOrRender returns the value for frame, rendering it when needed.
//
// Inside a static range render is called with the range's first frame and
// the result is cached for the whole range. Outside, render is called with
// frame itself and nothing is cached. Errors are returned and not cached.
func (c *FrameCache[V]) GetOrRender(frame pag.Frame, render RenderFunc[V]) (V, error) {
	c.mu.Lock()
	r, static := c.rangeOf(frame)
	if !static {
		c.mu.Unlock()
		c.uncached.Add(1)
		return render(frame)
	}
	if n, ok := c.entries[r.Start]; ok {
		c.lru.Touch(n)
		v := n.value
		c.mu.Unlock()
		c.hits.Add(1)
		return v, nil
	}
	gen := c.gen
	c.mu.Unlock()

	c.misses.Add(1)
	key := strconv.FormatUint(gen, 10) + ":" + strconv.FormatInt(int64(r.Start), 10)
	v, err, _ := c.group.Do(key, func() (any, error) {
		v, err := render(r.Start)
		if err != nil {
			return v, err
		}
		c.store(gen, r.Start, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	val, _ := v.(V)
	return val, nil
}

// store caches v unless the cache was invalidated since gen.
func (c *FrameCache[V]) store(gen uint64, start pag.Frame, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	if n, ok := c.entries[start]; ok {
		n.value = v
		c.lru.Touch(n)
		return
	}
	for c.lru.Len() >= c.capacity {
		old, ok := c.lru.PopBack()
		if !ok {
			break
		}
		delete(c.entries, old.key)
		c.evictions.Add(1)
	}
	c.entries[start] = c.lru.PushFront(start, v)
}

// Invalidate drops every cached value and replaces the static ranges,
// e.g. after the composition was edited.
func (c *FrameCache[V]) Invalidate(ranges []pag.TimeRange) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ranges = append(c.ranges[:0:0], ranges...)
	c.entries = make(map[pag.Frame]*lruNode[pag.Frame, V])
	c.lru.Clear()
	c.gen++
	pag.Logger().Debug("cache: invalidated", "ranges", len(ranges))
}

// Len returns the number of cached ranges.
func (c *FrameCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the number of cached ranges.
	Len int
	// Capacity is the maximum number of cached ranges.
	Capacity int
	// Hits counts lookups served from the cache.
	Hits uint64
	// Misses counts lookups in a static range that had to render.
	Misses uint64
	// Uncached counts renders of frames outside every static range.
	Uncached uint64
	// Evictions counts ranges dropped to stay within capacity.
	Evictions uint64
	// HitRate is Hits / (Hits + Misses), 0 when there were no lookups.
	HitRate float64
}

// Stats returns current cache statistics.
func (c *FrameCache[V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		Uncached:  c.uncached.Load(),
		Evictions: c.evictions.Load(),
		HitRate:   hitRate,
	}
}
