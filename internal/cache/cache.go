// Package cache holds the scaled frame cache of inline images.
package cache

import (
	"image"
	"slices"
)

// Frames caches frames scaled to one size, keyed by frame index. Changing
// the size drops every entry. Past the soft limit the least recently used
// quarter is evicted.
//
// Frames is owned by a single image and is not safe for concurrent use.
type Frames struct {
	size      image.Point
	entries   map[int]*entry
	softLimit int
	tick      int64
}

type entry struct {
	img   image.Image
	atime int64
}

// NewFrames creates a cache holding about softLimit frames.
// A softLimit of 0 means unlimited.
func NewFrames(softLimit int) *Frames {
	return &Frames{entries: make(map[int]*entry), softLimit: softLimit}
}

// Get returns frame i scaled to size, creating it with scale on a miss.
func (f *Frames) Get(i int, size image.Point, scale func() image.Image) image.Image {
	if size != f.size {
		f.Clear()
		f.size = size
	}
	f.tick++
	if e, ok := f.entries[i]; ok {
		e.atime = f.tick
		return e.img
	}
	img := scale()
	f.entries[i] = &entry{img: img, atime: f.tick}
	if f.softLimit > 0 && len(f.entries) > f.softLimit {
		f.evict()
	}
	return img
}

// Len returns the number of cached frames.
func (f *Frames) Len() int { return len(f.entries) }

// Clear drops every entry.
func (f *Frames) Clear() {
	clear(f.entries)
	f.tick = 0
}

// evict keeps the most recently used three quarters of the soft limit.
func (f *Frames) evict() {
	keep := max(f.softLimit*3/4, 1)
	keys := make([]int, 0, len(f.entries))
	for k := range f.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b int) int {
		return int(f.entries[a].atime - f.entries[b].atime)
	})
	for _, k := range keys[:len(keys)-keep] {
		delete(f.entries, k)
	}
}
