package keypath

import "sync"

const (
	defaultKeyCap = 8  // Most parameter objects nest <8 levels deep
	maxKeyCap     = 64 // Don't pool excessively deep builders
)

var builderPool = sync.Pool{
	New: func() any {
		return &Builder{
			segments: make([]string, 0, defaultKeyCap),
		}
	},
}

// Get retrieves a Builder from the pool, reset to the given style.
func Get(style Style) *Builder {
	b := builderPool.Get().(*Builder)
	b.Reset(style)
	return b
}

// Put returns a Builder to the pool if not oversized.
func Put(b *Builder) {
	if b == nil || cap(b.segments) > maxKeyCap {
		return // Let GC collect oversized builders
	}
	builderPool.Put(b)
}
