package urlbuilder

import "sync"

// maxPooledCapacity caps the backing arrays kept for reuse. Buffers that
// outgrow it are dropped rather than pinned in the pool.
const maxPooledCapacity = 64 * 1024

var bufferPool = sync.Pool{
	New: func() any {
		return new(buffer)
	},
}

// getBuffer returns a pooled buffer reset to the given capacity ceiling.
func getBuffer(capacity int) *buffer {
	buf := bufferPool.Get().(*buffer)
	buf.reset(capacity)
	return buf
}

// putBuffer returns buf to the pool for reuse.
func putBuffer(buf *buffer) {
	if cap(buf.data) > maxPooledCapacity {
		return
	}
	bufferPool.Put(buf)
}
