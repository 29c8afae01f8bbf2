package urlbuilder

import "github.com/catenary/urltools/urlerrors"

// buffer is a capacity-bounded byte sequence with a logical write cursor.
// The region [0, n) always holds fully written content; bytes at or beyond
// n are undefined and never read. The capacity is a hard ceiling: an
// operation that would pass it fails with an OverflowError and leaves the
// contents untouched. All URL assembly mutations go through this type; no
// caller manipulates raw offsets.
type buffer struct {
	data []byte // len(data) is the logical capacity
	n    int    // write cursor
}

// reset prepares the buffer for a new build at the given capacity.
func (b *buffer) reset(capacity int) {
	if cap(b.data) < capacity {
		b.data = make([]byte, capacity)
	} else {
		b.data = b.data[:capacity]
	}
	b.n = 0
}

// capacity returns the hard ceiling in bytes.
func (b *buffer) capacity() int {
	return len(b.data)
}

// len returns the current logical length.
func (b *buffer) len() int {
	return b.n
}

// overflow builds the error for an operation needing total bytes.
func (b *buffer) overflow(needed int) error {
	return &urlerrors.OverflowError{Capacity: len(b.data), Needed: needed}
}

// appendString copies s at the cursor and advances it.
func (b *buffer) appendString(s string) error {
	if b.n+len(s) > len(b.data) {
		return b.overflow(b.n + len(s))
	}
	copy(b.data[b.n:], s)
	b.n += len(s)
	return nil
}

// appendByte writes a single byte at the cursor and advances it.
func (b *buffer) appendByte(c byte) error {
	if b.n+1 > len(b.data) {
		return b.overflow(b.n + 1)
	}
	b.data[b.n] = c
	b.n++
	return nil
}

// splice replaces the half-open range [start, end) with replacement,
// shifting the tail [end, n) by len(replacement)-(end-start) positions and
// moving the cursor by the same delta. The tail shift uses copy, whose
// memmove semantics make overlapping source and destination ranges safe in
// both the grow and shrink directions. Bounds must satisfy
// 0 <= start <= end <= len().
func (b *buffer) splice(start, end int, replacement string) error {
	delta := len(replacement) - (end - start)
	if b.n+delta > len(b.data) {
		return b.overflow(b.n + delta)
	}
	if delta != 0 {
		copy(b.data[end+delta:b.n+delta], b.data[end:b.n])
	}
	copy(b.data[start:], replacement)
	b.n += delta
	return nil
}

// String materializes the well-formed region [0, n).
func (b *buffer) String() string {
	return string(b.data[:b.n])
}

// byteAt returns the byte at position i within [0, n).
func (b *buffer) byteAt(i int) byte {
	return b.data[i]
}

// slice returns the written bytes in [start, end) without copying.
// The result is only valid until the next mutation.
func (b *buffer) slice(start, end int) []byte {
	return b.data[start:end]
}
