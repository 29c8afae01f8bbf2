package keypath

import "strings"

// Style selects how a parent prefix and a child name combine into one key.
type Style int

const (
	// StyleDot joins segments with dots: "parent.child".
	StyleDot Style = iota
	// StyleBracket wraps nested segments in brackets: "parent[child]".
	StyleBracket
	// StyleFlatten discards the prefix entirely; only the last segment
	// survives. Sibling names under different parents collide.
	StyleFlatten
)

// Builder provides efficient incremental key construction for nested
// traversal. Uses push/pop semantics to avoid allocations during the walk.
// The full key is only materialized when String() is called.
type Builder struct {
	segments []string
	length   int // Pre-calculated length for String() allocation
	style    Style
}

// sepLen is the per-segment separator overhead beyond the first segment.
func (b *Builder) sepLen() int {
	switch b.style {
	case StyleBracket:
		return 2 // "[" and "]"
	case StyleDot:
		return 1
	default:
		return 0
	}
}

// Style returns the composition style the builder was configured with.
func (b *Builder) Style() Style {
	return b.style
}

// Push adds a segment to the key.
func (b *Builder) Push(segment string) {
	b.segments = append(b.segments, segment)
	if len(b.segments) > 1 {
		b.length += b.sepLen()
	}
	b.length += len(segment)
}

// Pop removes the last segment.
func (b *Builder) Pop() {
	if len(b.segments) == 0 {
		return
	}
	last := b.segments[len(b.segments)-1]
	b.segments = b.segments[:len(b.segments)-1]
	b.length -= len(last)
	if len(b.segments) > 0 {
		b.length -= b.sepLen()
	}
}

// Depth returns the number of segments currently pushed.
func (b *Builder) Depth() int {
	return len(b.segments)
}

// Reset clears the builder for reuse with the given style.
func (b *Builder) Reset(style Style) {
	b.segments = b.segments[:0]
	b.length = 0
	b.style = style
}

// String materializes the full key. Only call when the key is needed.
func (b *Builder) String() string {
	if len(b.segments) == 0 {
		return ""
	}
	if b.style == StyleFlatten {
		return b.segments[len(b.segments)-1]
	}
	var sb strings.Builder
	sb.Grow(b.length)
	sb.WriteString(b.segments[0])
	for _, seg := range b.segments[1:] {
		b.writeSegment(&sb, seg)
	}
	return sb.String()
}

// Key returns the key for name as if it were pushed at the current depth,
// without mutating the builder. Equivalent to Push(name), String(), Pop()
// but skips the intermediate slice writes on the hot leaf path.
func (b *Builder) Key(name string) string {
	if len(b.segments) == 0 || b.style == StyleFlatten {
		return name
	}
	var sb strings.Builder
	sb.Grow(b.length + b.sepLen() + len(name))
	sb.WriteString(b.segments[0])
	for _, seg := range b.segments[1:] {
		b.writeSegment(&sb, seg)
	}
	b.writeSegment(&sb, name)
	return sb.String()
}

func (b *Builder) writeSegment(sb *strings.Builder, seg string) {
	if b.style == StyleBracket {
		sb.WriteByte('[')
		sb.WriteString(seg)
		sb.WriteByte(']')
	} else {
		sb.WriteByte('.')
		sb.WriteString(seg)
	}
}
