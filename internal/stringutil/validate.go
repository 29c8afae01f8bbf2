package stringutil

import "net/url"

// IsWellFormedURIReference reports whether s can serve as an absolute URI or
// a relative reference for a path template. url.Parse is deliberately lenient
// (it accepts spaces and control bytes inside paths), so character-level
// checks run first: no whitespace, no control bytes, no raw non-ASCII, and
// none of the delimiters the RFC 3986 grammar excludes. Brackets are allowed
// since assembled URLs may carry indexed query keys like "items[0]".
func IsWellFormedURIReference(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x20 || c >= 0x7f {
			return false
		}
		switch c {
		case '<', '>', '"', '\\', '^', '`', '{', '}', '|':
			return false
		}
	}
	if _, err := url.Parse(s); err != nil {
		return false
	}
	return true
}
