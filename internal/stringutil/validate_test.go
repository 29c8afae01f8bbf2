package stringutil

import "testing"

func TestIsWellFormedURIReference(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "relative path", input: "/users/profile", want: true},
		{name: "relative path with placeholder", input: "/users/:id", want: true},
		{name: "absolute http url", input: "http://example.com/users", want: true},
		{name: "absolute with port and query", input: "https://example.com:8080/a?b=c", want: true},
		{name: "bare segment", input: "users", want: true},
		{name: "query only", input: "?filter=active", want: true},
		{name: "fragment", input: "/docs#section", want: true},
		{name: "indexed query keys", input: "/api?items[0]=a", want: true},
		{name: "percent encoded", input: "/a%20b", want: true},
		{name: "empty string", input: "", want: true},
		{name: "interior space", input: "not a valid url", want: false},
		{name: "leading space", input: " /users", want: false},
		{name: "tab", input: "/a\tb", want: false},
		{name: "newline", input: "/a\nb", want: false},
		{name: "control byte", input: "/a\x00b", want: false},
		{name: "bad percent escape", input: "/a%zzb", want: false},
		{name: "angle bracket", input: "/a<b>", want: false},
		{name: "double quote", input: `/a"b`, want: false},
		{name: "backslash", input: `\users\1`, want: false},
		{name: "caret", input: "/a^b", want: false},
		{name: "curly brace", input: "/users/{id}", want: false},
		{name: "pipe", input: "/a|b", want: false},
		{name: "raw non-ascii", input: "/café", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsWellFormedURIReference(tt.input)
			if got != tt.want {
				t.Errorf("IsWellFormedURIReference(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
