package issues

import "testing"

func TestFormatPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"routes"}, "routes"},
		{[]string{"routes[2]", "template"}, "routes[2].template"},
		{[]string{"routes[0]", "params[1]", "type"}, "routes[0].params[1].type"},
	}

	for _, tt := range tests {
		got := FormatPath(tt.segments...)
		if got != tt.want {
			t.Errorf("FormatPath(%v) = %q, want %q", tt.segments, got, tt.want)
		}
	}
}

func BenchmarkFormatPath_WithPool(b *testing.B) {
	segments := []string{"routes[12]", "query[3]", "name"}
	for b.Loop() {
		_ = FormatPath(segments...)
	}
}

func BenchmarkFormatPath_WithoutPool(b *testing.B) {
	segments := []string{"routes[12]", "query[3]", "name"}
	for b.Loop() {
		result := ""
		for i, s := range segments {
			if i > 0 {
				result += "."
			}
			result += s
		}
		_ = result
	}
}
