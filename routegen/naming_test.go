package routegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToExportedName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"userProfile", "UserProfile"},
		{"UserProfile", "UserProfile"},
		{"user_profile", "UserProfile"},
		{"user-profile", "UserProfile"},
		{"admin.users", "AdminUsers"},
		{"user profile", "UserProfile"},
		{"2fa", "R2fa"},
		{"---", "Route"},
		{"", "Route"},
		{"type", "Type"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toExportedName(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToFuncName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"userProfile", "UserProfileURL"},
		{"user_profile", "UserProfileURL"},
		{"search", "SearchURL"},
		{"type", "TypeURL"},
		{"", "RouteURL"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toFuncName(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToConstName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"userProfile", "UserProfileTemplate"},
		{"search", "SearchTemplate"},
		{"api-v2.health", "ApiV2HealthTemplate"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toConstName(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToArgName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"id", "id"},
		{"userId", "userId"},
		{"UserId", "userId"},
		{"user_id", "userId"},
		{"page-size", "pageSize"},
		{"type", "type_"},
		{"range", "range_"},
		{"2fa", "r2fa"},
		{"", "route"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toArgName(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEscapeReservedWord(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"break", "break_"},
		{"type", "type_"},
		{"Map", "Map_"},
		{"error", "error"},
		{"maps", "maps"},
		{"tab", "tab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := escapeReservedWord(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Simple description", "Simple description"},
		{"Multi\nline\ndescription", "Multi line description"},
		{"  Whitespace  ", "Whitespace"},
		{strings.Repeat("a", 300), strings.Repeat("a", 197) + "..."},
	}

	for _, tt := range tests {
		name := tt.input
		if len(name) > 10 {
			name = name[:10]
		}
		t.Run(name, func(t *testing.T) {
			result := cleanDescription(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
