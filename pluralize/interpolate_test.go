package pluralize

import "testing"

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		captures []string
		expected string
	}{
		{"plain text passes through", "men", []string{"man"}, "men"},
		{"whole match", "$0", []string{"sheep"}, "sheep"},
		{"first group", "$1es", []string{"bus", "bus"}, "buses"},
		{"adjacent groups", "$1$2ves", []string{"lf", "", "l"}, "lves"},
		{"absent group is empty", "$1ren", []string{"child"}, "ren"},
		{"two digit index", "a$25b", []string{"x", "y", "z"}, "ab"},
		{"dollar without digits untouched", "a$b", []string{"x"}, "a$b"},
		{"empty template", "", []string{"x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := interpolate(tt.template, tt.captures)
			if result != tt.expected {
				t.Errorf("interpolate(%q, %v) = %q; want %q", tt.template, tt.captures, result, tt.expected)
			}
		})
	}
}
