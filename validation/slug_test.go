package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Falcon", "falcon"},
		{"spaces become hyphens", "My First Project", "my-first-project"},
		{"punctuation collapses", "Hello, World!", "hello-world"},
		{"consecutive separators collapse", "a -- b__c", "a-b-c"},
		{"leading and trailing trimmed", "  Edge Case  ", "edge-case"},
		{"mixed case and digits", "Go 1.22 Release", "go-1-22-release"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"only separators", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
