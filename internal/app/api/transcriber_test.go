package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		expected string
	}{
		{
			name:     "trims and joins with single spaces",
			segments: []string{" Hello there.", "  General Kenobi. "},
			expected: "Hello there. General Kenobi.",
		},
		{
			name:     "skips empty segments",
			segments: []string{"one", "   ", "", "two"},
			expected: "one two",
		},
		{
			name:     "empty input",
			segments: nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinSegments(tt.segments))
		})
	}
}
