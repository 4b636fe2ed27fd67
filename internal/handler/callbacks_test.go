package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "pick_word",
			expected: "pick_word",
		},
		{
			name:     "string with whitespace",
			input:    "  pick_word  ",
			expected: "pick_word",
		},
		{
			name:     "string with newline",
			input:    "pick\nword",
			expected: "pickword",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "pick\x00word\x01",
			expected: "pickword",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
