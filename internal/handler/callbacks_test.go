package handler

import (
	"testing"

	"flashcards/internal/engine"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain unique",
			input:    "toggle_zen",
			expected: "toggle_zen",
		},
		{
			name:     "surrounding whitespace",
			input:    "  next  ",
			expected: "next",
		},
		{
			name:     "callback prefix",
			input:    "\fprev",
			expected: "prev",
		},
		{
			name:     "embedded newline and tab",
			input:    "toggle_\nexam\tple",
			expected: "toggle_example",
		},
		{
			name:     "unprintable bytes",
			input:    "reverse\x00\x01",
			expected: "reverse",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestCleanCallbackData_ParsesEveryButton(t *testing.T) {
	for _, btn := range commandButtons {
		cmd, err := engine.ParseCommand(cleanCallbackData("\f" + btn.Unique + "\n"))
		assert.NoError(t, err, btn.Unique)
		assert.Equal(t, btn.Unique, cmd.String())
	}
}
