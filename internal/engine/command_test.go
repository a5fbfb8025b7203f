package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	for _, cmd := range Commands {
		t.Run(cmd.String(), func(t *testing.T) {
			parsed, err := ParseCommand(cmd.String())
			assert.NoError(t, err)
			assert.Equal(t, cmd, parsed)
		})
	}
}

func TestParseCommand_Unknown(t *testing.T) {
	_, err := ParseCommand("shuffle")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "shuffle")
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "next", CommandNext.String())
	assert.Equal(t, "toggle_zen", CommandToggleZen.String())
	assert.Equal(t, "command(42)", Command(42).String())
}
