package failure

import (
	"errors"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "success", err: nil, expected: ExitSuccess},
		{name: "usage", err: NewUsageError("unknown flag: --%s", "foo"), expected: ExitUsage},
		{name: "config", err: NewConfigError("settings file not found"), expected: ExitConfig},
		{name: "wrapped config", err: eris.Wrap(NewConfigError("missing"), "setup"), expected: ExitConfig},
		{name: "tool status", err: NewToolFailed("build", 2), expected: 2},
		{name: "wrapped tool status", err: eris.Wrap(NewToolFailed("configure", 3), "configure phase"), expected: 3},
		{name: "tool not started", err: NewToolNotStarted("configure", errors.New("not found")), expected: ExitToolNotFound},
		{name: "tool killed by signal", err: NewToolSignaled("build", 143, "terminated"), expected: 143},
		{name: "anything else", err: errors.New("boom"), expected: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestExternalToolError_Error(t *testing.T) {
	assert.Equal(t, "build failed with exit status 2", NewToolFailed("build", 2).Error())
	assert.Equal(t, "build terminated by signal: terminated", NewToolSignaled("build", 143, "terminated").Error())
	assert.Equal(t, "configure failed: exec: not found", NewToolNotStarted("configure", errors.New("exec: not found")).Error())
}

func TestIsUsage(t *testing.T) {
	assert.True(t, IsUsage(eris.Wrap(NewUsageError("bad"), "parse")))
	assert.False(t, IsUsage(NewConfigError("bad")))
}
