package optionParse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/cpb/domain/model/failure"
)

func TestOptionParseService_Parse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{
			name:     "no arguments",
			args:     []string{},
			expected: Options{},
		},
		{
			name:     "short flags and target",
			args:     []string{"-c", "-v", "-d", "mylib"},
			expected: Options{ConfigureOnly: true, Verbose: true, Debug: true, Target: "mylib"},
		},
		{
			name:     "combined short flags",
			args:     []string{"-bv"},
			expected: Options{BuildOnly: true, Verbose: true},
		},
		{
			name:     "type with separate value",
			args:     []string{"-t", "Release"},
			expected: Options{BuildType: "Release"},
		},
		{
			name:     "type with equals",
			args:     []string{"--type=Debug"},
			expected: Options{BuildType: "Debug"},
		},
		{
			name:     "target before flags",
			args:     []string{"mylib", "--clean"},
			expected: Options{Clean: true, Target: "mylib"},
		},
		{
			name:     "cmake args",
			args:     []string{"--cmake-args", "-j4,--quiet"},
			expected: Options{CMakeArgs: "-j4,--quiet"},
		},
		{
			name:     "generate and help",
			args:     []string{"-g", "-h"},
			expected: Options{Generate: true, Help: true},
		},
		{
			name:     "target after terminator",
			args:     []string{"--", "-weird"},
			expected: Options{Target: "-weird"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := NewOptionParseService("cpb").Parse(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestOptionParseService_Parse_UsageError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown long flag", args: []string{"--unknown"}},
		{name: "unknown short flag", args: []string{"-x"}},
		{name: "missing type value", args: []string{"-t"}},
		{name: "missing cmake-args value", args: []string{"--cmake-args"}},
		{name: "two targets", args: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOptionParseService("cpb").Parse(tt.args)
			assert.Error(t, err)
			assert.True(t, failure.IsUsage(err))
		})
	}
}

func TestOptions_RunConfiguration(t *testing.T) {
	t.Run("no phase flags run both phases", func(t *testing.T) {
		cfg := Options{}.RunConfiguration()
		assert.True(t, cfg.DoConfiguration)
		assert.True(t, cfg.DoBuild)
	})

	t.Run("-c suppresses the build phase", func(t *testing.T) {
		cfg := Options{ConfigureOnly: true}.RunConfiguration()
		assert.True(t, cfg.DoConfiguration)
		assert.False(t, cfg.DoBuild)
	})

	t.Run("-b suppresses the configure phase", func(t *testing.T) {
		cfg := Options{BuildOnly: true}.RunConfiguration()
		assert.False(t, cfg.DoConfiguration)
		assert.True(t, cfg.DoBuild)
	})

	t.Run("-c and -b together suppress both phases", func(t *testing.T) {
		cfg := Options{ConfigureOnly: true, BuildOnly: true}.RunConfiguration()
		assert.False(t, cfg.DoConfiguration)
		assert.False(t, cfg.DoBuild)
	})

	t.Run("flag values are carried and paths left empty", func(t *testing.T) {
		cfg := Options{
			Target:    "mylib",
			BuildType: "Release",
			Verbose:   true,
			Debug:     true,
			Clean:     true,
			CMakeArgs: "-j4",
		}.RunConfiguration()

		assert.Equal(t, "mylib", cfg.Target)
		assert.Equal(t, "Release", cfg.BuildType)
		assert.True(t, cfg.Verbose)
		assert.True(t, cfg.Debug)
		assert.True(t, cfg.Cleanup)
		assert.Equal(t, []string{"-j4"}, cfg.ExtraArgs)
		assert.Empty(t, cfg.ProjectHome)
		assert.Empty(t, cfg.BuildDir)
	})
}

func TestSplitCMakeArgs(t *testing.T) {
	assert.Nil(t, SplitCMakeArgs(""))
	assert.Equal(t, []string{"-j4"}, SplitCMakeArgs("-j4"))
	assert.Equal(t, []string{"-j4", "--", "-k"}, SplitCMakeArgs("-j4,--,-k"))
	assert.Equal(t, []string{"a", "b"}, SplitCMakeArgs(",a,,b,"))
}
