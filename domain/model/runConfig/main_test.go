package runConfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunConfiguration_WithPaths(t *testing.T) {
	flags := RunConfiguration{
		Target:          "mylib",
		DoConfiguration: true,
		DoBuild:         true,
		ExtraArgs:       []string{"-j4"},
	}

	resolved := flags.WithPaths(".", "out")

	assert.Equal(t, ".", resolved.ProjectHome)
	assert.Equal(t, "out", resolved.BuildDir)
	assert.Equal(t, "mylib", resolved.Target)
	assert.Empty(t, flags.ProjectHome)

	resolved.ExtraArgs[0] = "changed"
	assert.Equal(t, "-j4", flags.ExtraArgs[0])
}

func TestRunConfiguration_Dump(t *testing.T) {
	cfg := RunConfiguration{
		ProjectHome:     ".",
		BuildDir:        "out",
		Target:          "mylib",
		BuildType:       "Release",
		DoConfiguration: true,
		DoBuild:         true,
		ExtraArgs:       []string{"-j4", "--quiet"},
	}

	actual, err := cfg.Dump()
	assert.NoError(t, err)

	expect := `
project-home: .
build-dir: out
target: mylib
type: Release
verbose: false
debug: false
clean: false
do-configuration: true
do-build: true
cmake-args:
    - -j4
    - --quiet
`
	assert.YAMLEq(t, expect, actual)
}
