package runConfig

import (
	"gopkg.in/yaml.v3"
)

// RunConfiguration the resolved state of one invocation.
// ProjectHome and BuildDir come from the settings file only; everything else comes from flags only.
type RunConfiguration struct {
	ProjectHome     string   `yaml:"project-home"`
	BuildDir        string   `yaml:"build-dir"`
	Target          string   `yaml:"target,omitempty"`
	BuildType       string   `yaml:"type,omitempty"`
	Verbose         bool     `yaml:"verbose"`
	Debug           bool     `yaml:"debug"`
	Cleanup         bool     `yaml:"clean"`
	DoConfiguration bool     `yaml:"do-configuration"`
	DoBuild         bool     `yaml:"do-build"`
	ExtraArgs       []string `yaml:"cmake-args,omitempty"`
}

// WithPaths returns a copy carrying the resolved settings paths.
func (c RunConfiguration) WithPaths(projectHome string, buildDir string) RunConfiguration {
	c.ProjectHome = projectHome
	c.BuildDir = buildDir
	c.ExtraArgs = append([]string(nil), c.ExtraArgs...)
	return c
}

// Dump renders the configuration as YAML for debug output.
func (c RunConfiguration) Dump() (string, error) {
	content, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
