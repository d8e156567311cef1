package config

import (
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/cpb/testUtil"
)

func TestReadToolConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvSettings, "")
		t.Setenv(EnvCMake, "")

		cfg := ReadToolConfig()
		assert.Equal(t, DefaultSettingsPath, cfg.SettingsPath)
		assert.Equal(t, DefaultCMake, cfg.CMake)
	})

	t.Run("values from .env", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		t.Setenv(EnvSettings, "")
		t.Setenv(EnvCMake, "")
		space.WriteFile(".env", []byte("CPB_SETTINGS=conf/project.settings\nCPB_CMAKE=/opt/cmake/bin/cmake\n"))

		// godotenv.Load does not override variables that are already set, even when empty.
		env, err := godotenv.Read(".env")
		assert.NoError(t, err)
		for k, v := range env {
			t.Setenv(k, v)
		}

		cfg := ReadToolConfig()
		assert.Equal(t, "conf/project.settings", cfg.SettingsPath)
		assert.Equal(t, "/opt/cmake/bin/cmake", cfg.CMake)
	})
}
