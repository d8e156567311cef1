package config

import (
	"os"
)

const (
	EnvSettings = "CPB_SETTINGS"
	EnvCMake    = "CPB_CMAKE"

	DefaultSettingsPath = "buildsettings.txt"
	DefaultCMake        = "cmake"
)

// ToolConfig settings of the tool itself. Project paths live in the settings file, not here.
type ToolConfig struct {
	SettingsPath string
	CMake        string
}

// ReadToolConfig reads the environment; call godotenv first so `.env` values are visible.
func ReadToolConfig() ToolConfig {
	return ToolConfig{
		SettingsPath: getenv(EnvSettings, DefaultSettingsPath),
		CMake:        getenv(EnvCMake, DefaultCMake),
	}
}

func getenv(key string, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
