//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package setting

import (
	"github.com/t-kuni/cpb/domain/model/setting"
)

type Repository interface {
	// Load fails with a ConfigError when the file does not exist.
	Load(path string) (setting.Settings, error)
	// Create writes entries in order unless the file already exists. It reports whether the file was written.
	Create(path string, entries setting.Settings) (bool, error)
}
