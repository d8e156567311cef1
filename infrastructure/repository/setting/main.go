package setting

import (
	"bufio"
	"errors"
	"os"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/cpb/domain/model/failure"
	"github.com/t-kuni/cpb/domain/model/setting"
	settingRepo "github.com/t-kuni/cpb/domain/repository/setting"
)

type repositoryImpl struct{}

func NewRepository() settingRepo.Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Load(path string) (setting.Settings, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, failure.NewConfigError("'%s' does not exist. Run with --generate first.", path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open settings file: %s", path)
	}
	defer f.Close()

	var settings setting.Settings
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entry, ok := setting.ParseLine(scanner.Text())
		if !ok {
			continue
		}
		settings = append(settings, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrapf(err, "failed to read settings file: %s", path)
	}

	return settings, nil
}

func (r *repositoryImpl) Create(path string, entries setting.Settings) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, eris.Wrapf(err, "failed to create settings file: %s", path)
	}

	if _, err := f.WriteString(entries.Render()); err != nil {
		f.Close()
		return false, eris.Wrapf(err, "failed to write settings file: %s", path)
	}

	if err := f.Close(); err != nil {
		return false, eris.Wrapf(err, "failed to write settings file: %s", path)
	}

	return true, nil
}
