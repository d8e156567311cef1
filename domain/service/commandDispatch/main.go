package commandDispatch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/t-kuni/cpb/domain/external/buildTool"
	"github.com/t-kuni/cpb/domain/model/failure"
	"github.com/t-kuni/cpb/domain/model/runConfig"
	"github.com/t-kuni/cpb/domain/model/setting"
	"github.com/t-kuni/cpb/domain/repository/file"
	settingRepo "github.com/t-kuni/cpb/domain/repository/setting"
	"github.com/t-kuni/cpb/domain/service/cmakeInvoke"
	"github.com/t-kuni/cpb/domain/service/optionParse"
	"github.com/t-kuni/cpb/domain/system/ksuid"
	"github.com/t-kuni/cpb/domain/system/logger"
	"github.com/t-kuni/cpb/domain/system/timer"
)

type Params struct {
	SettingsPath string
	CMake        string
	Stdout       io.Writer
	Stderr       io.Writer
	// Usage renders the help text.
	Usage func() string
}

type CommandDispatchService struct {
	optionParseService *optionParse.OptionParseService
	settingRepository  settingRepo.Repository
	fileRepository     file.Repository
	runner             buildTool.Runner
	ksuid              ksuid.IKsuid
	timer              timer.ITimer
	params             Params
}

func NewCommandDispatchService(
	optionParseService *optionParse.OptionParseService,
	settingRepository settingRepo.Repository,
	fileRepository file.Repository,
	runner buildTool.Runner,
	ksuid ksuid.IKsuid,
	timer timer.ITimer,
	params Params,
) *CommandDispatchService {
	return &CommandDispatchService{
		optionParseService: optionParseService,
		settingRepository:  settingRepository,
		fileRepository:     fileRepository,
		runner:             runner,
		ksuid:              ksuid,
		timer:              timer,
		params:             params,
	}
}

// Dispatch runs one invocation: parse, early exits, setup, then clean or configure/build.
// The returned error decides the exit status; see failure.ExitCode.
func (s *CommandDispatchService) Dispatch(ctx context.Context, args []string) error {
	opts, err := s.optionParseService.Parse(args)
	if err != nil {
		return err
	}

	log := logger.NewLogger(s.params.Stderr, opts.Debug)
	log.Debugf("run: %s", s.ksuid.New())
	log.Debugf("arguments: %q", args)

	if opts.Generate {
		return s.generate(log)
	}

	if opts.Help {
		fmt.Fprint(s.params.Stdout, s.params.Usage())
		return nil
	}

	cfg, err := s.setup(opts, log)
	if err != nil {
		return err
	}

	if cfg.Cleanup {
		return s.cleanup(cfg, log)
	}

	invoker := cmakeInvoke.NewCMakeInvokeService(s.runner, s.params.CMake, log)

	if cfg.DoConfiguration {
		if err := s.measure(log, cmakeInvoke.PhaseConfigure, func() error {
			return invoker.Configure(ctx, cfg)
		}); err != nil {
			return err
		}
	}

	if cfg.DoBuild {
		return s.measure(log, cmakeInvoke.PhaseBuild, func() error {
			return invoker.Build(ctx, cfg)
		})
	}

	return nil
}

func (s *CommandDispatchService) generate(log *logger.Logger) error {
	template := setting.Template()

	created, err := s.settingRepository.Create(s.params.SettingsPath, template)
	if err != nil {
		return err
	}

	if !created {
		fmt.Fprintf(s.params.Stdout, "'%s' already exists. Nothing was changed.\n", s.params.SettingsPath)
		if log.Enabled() {
			s.logTemplateDiff(log, template)
		}
		return nil
	}

	for _, entry := range template {
		fmt.Fprintln(s.params.Stdout, entry.Line())
	}
	fmt.Fprintf(s.params.Stdout, "Successfully created '%s'\n", s.params.SettingsPath)
	return nil
}

func (s *CommandDispatchService) logTemplateDiff(log *logger.Logger, template setting.Settings) {
	existing, err := s.fileRepository.Read(s.params.SettingsPath)
	if err != nil {
		log.Debugf("failed to read %s: %v", s.params.SettingsPath, err)
		return
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(existing), template.Render())
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	changed := false
	for _, d := range diffs {
		mark := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			mark = "+ "
			changed = true
		case diffmatchpatch.DiffDelete:
			mark = "- "
			changed = true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(mark + strings.TrimRight(line, "\n") + "\n")
		}
	}

	if !changed {
		log.Debugf("%s matches the template", s.params.SettingsPath)
		return
	}
	log.Block("differences from the template (- existing, + template):", sb.String())
}

func (s *CommandDispatchService) setup(opts optionParse.Options, log *logger.Logger) (runConfig.RunConfiguration, error) {
	settings, err := s.settingRepository.Load(s.params.SettingsPath)
	if err != nil {
		return runConfig.RunConfiguration{}, err
	}

	home := settings.FindValue(setting.KeyProjectHome)
	if home == "" {
		return runConfig.RunConfiguration{}, failure.NewConfigError("%s is not set in '%s'", setting.KeyProjectHome, s.params.SettingsPath)
	}
	dir := settings.FindValue(setting.KeyBuildDir)
	if dir == "" {
		return runConfig.RunConfiguration{}, failure.NewConfigError("%s is not set in '%s'", setting.KeyBuildDir, s.params.SettingsPath)
	}

	projectHome := resolvePath(filepath.Dir(s.params.SettingsPath), home)
	buildDir := resolvePath(projectHome, dir)

	if !s.fileRepository.Exists(projectHome) {
		return runConfig.RunConfiguration{}, failure.NewConfigError("ProjectHome does not exist. '%s'", projectHome)
	}
	if !s.fileRepository.Exists(filepath.Dir(buildDir)) {
		return runConfig.RunConfiguration{}, failure.NewConfigError("BuildDirectory does not exist. '%s'", filepath.Dir(buildDir))
	}
	if !s.fileRepository.Exists(buildDir) {
		log.Debugf("creating build directory: %s", buildDir)
		if err := s.fileRepository.Mkdir(buildDir); err != nil {
			return runConfig.RunConfiguration{}, eris.Wrapf(err, "failed to create build directory: %s", buildDir)
		}
	}

	cfg := opts.RunConfiguration().WithPaths(projectHome, buildDir)

	if log.Enabled() {
		dump, err := cfg.Dump()
		if err != nil {
			return runConfig.RunConfiguration{}, eris.Wrap(err, "failed to dump run configuration")
		}
		log.Block("configuration:", dump)
	}

	return cfg, nil
}

func (s *CommandDispatchService) cleanup(cfg runConfig.RunConfiguration, log *logger.Logger) error {
	if err := s.fileRepository.RemoveAll(cfg.BuildDir); err != nil {
		log.Debugf("cleanup: %v", err)
	}
	fmt.Fprintln(s.params.Stdout, "Cleaned up project repository.")
	return nil
}

func (s *CommandDispatchService) measure(log *logger.Logger, phase string, fn func() error) error {
	start := s.timer.Now()
	err := fn()
	log.Debugf("%s finished in %s", phase, s.timer.Now().Sub(start))
	return err
}

func resolvePath(base string, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
