package cmakeInvoke

import (
	"context"
	"strings"

	"github.com/t-kuni/cpb/domain/external/buildTool"
	"github.com/t-kuni/cpb/domain/model/failure"
	"github.com/t-kuni/cpb/domain/model/runConfig"
	"github.com/t-kuni/cpb/domain/system/logger"
)

const (
	PhaseConfigure = "configure"
	PhaseBuild     = "build"
)

type CMakeInvokeService struct {
	runner buildTool.Runner
	cmake  string
	logger *logger.Logger
}

func NewCMakeInvokeService(runner buildTool.Runner, cmake string, logger *logger.Logger) *CMakeInvokeService {
	return &CMakeInvokeService{
		runner: runner,
		cmake:  cmake,
		logger: logger,
	}
}

// ConfigureArgs `-S <projectHome> -B <buildDir>`
func ConfigureArgs(cfg runConfig.RunConfiguration) []string {
	return []string{"-S", cfg.ProjectHome, "-B", cfg.BuildDir}
}

// BuildArgs `--build <buildDir> [--target <name>] [--config <type>] [-v] [<extraArgs>...]`
func BuildArgs(cfg runConfig.RunConfiguration) []string {
	args := []string{"--build", cfg.BuildDir}
	if cfg.Target != "" {
		args = append(args, "--target", cfg.Target)
	}
	if cfg.BuildType != "" {
		args = append(args, "--config", cfg.BuildType)
	}
	if cfg.Verbose {
		args = append(args, "-v")
	}
	return append(args, cfg.ExtraArgs...)
}

func (s *CMakeInvokeService) Configure(ctx context.Context, cfg runConfig.RunConfiguration) error {
	return s.run(ctx, PhaseConfigure, ConfigureArgs(cfg))
}

func (s *CMakeInvokeService) Build(ctx context.Context, cfg runConfig.RunConfiguration) error {
	return s.run(ctx, PhaseBuild, BuildArgs(cfg))
}

func (s *CMakeInvokeService) run(ctx context.Context, phase string, args []string) error {
	s.logger.Debugf("command: %s %s", s.cmake, strings.Join(args, " "))

	status, err := s.runner.Run(ctx, s.cmake, args)
	if err != nil {
		return failure.NewToolNotStarted(phase, err)
	}
	if status.Signal != "" {
		s.logger.Debugf("%s killed by signal %s", phase, status.Signal)
		return failure.NewToolSignaled(phase, status.Code, status.Signal)
	}
	if !status.Success() {
		s.logger.Debugf("%s exited with status %d", phase, status.Code)
		return failure.NewToolFailed(phase, status.Code)
	}
	return nil
}
