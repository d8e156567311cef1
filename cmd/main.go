package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/t-kuni/cpb/config"
	"github.com/t-kuni/cpb/domain/model/failure"
	"github.com/t-kuni/cpb/domain/service/commandDispatch"
	"github.com/t-kuni/cpb/domain/service/optionParse"
	buildToolImpl "github.com/t-kuni/cpb/infrastructure/external/buildTool"
	fileRepo "github.com/t-kuni/cpb/infrastructure/repository/file"
	settingRepo "github.com/t-kuni/cpb/infrastructure/repository/setting"
	ksuidImpl "github.com/t-kuni/cpb/infrastructure/system/ksuid"
	timerImpl "github.com/t-kuni/cpb/infrastructure/system/timer"
)

const Name = "cpb"

type RootCommand struct {
	CobraCommand *cobra.Command
	stderr       io.Writer
}

func NewRootCommand(toolConfig config.ToolConfig, stdout io.Writer, stderr io.Writer) *RootCommand {
	optionParseService := optionParse.NewOptionParseService(Name)

	cmd := &cobra.Command{
		Use:   Name + " [options] [target]",
		Short: "C Project Builder",
		Long:  `cpb configures and builds a CMake project using the paths recorded in its settings file.`,
		// Flags are parsed by the option parser so that --generate is honored before --help.
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().AddFlagSet(optionParseService.FlagSet(&optionParse.Options{}))

	dispatchService := commandDispatch.NewCommandDispatchService(
		optionParseService,
		settingRepo.NewRepository(),
		fileRepo.NewFileRepository(),
		buildToolImpl.NewProcessRunner(stdout, stderr),
		ksuidImpl.NewRunIdGenerator(),
		timerImpl.NewTimer(),
		commandDispatch.Params{
			SettingsPath: toolConfig.SettingsPath,
			CMake:        toolConfig.CMake,
			Stdout:       stdout,
			Stderr:       stderr,
			Usage:        cmd.UsageString,
		},
	)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return dispatchService.Dispatch(cmd.Context(), args)
	}

	return &RootCommand{
		CobraCommand: cmd,
		stderr:       stderr,
	}
}

// Run executes the command and reports failures on stderr. It returns the process exit status.
func (r *RootCommand) Run(ctx context.Context, args []string) int {
	r.CobraCommand.SetArgs(args)

	err := r.CobraCommand.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(r.stderr, "%s: %v\n", Name, err)
		if failure.IsUsage(err) {
			fmt.Fprint(r.stderr, r.CobraCommand.UsageString())
		}
	}

	return failure.ExitCode(err)
}
