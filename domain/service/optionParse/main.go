package optionParse

import (
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/t-kuni/cpb/domain/model/failure"
	"github.com/t-kuni/cpb/domain/model/runConfig"
)

// Options raw command-line state before the settings file is consulted
type Options struct {
	ConfigureOnly bool
	BuildOnly     bool
	Generate      bool
	Help          bool
	Debug         bool
	BuildType     string
	Verbose       bool
	Clean         bool
	CMakeArgs     string
	Target        string
}

type OptionParseService struct {
	name string
}

func NewOptionParseService(name string) *OptionParseService {
	return &OptionParseService{
		name: name,
	}
}

// FlagSet declares every recognized flag bound to opts.
func (s *OptionParseService) FlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(s.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&opts.ConfigureOnly, "configure", "c", false, "Only configure cmake.")
	fs.BoolVarP(&opts.BuildOnly, "build", "b", false, "Only build.")
	fs.BoolVarP(&opts.Generate, "generate", "g", false, "Create the settings file from the template.")
	fs.BoolVarP(&opts.Help, "help", "h", false, "Show this help.")
	fs.BoolVarP(&opts.Debug, "debug", "d", false, "Output debug messages.")
	fs.StringVarP(&opts.BuildType, "type", "t", "", "Specify build type. e.g. -t Debug")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose output for cmake.")
	fs.BoolVar(&opts.Clean, "clean", false, "Remove the build directory.")
	fs.StringVar(&opts.CMakeArgs, "cmake-args", "", "Arguments passed to cmake. e.g. --cmake-args=arg1,arg2")

	return fs
}

// Parse reads the argument vector (without the program name).
func (s *OptionParseService) Parse(args []string) (Options, error) {
	var opts Options
	fs := s.FlagSet(&opts)

	if err := fs.Parse(args); err != nil {
		return Options{}, failure.NewUsageError("%s", err.Error())
	}

	positional := fs.Args()
	if len(positional) > 1 {
		return Options{}, failure.NewUsageError("accepts at most 1 target, received %d: %s", len(positional), strings.Join(positional, " "))
	}
	if len(positional) == 1 {
		opts.Target = positional[0]
	}

	return opts, nil
}

// RunConfiguration builds the flag half of the run configuration.
// -c suppresses the build phase and -b suppresses the configure phase, so giving both disables both.
func (o Options) RunConfiguration() runConfig.RunConfiguration {
	return runConfig.RunConfiguration{
		Target:          o.Target,
		BuildType:       o.BuildType,
		Verbose:         o.Verbose,
		Debug:           o.Debug,
		Cleanup:         o.Clean,
		DoConfiguration: !o.BuildOnly,
		DoBuild:         !o.ConfigureOnly,
		ExtraArgs:       SplitCMakeArgs(o.CMakeArgs),
	}
}

// SplitCMakeArgs turns a comma-separated list into separate arguments, dropping empty items.
func SplitCMakeArgs(raw string) []string {
	var args []string
	for _, item := range strings.Split(raw, ",") {
		if item == "" {
			continue
		}
		args = append(args, item)
	}
	return args
}
