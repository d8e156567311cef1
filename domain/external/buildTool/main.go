//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package buildTool

import "context"

// ExitStatus how a finished process ended
type ExitStatus struct {
	Code int
	// Signal names the signal that killed the process; Code is then 128 plus the signal number.
	Signal string
}

func (s ExitStatus) Success() bool {
	return s.Code == 0 && s.Signal == ""
}

type Runner interface {
	// Run executes the command and waits for it. err is non-nil only when the process could not be started.
	Run(ctx context.Context, name string, args []string) (ExitStatus, error)
}
