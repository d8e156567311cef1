package buildTool

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/t-kuni/cpb/domain/external/buildTool"
)

type ProcessRunner struct {
	stdout io.Writer
	stderr io.Writer
}

func NewProcessRunner(stdout io.Writer, stderr io.Writer) buildTool.Runner {
	return &ProcessRunner{
		stdout: stdout,
		stderr: stderr,
	}
}

func (r *ProcessRunner) Run(ctx context.Context, name string, args []string) (buildTool.ExitStatus, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return buildTool.ExitStatus{}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return buildTool.ExitStatus{}, err
	}

	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		sig := ws.Signal()
		return buildTool.ExitStatus{Code: 128 + int(sig), Signal: sig.String()}, nil
	}

	return buildTool.ExitStatus{Code: exitErr.ExitCode()}, nil
}
