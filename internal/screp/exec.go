package screp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ExecResult is the captured output of one external command run.
type ExecResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// run executes an external command and captures its output. A non-zero exit
// code is not an error here: the result carries it and the caller decides.
func run(ctx context.Context, name string, args ...string) (*ExecResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &ExecResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return res, nil
		}
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	return res, nil
}
