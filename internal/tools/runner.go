package tools

import (
	"bytes"
	"errors"
	"os/exec"
)

// Result carries the captured streams and exit code of one finished command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int32
}

// CommandRunner abstracts external tool execution so callers can substitute
// a fake without invoking a real executable.
type CommandRunner interface {
	Run(name string, args ...string) (Result, error)
}

// ExecRunner executes commands on the local host. Arguments are passed
// positionally without shell interpretation and no window or terminal is
// attached.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res, nil
	}

	// A tool that ran to completion reports its exit code through the
	// result; only a failure to run at all surfaces as an error.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = int32(exitErr.ExitCode())
		return res, nil
	}
	return res, err
}
