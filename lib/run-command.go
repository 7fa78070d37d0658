package backgroundlib

import (
	"bytes"
	"context"
	"os/exec"
	"syscall"
)

var sysProcAttr = &syscall.SysProcAttr{}

// Runner runs an external program and returns its stdout and stderr.
type Runner func(ctx context.Context, name string, args ...string) (
	stdout, stderr []byte, err error)

func runCommand(ctx context.Context, name string, args ...string) (
	[]byte, []byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.SysProcAttr = sysProcAttr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
