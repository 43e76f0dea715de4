package cardanocli

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandExecutor runs an external command and returns its stdout and stderr
// separately. cardano-cli writes the JSON result to stdout and advisory
// diagnostics to stderr, so the two streams must not be mixed.
type CommandExecutor interface {
	ExecCommand(ctx context.Context, name string, arg ...string) (stdout []byte, stderr []byte, err error)
}

type RealCommandExecutor struct{}

var _ CommandExecutor = (*RealCommandExecutor)(nil)

//nolint:wrapcheck
func (r *RealCommandExecutor) ExecCommand(ctx context.Context, name string, arg ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, arg...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
