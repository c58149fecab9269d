package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	dlerrors "github.com/faizmokh/dailylog/internal/errors"
)

// CommandExecutor runs git subcommands inside a working directory.
type CommandExecutor interface {
	// Execute runs git with args and discards stdout.
	Execute(ctx context.Context, dir string, args ...string) error

	// ExecuteWithOutput runs git with args and returns stdout.
	ExecuteWithOutput(ctx context.Context, dir string, args ...string) (string, error)
}

// ExecExecutor is the default CommandExecutor backed by os/exec.
type ExecExecutor struct {
	// Binary is the git executable; empty means "git" from PATH.
	Binary string
}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{Binary: "git"}
}

// Execute implements CommandExecutor.Execute
func (e *ExecExecutor) Execute(ctx context.Context, dir string, args ...string) error {
	_, err := e.ExecuteWithOutput(ctx, dir, args...)
	return err
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput
func (e *ExecExecutor) ExecuteWithOutput(ctx context.Context, dir string, args ...string) (string, error) {
	binary := e.Binary
	if binary == "" {
		binary = "git"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		operation := ""
		if len(args) > 0 {
			operation = args[0]
		}
		// Some failures, like "nothing to commit", are reported on stdout.
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = strings.TrimSpace(stdout.String())
		}
		wrappedErr := dlerrors.Wrap(dlerrors.ErrGitOperationFailed, err.Error())
		return "", dlerrors.NewGitError(operation, args, wrappedErr, output)
	}

	return stdout.String(), nil
}
