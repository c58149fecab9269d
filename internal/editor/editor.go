package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	dlerrors "github.com/faizmokh/dailylog/internal/errors"
)

// DefaultCommand is used when neither the config nor the environment names an editor.
const DefaultCommand = "vi"

// Launcher collects free-form text from the user.
type Launcher interface {
	// Edit opens the editor on a buffer pre-filled with initial and returns
	// the saved buffer. An untouched or emptied buffer is not an error.
	Edit(ctx context.Context, initial string) (string, error)
}

// Resolve picks the editor command: the configured value first, then
// $VISUAL, then $EDITOR, then vi.
func Resolve(configured string) string {
	for _, candidate := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}
	return DefaultCommand
}

// Editor launches an external editor process on a temporary markdown file.
type Editor struct {
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Editor for the resolved command attached to the process terminal.
func New(configured string) *Editor {
	return &Editor{
		Command: Resolve(configured),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Edit implements Launcher. It blocks until the editor exits.
func (e *Editor) Edit(ctx context.Context, initial string) (string, error) {
	session, err := e.Start(ctx, initial)
	if err != nil {
		return "", err
	}
	session.Cmd.Stdin = e.Stdin
	session.Cmd.Stdout = e.Stdout
	session.Cmd.Stderr = e.Stderr
	return session.Finish(session.Cmd.Run())
}

// Session is a prepared editor invocation. Cmd has not been started; the
// caller runs it (directly or through tea.ExecProcess) and then calls Finish.
type Session struct {
	Cmd    *exec.Cmd
	Path   string
	editor string
}

// Start writes initial to a temp file and builds the command that edits it.
func (e *Editor) Start(ctx context.Context, initial string) (*Session, error) {
	parts := strings.Fields(e.Command)
	if len(parts) == 0 {
		parts = []string{DefaultCommand}
	}

	tmp, err := os.CreateTemp("", "dailylog-*.md")
	if err != nil {
		return nil, dlerrors.NewStoreError("create temp file", os.TempDir(), err)
	}
	path := tmp.Name()
	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		os.Remove(path)
		return nil, dlerrors.NewStoreError("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(path)
		return nil, dlerrors.NewStoreError("close", path, err)
	}

	args := append(parts[1:len(parts):len(parts)], path)
	return &Session{
		Cmd:    exec.CommandContext(ctx, parts[0], args...),
		Path:   path,
		editor: e.Command,
	}, nil
}

// Finish reads the edited buffer and removes the temp file. runErr is the
// result of running Cmd; a launch failure or non-zero exit becomes an
// EditorError and no content is returned.
func (s *Session) Finish(runErr error) (string, error) {
	defer os.Remove(s.Path)

	if runErr != nil {
		return "", dlerrors.NewEditorError(s.editor, runErr)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", dlerrors.NewStoreError("read", s.Path, err)
	}
	return string(data), nil
}
