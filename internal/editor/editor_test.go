package editor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dlerrors "github.com/faizmokh/dailylog/internal/errors"
)

// writeScript creates an executable shell script acting as an editor. The
// edited file path arrives as the last argument.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
	path := filepath.Join(t.TempDir(), "fake-editor.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func newTestEditor(command string) *Editor {
	return &Editor{Command: command, Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		visual     string
		editor     string
		want       string
	}{
		{name: "configured wins", configured: "nano", visual: "code -w", editor: "vim", want: "nano"},
		{name: "visual before editor", visual: "code -w", editor: "vim", want: "code -w"},
		{name: "editor env", editor: "vim", want: "vim"},
		{name: "fallback", want: DefaultCommand},
		{name: "blank configured ignored", configured: "  ", editor: "emacs", want: "emacs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VISUAL", tt.visual)
			t.Setenv("EDITOR", tt.editor)
			assert.Equal(t, tt.want, Resolve(tt.configured))
		})
	}
}

func TestEditReturnsSavedBuffer(t *testing.T) {
	script := writeScript(t, `printf 'Fixed bug\n\nUpdated login.\n' > "$1"`)

	got, err := newTestEditor(script).Edit(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Fixed bug\n\nUpdated login.\n", got)
}

func TestEditPrefillsBuffer(t *testing.T) {
	script := writeScript(t, `printf 'more\n' >> "$1"`)

	got, err := newTestEditor(script).Edit(context.Background(), "## 09:00 - existing\n")
	require.NoError(t, err)
	assert.Equal(t, "## 09:00 - existing\nmore\n", got)
}

func TestEditPassesConfiguredArguments(t *testing.T) {
	script := writeScript(t, `[ "$1" = "--wait" ] || exit 3
printf '%s\n' "$1" > "$2"`)

	got, err := newTestEditor(script+" --wait").Edit(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "--wait\n", got)
}

func TestEditUntouchedBufferIsNotAnError(t *testing.T) {
	script := writeScript(t, "exit 0")

	got, err := newTestEditor(script).Edit(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEditNonZeroExitIsEditorError(t *testing.T) {
	script := writeScript(t, `printf 'ignored\n' > "$1"; exit 1`)

	got, err := newTestEditor(script).Edit(context.Background(), "")
	require.Error(t, err)
	assert.Empty(t, got)
	assert.ErrorIs(t, err, dlerrors.ErrEditorFailed)

	var editorErr *dlerrors.EditorError
	require.ErrorAs(t, err, &editorErr)
	assert.Equal(t, script, editorErr.Editor)
}

func TestEditMissingBinaryIsEditorError(t *testing.T) {
	_, err := newTestEditor("dailylog-missing-editor-9876").Edit(context.Background(), "")
	assert.ErrorIs(t, err, dlerrors.ErrEditorFailed)
}

func TestSessionRemovesTempFile(t *testing.T) {
	session, err := newTestEditor("true").Start(context.Background(), "draft")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(session.Path, ".md"))
	assert.FileExists(t, session.Path)

	got, err := session.Finish(nil)
	require.NoError(t, err)
	assert.Equal(t, "draft", got)
	assert.NoFileExists(t, session.Path)
}
