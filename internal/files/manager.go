package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	dlerrors "github.com/faizmokh/dailylog/internal/errors"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// Extension is appended to the YYYY-MM-DD name of every log file.
	Extension = ".md"
)

// Manager is the log store: it maps a calendar date to a Markdown file in the
// base directory and performs the raw reads and writes against it.
//
// Nothing here locks files. dailylog assumes a single writer per log
// directory; two invocations racing on the same day file are not guarded.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.dailylog (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	basePath, err = ExpandHome(basePath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all log files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// DayPath resolves the absolute path to the markdown file for the supplied date.
// The file may not exist yet.
func (m *Manager) DayPath(t time.Time) string {
	return filepath.Join(m.basePath, FileName(t))
}

// FileName returns the deterministic file name for a date, e.g. 2025-11-02.md.
func FileName(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d%s", t.Year(), t.Month(), t.Day(), Extension)
}

// EnsureDir creates the base directory if it is missing.
func (m *Manager) EnsureDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return dlerrors.NewStoreError("create directory", m.basePath, err)
	}
	return nil
}

// Read returns the bytes stored for date. A missing file reports ok=false
// with a nil error so callers can treat it as an empty day.
func (m *Manager) Read(date time.Time) ([]byte, bool, error) {
	if m == nil {
		return nil, false, errors.New("files.Manager is nil")
	}

	path := m.DayPath(date)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, dlerrors.NewStoreError("read", path, err)
	}
	return data, true, nil
}

// Append writes fragment at the end of the day file, creating the directory
// tree and the file on first use.
func (m *Manager) Append(date time.Time, fragment string) error {
	if err := m.EnsureDir(); err != nil {
		return err
	}

	path := m.DayPath(date)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, filePermissions)
	if err != nil {
		return dlerrors.NewStoreError("open", path, err)
	}

	if _, err := file.WriteString(fragment); err != nil {
		file.Close()
		return dlerrors.NewStoreError("append", path, err)
	}
	if err := file.Close(); err != nil {
		return dlerrors.NewStoreError("close", path, err)
	}
	return nil
}

// WriteWhole replaces the day file with data. The new content is staged in a
// temp file in the same directory and renamed into place so a failed write
// never leaves a truncated log behind.
func (m *Manager) WriteWhole(date time.Time, data []byte) error {
	if err := m.EnsureDir(); err != nil {
		return err
	}

	path := m.DayPath(date)
	temp, err := os.CreateTemp(m.basePath, "dailylog-*")
	if err != nil {
		return dlerrors.NewStoreError("create temp", m.basePath, err)
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return dlerrors.NewStoreError("write", temp.Name(), err)
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return dlerrors.NewStoreError("sync", temp.Name(), err)
	}
	if err := temp.Close(); err != nil {
		return dlerrors.NewStoreError("close", temp.Name(), err)
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return dlerrors.NewStoreError("chmod", temp.Name(), err)
	}

	if err := os.Rename(temp.Name(), path); err != nil {
		return dlerrors.NewStoreError("replace", path, err)
	}
	return nil
}
