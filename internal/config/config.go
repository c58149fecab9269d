package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	dlerrors "github.com/faizmokh/dailylog/internal/errors"
	"github.com/faizmokh/dailylog/internal/files"
	"github.com/faizmokh/dailylog/internal/summary"
)

const (
	// DefaultFileName is the config file looked up in the user's home directory.
	DefaultFileName = ".dailylog.toml"

	// DefaultBranch is used for pull/push when git_branch_name is absent.
	DefaultBranch = "master"

	// PathEnv overrides the config file location.
	PathEnv = "DAILYLOG_CONFIG"
)

// Config holds the settings for one dailylog run. It is loaded once at
// startup and passed by value to the components that need it.
type Config struct {
	// LogDir is the absolute directory holding the YYYY-MM-DD.md files.
	LogDir string

	// GitRepo is the remote URL used for sync; empty disables syncing.
	GitRepo string

	// GitAutoSync syncs after every appended entry when a remote is set.
	GitAutoSync bool

	// GitBranch is the branch pulled from and pushed to.
	GitBranch string

	// SummaryDays are the weekdays counted as expected logging days.
	SummaryDays summary.WeekdaySet

	// Editor overrides $VISUAL / $EDITOR when non-empty.
	Editor string

	// Source is the file the values were read from, or empty when only
	// defaults apply.
	Source string
}

// HasRemote reports whether a git remote is configured.
func (c Config) HasRemote() bool {
	return strings.TrimSpace(c.GitRepo) != ""
}

// AutoSyncEnabled reports whether appends should trigger a sync.
func (c Config) AutoSyncEnabled() bool {
	return c.GitAutoSync && c.HasRemote()
}

type fileConfig struct {
	LogDir        *string   `toml:"log_dir"`
	GitRepo       *string   `toml:"git_repo"`
	GitAutoSync   *bool     `toml:"git_auto_sync"`
	GitBranchName *string   `toml:"git_branch_name"`
	SummaryDays   *[]string `toml:"summary_days"`
	Editor        *string   `toml:"editor"`
}

// DefaultPath resolves the config file location: $DAILYLOG_CONFIG when set,
// otherwise ~/.dailylog.toml.
func DefaultPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(PathEnv)); override != "" {
		return files.ExpandHome(override)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Default returns the configuration used when no file exists.
func Default() (Config, error) {
	logDir, err := files.ResolveBasePath()
	if err != nil {
		return Config{}, fmt.Errorf("resolve log directory: %w", err)
	}
	return Config{
		LogDir:      logDir,
		GitBranch:   DefaultBranch,
		SummaryDays: summary.DefaultWeekdays(),
	}, nil
}

// Load reads the TOML file at path and applies defaults for every absent
// field. A missing file is not an error. Malformed TOML, unknown keys and
// unrecognized weekday names are reported as *errors.ConfigError.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, dlerrors.NewConfigError("file", path, err)
	}

	var raw fileConfig
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Config{}, dlerrors.NewConfigError("file", path,
			fmt.Errorf("%w: %w", dlerrors.ErrInvalidConfiguration, err))
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return Config{}, dlerrors.NewConfigError("file", path,
			fmt.Errorf("%w: unknown keys %s", dlerrors.ErrInvalidConfiguration, strings.Join(keys, ", ")))
	}

	if err := raw.apply(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Source = path
	return cfg, nil
}

func (raw fileConfig) apply(cfg *Config) error {
	if raw.LogDir != nil && strings.TrimSpace(*raw.LogDir) != "" {
		dir, err := files.ExpandHome(strings.TrimSpace(*raw.LogDir))
		if err != nil {
			return dlerrors.NewConfigError("log_dir", *raw.LogDir, err)
		}
		cfg.LogDir = dir
	}
	if raw.GitRepo != nil {
		cfg.GitRepo = strings.TrimSpace(*raw.GitRepo)
	}
	if raw.GitAutoSync != nil {
		cfg.GitAutoSync = *raw.GitAutoSync
	}
	if raw.GitBranchName != nil {
		branch := strings.TrimSpace(*raw.GitBranchName)
		if branch == "" {
			return dlerrors.NewConfigError("git_branch_name", *raw.GitBranchName,
				fmt.Errorf("%w: branch name must not be empty", dlerrors.ErrInvalidConfiguration))
		}
		cfg.GitBranch = branch
	}
	if raw.SummaryDays != nil {
		days, err := summary.ParseWeekdays(*raw.SummaryDays)
		if err != nil {
			return err
		}
		cfg.SummaryDays = days
	}
	if raw.Editor != nil {
		cfg.Editor = strings.TrimSpace(*raw.Editor)
	}
	return nil
}
