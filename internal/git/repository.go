package git

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	dlerrors "github.com/faizmokh/dailylog/internal/errors"
)

// Repository drives the git CLI inside the log directory. It is the only
// place that knows about remotes and branches; callers go through the
// Orchestrator interface.
type Repository struct {
	dir      string
	branch   string
	executor CommandExecutor
	logger   *log.Logger
	now      func() time.Time
}

// NewRepository creates a Repository that shells out to git.
func NewRepository(dir, branch string, logger *log.Logger) *Repository {
	return NewRepositoryWithExecutor(dir, branch, logger, NewExecExecutor())
}

// NewRepositoryWithExecutor creates a Repository with a custom executor.
func NewRepositoryWithExecutor(dir, branch string, logger *log.Logger, executor CommandExecutor) *Repository {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Repository{
		dir:      dir,
		branch:   branch,
		executor: executor,
		logger:   logger.WithPrefix("git"),
		now:      time.Now,
	}
}

// IsInitialized reports whether the log directory already contains a .git entry.
func (r *Repository) IsInitialized() (bool, error) {
	_, err := os.Stat(filepath.Join(r.dir, ".git"))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, dlerrors.NewStoreError("stat", filepath.Join(r.dir, ".git"), err)
}

// EnsureInitialized turns the log directory into a clone of remote. Existing
// repositories are left untouched. When the remote branch cannot be pulled
// (usually a brand new remote) the branch is created locally instead.
func (r *Repository) EnsureInitialized(ctx context.Context, remote string) error {
	ok, err := r.IsInitialized()
	if err != nil {
		return err
	}
	if ok {
		r.logger.Debug("repository already initialized", "dir", r.dir)
		return nil
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return dlerrors.NewStoreError("create directory", r.dir, err)
	}

	r.logger.Info("initializing repository", "dir", r.dir, "remote", remote)
	if err := r.run(ctx, "init"); err != nil {
		return err
	}
	if err := r.run(ctx, "remote", "add", "origin", remote); err != nil {
		return err
	}
	if err := r.run(ctx, "pull", "origin", r.branch); err != nil {
		r.logger.Info("could not pull from remote, creating branch", "branch", r.branch, "err", err)
		return r.run(ctx, "checkout", "-b", r.branch)
	}
	return nil
}

// Pull fetches and merges the configured branch from origin.
func (r *Repository) Pull(ctx context.Context) error {
	if err := r.requireInitialized(); err != nil {
		return err
	}
	return r.run(ctx, "pull", "origin", r.branch)
}

// CommitAll stages every Markdown log and commits with message. Only staged
// changes count: stray untracked files in the log directory never trigger an
// empty commit, and nothing staged is not an error.
func (r *Repository) CommitAll(ctx context.Context, message string) error {
	if err := r.requireInitialized(); err != nil {
		return err
	}
	logs, err := filepath.Glob(filepath.Join(r.dir, "*.md"))
	if err != nil {
		return err
	}
	if len(logs) > 0 {
		if err := r.run(ctx, "add", "--all", "--", "*.md"); err != nil {
			return err
		}
	}

	staged, err := r.output(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return err
	}
	if strings.TrimSpace(staged) == "" {
		r.logger.Debug("nothing to commit")
		return nil
	}
	return r.run(ctx, "commit", "-m", message)
}

// Push commits pending log changes and pushes the branch to origin. A
// repository without any commit yet has nothing to push.
func (r *Repository) Push(ctx context.Context) error {
	if err := r.CommitAll(ctx, CommitMessage(r.now())); err != nil {
		return err
	}
	if err := r.run(ctx, "rev-parse", "--verify", "--quiet", "HEAD"); err != nil {
		r.logger.Debug("no commits yet, skipping push")
		return nil
	}
	return r.run(ctx, "push", "origin", r.branch)
}

// CommitMessage is the message used for automatic log commits.
func CommitMessage(now time.Time) string {
	return "Update logs - " + now.Format("2006-01-02 15:04")
}

func (r *Repository) requireInitialized() error {
	ok, err := r.IsInitialized()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s (run 'dailylog sync' to set up git sync first)", dlerrors.ErrNotRepository, r.dir)
	}
	return nil
}

func (r *Repository) run(ctx context.Context, args ...string) error {
	r.logger.Debug("running git", "args", args)
	return r.executor.Execute(ctx, r.dir, args...)
}

func (r *Repository) output(ctx context.Context, args ...string) (string, error) {
	r.logger.Debug("running git", "args", args)
	return r.executor.ExecuteWithOutput(ctx, r.dir, args...)
}
