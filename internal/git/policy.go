package git

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/faizmokh/dailylog/internal/config"
	dlerrors "github.com/faizmokh/dailylog/internal/errors"
)

// Orchestrator is the set of version-control operations the sync policy
// relies on. *Repository is the production implementation.
type Orchestrator interface {
	EnsureInitialized(ctx context.Context, remote string) error
	Pull(ctx context.Context) error
	Push(ctx context.Context) error
	CommitAll(ctx context.Context, message string) error
}

// Sync initializes the repository if needed, then pulls and pushes. Pull
// always runs first; a push failure is returned but the completed pull is
// kept.
func Sync(ctx context.Context, cfg config.Config, o Orchestrator) error {
	if err := requireRemote(cfg); err != nil {
		return err
	}
	if err := o.EnsureInitialized(ctx, cfg.GitRepo); err != nil {
		return dlerrors.Wrap(err, "initialize repository")
	}
	if err := o.Pull(ctx); err != nil {
		return dlerrors.Wrap(err, "pull")
	}
	if err := o.Push(ctx); err != nil {
		return dlerrors.Wrap(err, "push after successful pull")
	}
	return nil
}

// Pull runs an explicit pull. A remote must be configured.
func Pull(ctx context.Context, cfg config.Config, o Orchestrator) error {
	if err := requireRemote(cfg); err != nil {
		return err
	}
	if err := o.Pull(ctx); err != nil {
		return dlerrors.Wrap(err, "pull")
	}
	return nil
}

// Push runs an explicit push. A remote must be configured.
func Push(ctx context.Context, cfg config.Config, o Orchestrator) error {
	if err := requireRemote(cfg); err != nil {
		return err
	}
	if err := o.Push(ctx); err != nil {
		return dlerrors.Wrap(err, "push")
	}
	return nil
}

// AutoSync runs after a successful append. It syncs only when git_auto_sync
// is on and a remote is configured. The entry is already saved, so a failed
// sync is a warning: it is logged when logger is non-nil and returned for the
// caller to display, never to abort on.
func AutoSync(ctx context.Context, cfg config.Config, o Orchestrator, logger *log.Logger) (attempted bool, err error) {
	if !cfg.AutoSyncEnabled() {
		return false, nil
	}
	if err := Sync(ctx, cfg, o); err != nil {
		if logger != nil {
			logger.Warn("auto-sync failed; entry is saved locally", "err", err)
		}
		return true, err
	}
	return true, nil
}

func requireRemote(cfg config.Config) error {
	if !cfg.HasRemote() {
		return dlerrors.NewConfigError("git_repo", nil, dlerrors.ErrNoRemote)
	}
	return nil
}
