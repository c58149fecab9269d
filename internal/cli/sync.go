package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/dailylog/internal/git"
)

func newSyncCommand(ctx context.Context, deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync logs with the git remote (pull then push).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Syncing logs with git repository...")
			if err := git.Sync(ctx, deps.Config, deps.Syncer); err != nil {
				return err
			}
			fmt.Fprintln(out, "Successfully synced logs.")
			return nil
		},
	}
}

func newPullCommand(ctx context.Context, deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull the latest logs from the git remote.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Pulling latest logs from git repository...")
			if err := git.Pull(ctx, deps.Config, deps.Syncer); err != nil {
				return err
			}
			fmt.Fprintln(out, "Successfully pulled latest logs.")
			return nil
		},
	}
}

func newPushCommand(ctx context.Context, deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Commit and push logs to the git remote.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Pushing logs to git repository...")
			if err := git.Push(ctx, deps.Config, deps.Syncer); err != nil {
				return err
			}
			fmt.Fprintln(out, "Successfully pushed logs.")
			return nil
		},
	}
}
