package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/faizmokh/dailylog/internal/editor"
	"github.com/faizmokh/dailylog/internal/git"
	"github.com/faizmokh/dailylog/internal/logbook"
	"github.com/faizmokh/dailylog/internal/render"
	"github.com/faizmokh/dailylog/internal/ui"
	"github.com/faizmokh/dailylog/internal/version"
)

func newBrowseCommand(ctx context.Context, deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse day logs in an interactive viewer.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, browseOptions(deps))
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}
}

func browseOptions(deps *Deps) ui.Options {
	// Adding and editing from the browser needs a process-backed editor.
	ed, _ := deps.Editor.(*editor.Editor)
	return ui.Options{
		Reader: logbook.NewReader(deps.Store),
		Writer: logbook.NewWriter(deps.Store),
		Editor: ed,
		Styles: render.NewStyles(lipgloss.DefaultRenderer()),
		Now:    deps.Now,
		// The alt screen owns the terminal, so the outcome goes to the
		// status line rather than the logger.
		AfterAppend: func(ctx context.Context) (bool, error) {
			return git.AutoSync(ctx, deps.Config, deps.Syncer, nil)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dailylog %s\n", version.Info())
		},
	}
}
