package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/faizmokh/dailylog/internal/config"
	"github.com/faizmokh/dailylog/internal/editor"
	"github.com/faizmokh/dailylog/internal/files"
	"github.com/faizmokh/dailylog/internal/git"
)

// LogLevelEnv sets the log level when --verbose is not given.
const LogLevelEnv = "DAILYLOG_LOG_LEVEL"

// Deps are the collaborators shared by every command. Main leaves them
// empty and they are resolved from flags and the config file before the
// command runs; tests fill them in directly.
type Deps struct {
	Config config.Config
	Store  *files.Manager
	Editor editor.Launcher
	Syncer git.Orchestrator
	Logger *log.Logger
	Now    func() time.Time
}

func (d *Deps) resolve(configPath string, verbose bool, stderr io.Writer) error {
	if d.Logger == nil {
		logger, err := newLogger(stderr, verbose)
		if err != nil {
			return err
		}
		d.Logger = logger
	} else if verbose {
		d.Logger.SetLevel(log.DebugLevel)
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Store != nil {
		return nil
	}

	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = path
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	d.Logger.Debug("configuration loaded", "path", configPath, "found", cfg.Source != "", "log_dir", cfg.LogDir)

	store, err := files.NewManager(cfg.LogDir)
	if err != nil {
		return err
	}

	d.Config = cfg
	d.Store = store
	if d.Editor == nil {
		d.Editor = editor.New(cfg.Editor)
	}
	if d.Syncer == nil {
		d.Syncer = git.NewRepository(store.BasePath(), cfg.GitBranch, d.Logger)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) (*log.Logger, error) {
	level := log.WarnLevel
	if raw := strings.TrimSpace(os.Getenv(LogLevelEnv)); raw != "" {
		parsed, err := log.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogLevelEnv, err)
		}
		level = parsed
	}
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{Level: level, Prefix: "dailylog"}), nil
}

// NewRootCommand creates the top-level Cobra command. Running it without a
// subcommand writes a new entry for today.
func NewRootCommand(ctx context.Context, deps *Deps) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "dailylog",
		Short: "Write and review a daily markdown journal from your terminal.",
		Long: "dailylog opens your editor, turns what you write into a timestamped entry and appends it to\n" +
			"today's markdown file. Logs can be summarized and synced through a git remote.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return deps.resolve(configPath, verbose, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeEntry(ctx, cmd, deps, today(deps.Now))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $DAILYLOG_CONFIG or ~/.dailylog.toml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newPreviousCommand(ctx, deps),
		newYesterdayCommand(ctx, deps),
		newEditCommand(ctx, deps),
		newSummaryCommand(ctx, deps),
		newSyncCommand(ctx, deps),
		newPullCommand(ctx, deps),
		newPushCommand(ctx, deps),
		newBrowseCommand(ctx, deps),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand loads .env and runs the root command with args.
func ExecuteCommand(ctx context.Context, args []string) error {
	_ = godotenv.Load()

	cmd := NewRootCommand(ctx, &Deps{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

// Main is a helper used by cmd/dailylog/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
