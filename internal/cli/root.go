// Package cli implements the habits command-line interface.
//
// The CLI is thin glue: argument parsing and console formatting around
// the store gateway. Each invocation opens the store exactly once in
// the command body, holds the connection for the command's duration,
// and releases it on every exit path.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/habits/internal/config"
	"github.com/roach88/habits/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Database string
	Config   string
	Verbose  bool
	Debug    bool
	Format   string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the habits CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "habits",
		Short: "habits - a personal habit tracker",
		Long: `Track named habits and log timestamped occurrences against them,
persisted in a local SQLite database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts)
			return applyConfigFile(cmd, opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.Database, "database", "d", "", "path to the database file")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to the config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "debug output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewAliasCommand(opts))
	cmd.AddCommand(NewRecordsCommand(opts))
	cmd.AddCommand(NewExecCommand(opts))

	return cmd
}

// configureLogging routes diagnostics to stderr. Verbosity flags only
// affect diagnostic output, never control flow.
func configureLogging(opts *RootOptions) {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelInfo
	}
	if opts.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// applyConfigFile merges the optional config file into the options.
// Flags win over file values, which win over built-in defaults.
func applyConfigFile(cmd *cobra.Command, opts *RootOptions) error {
	path := opts.Config
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			slog.Debug("no config dir available", "error", err)
			return nil
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if opts.Database == "" && cfg.Database != "" {
		opts.Database = cfg.Database
	}
	if !cmd.Root().PersistentFlags().Changed("format") && cfg.Format != "" {
		if !isValidFormat(cfg.Format) {
			return fmt.Errorf("invalid format %q in config %s: must be one of %v", cfg.Format, path, ValidFormats)
		}
		opts.Format = cfg.Format
	}
	return nil
}

// openStore resolves the store path and opens the database, creating
// it (and the conventional data directory) when absent. The caller
// owns the returned store and must Close it.
func openStore(opts *RootOptions) (*store.Store, error) {
	path := opts.Database
	if path == "" {
		var err error
		path, err = config.DefaultDatabasePath()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to resolve data directory", err)
		}
	}

	slog.Info("opening database", "path", path)
	st, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}

// commandContext returns the command's context, falling back to
// context.Background when the command was not run through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
