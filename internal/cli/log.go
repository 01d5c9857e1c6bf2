package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/habits/internal/habit"
	"github.com/roach88/habits/internal/store"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions

	// Now allows overriding the timestamp source (for testing).
	// If nil, defaults to time.Now.
	Now func() time.Time
}

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log <habit>",
		Short: "Log an occurrence of a habit",
		Long: `Log a timestamped occurrence record against a habit.

The argument may be the habit's title or one of its aliases; titles win
when both exist.

Example:
  habits log read
  habits log books`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(opts, args[0], cmd)
		},
	}

	return cmd
}

func runLog(opts *LogOptions, name string, cmd *cobra.Command) error {
	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := commandContext(cmd)

	title, err := st.Resolve(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewExitError(ExitFailure, fmt.Sprintf("no habit or alias named %q", name))
		}
		return WrapExitError(ExitFailure, "failed to resolve habit", err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rec := habit.NewRecord(title, now())
	slog.Debug("logging occurrence", "habit", title, "id", rec.ID, "added", rec.Added)

	if err := st.InsertRecord(ctx, rec); err != nil {
		if store.IsBusy(err) {
			return WrapExitError(ExitFailure, "store is locked by another process, try again", err)
		}
		return WrapExitError(ExitFailure, "failed to log occurrence", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return formatter.Success(rec)
	}
	return formatter.Success(fmt.Sprintf("Logged %q at %s.", title, rec.Added.Format(time.RFC3339)))
}
