package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

// NewRecordsCommand creates the records command.
func NewRecordsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records <habit>",
		Short: "List the logged occurrences of a habit",
		Long: `List all occurrence records for one habit, newest first.

The argument may be the habit's title or one of its aliases.

Example:
  habits records read`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecords(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRecords(opts *RootOptions, name string, cmd *cobra.Command) error {
	st, err := openStore(opts)
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

	records, err := st.ListRecords(ctx, title)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list records", err)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(records)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintf(out, "No records for %q.\n", title)
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(out, "%s  %s\n", rec.Added.Format(time.RFC3339), rec.ID)
	}
	return nil
}
