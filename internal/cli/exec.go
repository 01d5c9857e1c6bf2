package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// NewExecCommand creates the exec command.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <statement>",
		Short: "Run a raw SQL statement against the store",
		Long: `Run an arbitrary SQL statement and print any result rows.

This is an escape hatch for direct store manipulation. The statement is
executed verbatim with no parameter binding: never feed it untrusted
input.

Example:
  habits exec "SELECT COUNT(*) FROM habits"
  habits exec "DELETE FROM habits WHERE title = 'smoke'"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

// execResult is the JSON payload for raw query output.
type execResult struct {
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows"`
}

func runExec(opts *RootOptions, statement string, cmd *cobra.Command) error {
	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	slog.Debug("executing raw statement", "statement", statement)

	columns, rows, err := st.Exec(commandContext(cmd), statement)
	if err != nil {
		return WrapExitError(ExitFailure, "statement failed", err)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		if rows == nil {
			rows = [][]string{}
		}
		return formatter.Success(execResult{Columns: columns, Rows: rows})
	}

	out := cmd.OutOrStdout()
	for _, row := range rows {
		fmt.Fprintln(out, strings.Join(row, "\t"))
	}
	return nil
}
