package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/habits/internal/habit"
	"github.com/roach88/habits/internal/store"
)

// NewAliasCommand creates the alias command.
func NewAliasCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias <habit> <name>",
		Short: "Add an alternate name for a habit",
		Long: `Map an alternate lookup name onto a habit. Alias names are unique
across all habits and can be used anywhere a title is accepted.

Example:
  habits alias read books`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlias(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runAlias(opts *RootOptions, habitName, alias string, cmd *cobra.Command) error {
	if !habit.ValidTitle(alias) {
		return NewExitError(ExitFailure, "alias name must be non-empty")
	}

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

	// Resolve so an alias can be added via another alias, and so a
	// missing habit fails here rather than as a constraint violation.
	title, err := st.Resolve(ctx, habitName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewExitError(ExitFailure, fmt.Sprintf("no habit or alias named %q", habitName))
		}
		return WrapExitError(ExitFailure, "failed to resolve habit", err)
	}

	if err := st.InsertAlias(ctx, title, alias); err != nil {
		if store.IsDuplicate(err) {
			return WrapExitError(ExitFailure, fmt.Sprintf("alias %q already exists", habit.NormalizeTitle(alias)), err)
		}
		return WrapExitError(ExitFailure, "failed to add alias", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return formatter.Success(habit.Alias{Habit: title, Name: habit.NormalizeTitle(alias)})
	}
	return formatter.Success(fmt.Sprintf("Added alias %q for %q.", habit.NormalizeTitle(alias), title))
}
