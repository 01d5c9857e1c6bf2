package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/habits/internal/habit"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all habits",
		Long: `List all tracked habits, sorted by title.

Example:
  habits list
  habits list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	habits, err := st.ListHabits(commandContext(cmd))
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list habits", err)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(habits)
	}

	writeHabitList(cmd.OutOrStdout(), habits)
	return nil
}

// writeHabitList renders habits one per line:
//
//	read: twenty pages before bed [required]
//	smoke [negative]
func writeHabitList(w io.Writer, habits []habit.Habit) {
	if len(habits) == 0 {
		fmt.Fprintln(w, "No habits tracked yet.")
		return
	}

	for _, h := range habits {
		line := h.Title
		if h.Description != "" {
			line += ": " + h.Description
		}
		if flags := habitFlags(h); flags != "" {
			line += " " + flags
		}
		fmt.Fprintln(w, line)
	}
}

func habitFlags(h habit.Habit) string {
	var flags []string
	if h.Required {
		flags = append(flags, "required")
	}
	if h.Negative {
		flags = append(flags, "negative")
	}
	if len(flags) == 0 {
		return ""
	}
	return "[" + strings.Join(flags, ", ") + "]"
}
