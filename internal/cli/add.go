package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/habits/internal/habit"
	"github.com/roach88/habits/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Title       string
	Description string
	Required    bool
	Negative    bool
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a habit",
		Long: `Add a named habit to the tracker.

The title is the habit's unique identifier. Mark habits that must be
done with --required, and habits whose occurrences record an undesired
event with --negative.

Example:
  habits add --title read --description "twenty pages before bed"
  habits add --title smoke --negative`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "habit title (required)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "free-text description")
	cmd.Flags().BoolVar(&opts.Required, "required", false, "habit must be done")
	cmd.Flags().BoolVar(&opts.Negative, "negative", false, "occurrences record an undesired event")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	if !habit.ValidTitle(opts.Title) {
		return NewExitError(ExitFailure, "title must be non-empty")
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	h := habit.Habit{
		Title:       habit.NormalizeTitle(opts.Title),
		Description: opts.Description,
		Required:    opts.Required,
		Negative:    opts.Negative,
	}
	slog.Debug("adding habit", "title", h.Title, "required", h.Required, "negative", h.Negative)

	if err := st.InsertHabit(commandContext(cmd), h); err != nil {
		if store.IsDuplicate(err) {
			return WrapExitError(ExitFailure, fmt.Sprintf("habit %q already exists", h.Title), err)
		}
		return WrapExitError(ExitFailure, "failed to add habit", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return formatter.Success(h)
	}
	return formatter.Success(fmt.Sprintf("Added habit %q.", h.Title))
}
