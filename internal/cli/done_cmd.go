package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouazan/thesisflow/internal/cli/formatter"
)

func newDoneCmd(app *App) *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed. The task ID is shown in the today view;
a unique prefix is enough.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Planning.CompleteTask(context.Background(), args[0], hours); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Task %s completed.\n",
				formatter.StyleGreen.Render("✓"), args[0])
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "Actual hours spent")

	return cmd
}
