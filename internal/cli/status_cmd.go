package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mouazan/thesisflow/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show progress against the active plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Status.Status(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(res, time.Now()))
			return nil
		},
	}
}
