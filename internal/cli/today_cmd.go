package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mouazan/thesisflow/internal/cli/formatter"
	"github.com/mouazan/thesisflow/internal/domain"
)

func newTodayCmd(app *App) *cobra.Command {
	var (
		dateStr string
		insight bool
	)

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the tasks scheduled for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			var day time.Time
			if dateStr != "" {
				parsed, err := time.ParseInLocation(domain.DateLayout, dateStr, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid --date %q: use YYYY-MM-DD", dateStr)
				}
				day = parsed
			}

			res, err := app.Planning.Today(context.Background(), day, insight)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatToday(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Show a specific day YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&insight, "insight", false, "Include a short motivational insight")

	return cmd
}
