package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouazan/thesisflow/internal/cli/formatter"
	"github.com/mouazan/thesisflow/internal/contract"
)

func newReplanCmd(app *App) *cobra.Command {
	var (
		reason     string
		dailyHours string
		workDays   string
		deadline   string
	)

	cmd := &cobra.Command{
		Use:   "replan",
		Short: "Rebuild the schedule for the active thesis",
		Long: `Rebuild the remaining schedule from today. The reason and any
changed constraints are fed back into synthesis so the new timeline
reflects what actually happened.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			constraints := map[string]string{}
			if cmd.Flags().Changed("daily-hours") {
				constraints["daily_hours"] = dailyHours
			}
			if cmd.Flags().Changed("work-days") {
				constraints["work_days_per_week"] = workDays
			}
			if cmd.Flags().Changed("deadline") {
				constraints["deadline"] = deadline
			}

			value, err := runWithSpinner(app, "Replanning...", func() (any, error) {
				return app.Planning.Replan(context.Background(), reason, constraints)
			})
			if err != nil {
				return err
			}

			res := value.(*contract.PlanResult)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Why the plan needs adjusting (required)")
	cmd.Flags().StringVar(&dailyHours, "daily-hours", "", "New hours per working day")
	cmd.Flags().StringVar(&workDays, "work-days", "", "New working days per week")
	cmd.Flags().StringVar(&deadline, "deadline", "", "New deadline YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}
