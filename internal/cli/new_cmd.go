package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mouazan/thesisflow/internal/cli/formatter"
	"github.com/mouazan/thesisflow/internal/contract"
	"github.com/mouazan/thesisflow/internal/domain"
)

func newNewCmd(app *App) *cobra.Command {
	var (
		topic           string
		field           string
		description     string
		startStr        string
		deadlineStr     string
		dailyHours      float64
		workDays        int
		focusMinutes    int
		procrastination string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a thesis plan",
		Long: `Create a thesis plan from a questionnaire. On a terminal the
questionnaire runs interactively unless --topic is given; otherwise
--topic and --deadline are required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req contract.CreatePlanRequest

			if app.interactive() && topic == "" {
				answers, err := runQuestionnaire()
				if err != nil {
					return err
				}
				req = answers
			} else {
				if topic == "" {
					return fmt.Errorf("--topic is required (or run on a terminal for the questionnaire)")
				}
				if deadlineStr == "" {
					return fmt.Errorf("--deadline is required")
				}
				deadline, err := time.ParseInLocation(domain.DateLayout, deadlineStr, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid --deadline %q: use YYYY-MM-DD", deadlineStr)
				}
				req = contract.CreatePlanRequest{
					Topic:           topic,
					Field:           domain.FieldOfStudy(field),
					Description:     description,
					Deadline:        deadline,
					DailyHours:      dailyHours,
					WorkDaysPerWeek: workDays,
					FocusMinutes:    focusMinutes,
					Procrastination: domain.ProcrastinationLevel(procrastination),
				}
				if startStr != "" {
					start, err := time.ParseInLocation(domain.DateLayout, startStr, time.UTC)
					if err != nil {
						return fmt.Errorf("invalid --start %q: use YYYY-MM-DD", startStr)
					}
					req.StartDate = start
				}
			}

			value, err := runWithSpinner(app, "Synthesizing your plan...", func() (any, error) {
				return app.Planning.Create(context.Background(), req)
			})
			if err != nil {
				return err
			}

			res := value.(*contract.PlanResult)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Thesis topic")
	cmd.Flags().StringVar(&field, "field", string(domain.FieldGeneral), "Field of study (computer_science|psychology|engineering|general)")
	cmd.Flags().StringVar(&description, "description", "", "Short thesis description")
	cmd.Flags().StringVar(&startStr, "start", "", "Start date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&deadlineStr, "deadline", "", "Submission deadline YYYY-MM-DD")
	cmd.Flags().Float64Var(&dailyHours, "daily-hours", 5, "Hours available per working day")
	cmd.Flags().IntVar(&workDays, "work-days", 5, "Working days per week (1-7)")
	cmd.Flags().IntVar(&focusMinutes, "focus-minutes", 90, "Typical deep-focus session length")
	cmd.Flags().StringVar(&procrastination, "procrastination", string(domain.ProcrastinationMedium), "Procrastination level (low|medium|high)")

	return cmd
}
