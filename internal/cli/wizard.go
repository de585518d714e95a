package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouazan/thesisflow/internal/cli/formatter"
	"github.com/mouazan/thesisflow/internal/contract"
	"github.com/mouazan/thesisflow/internal/domain"
)

// thesisHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func thesisHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runQuestionnaire collects a CreatePlanRequest interactively.
func runQuestionnaire() (contract.CreatePlanRequest, error) {
	var (
		topic           string
		field           string
		description     string
		deadlineStr     string
		dailyHoursStr   = "5"
		workDaysStr     = "5"
		procrastination = string(domain.ProcrastinationMedium)
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Thesis topic").
				Placeholder("e.g. Anomaly detection in time series").
				Value(&topic).
				Validate(validateRequired("topic")),
			huh.NewSelect[string]().
				Title("Field of study").
				Options(
					huh.NewOption("Computer Science", string(domain.FieldComputerScience)),
					huh.NewOption("Psychology", string(domain.FieldPsychology)),
					huh.NewOption("Engineering", string(domain.FieldEngineering)),
					huh.NewOption("General", string(domain.FieldGeneral)),
				).
				Value(&field),
			huh.NewText().
				Title("Short description").
				Placeholder("Optional: scope, methods, supervisor expectations").
				Value(&description),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Value(&deadlineStr).
				Validate(validateDate),
			huh.NewInput().
				Title("Hours per working day").
				Value(&dailyHoursStr).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Working days per week").
				Value(&workDaysStr).
				Validate(validateWorkDays),
			huh.NewSelect[string]().
				Title("How badly do you procrastinate?").
				Options(
					huh.NewOption("Barely (low)", string(domain.ProcrastinationLow)),
					huh.NewOption("Somewhat (medium)", string(domain.ProcrastinationMedium)),
					huh.NewOption("Heavily (high)", string(domain.ProcrastinationHigh)),
				).
				Value(&procrastination),
		),
	).WithTheme(thesisHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return contract.CreatePlanRequest{}, err
	}

	deadline, err := time.ParseInLocation(domain.DateLayout, deadlineStr, time.UTC)
	if err != nil {
		return contract.CreatePlanRequest{}, fmt.Errorf("parsing deadline: %w", err)
	}
	dailyHours, _ := strconv.ParseFloat(dailyHoursStr, 64)
	workDays, _ := strconv.Atoi(workDaysStr)

	return contract.CreatePlanRequest{
		Topic:           topic,
		Field:           domain.FieldOfStudy(field),
		Description:     description,
		Deadline:        deadline,
		DailyHours:      dailyHours,
		WorkDaysPerWeek: workDays,
		Procrastination: domain.ProcrastinationLevel(procrastination),
	}, nil
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.ParseInLocation(domain.DateLayout, s, time.UTC); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateWorkDays(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 7 {
		return fmt.Errorf("enter a number from 1 to 7")
	}
	return nil
}
