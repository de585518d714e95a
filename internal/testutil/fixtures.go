package testutil

import (
	"time"

	"github.com/mouazan/thesisflow/internal/domain"
)

// Day builds a UTC date without time of day.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Project returns a valid active project with sensible defaults.
func Project() *domain.Project {
	return &domain.Project{
		Topic:           "Adaptive scheduling for thesis work",
		Field:           domain.FieldComputerScience,
		Description:     "A study of deterministic day-level scheduling",
		StartDate:       Day(2025, 1, 1),
		Deadline:        Day(2025, 6, 1),
		DailyHours:      5,
		WorkDaysPerWeek: 5,
		FocusMinutes:    90,
		Procrastination: domain.ProcrastinationMedium,
		Status:          domain.ProjectActive,
	}
}

// Plan returns a small two-phase plan with an assignment for Jan 2 2025.
func Plan() *domain.Plan {
	due := Day(2025, 1, 10)
	assigned := Day(2025, 1, 2)

	plan := &domain.Plan{
		Phases: []domain.Phase{
			{
				Name:           "Literature Review",
				Description:    "Survey prior work",
				StartDate:      Day(2025, 1, 1),
				EndDate:        Day(2025, 2, 1),
				EstimatedHours: 40,
				Tasks: []domain.Task{
					{Title: "Collect papers", EstimatedHours: 4, Priority: 1, DueDate: &due, AssignedDate: &assigned},
					{Title: "Annotate papers", EstimatedHours: 3, Priority: 2, DueDate: &due, AssignedDate: &assigned},
				},
			},
			{
				Name:           "Writing",
				StartDate:      Day(2025, 2, 1),
				EndDate:        Day(2025, 6, 1),
				EstimatedHours: 80,
				Tasks: []domain.Task{
					{Title: "Draft introduction", EstimatedHours: 6, Priority: 2},
				},
			},
		},
		Milestones: []domain.Milestone{
			{
				Name:         "Review complete",
				TargetDate:   Day(2025, 2, 1),
				Deliverables: []string{"Literature review chapter"},
			},
		},
		Assignments: domain.DayAssignment{
			"2025-01-02": {
				{Phase: 0, Task: 0},
				{Phase: 0, Task: 1},
			},
		},
	}
	return plan
}
