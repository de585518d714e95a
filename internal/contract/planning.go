package contract

import (
	"time"

	"github.com/mouazan/thesisflow/internal/domain"
)

// CreatePlanRequest is the questionnaire result handed to the planning
// service. Dates are calendar dates; a zero StartDate means today.
type CreatePlanRequest struct {
	Topic           string
	Field           domain.FieldOfStudy
	Description     string
	StartDate       time.Time
	Deadline        time.Time
	DailyHours      float64
	WorkDaysPerWeek int
	FocusMinutes    int
	Procrastination domain.ProcrastinationLevel
}

// PlanResult is the outcome of plan creation or replanning.
type PlanResult struct {
	Project       *domain.Project
	Plan          *domain.Plan
	UsedFallback  bool
	FailureReason string

	// Capacity context for display.
	TotalDays       int
	WorkingDays     int
	ProductiveHours float64

	// AdjustmentsMade is populated by replans that came back from the
	// generator; empty on the fallback path.
	AdjustmentsMade []string
}

// TodayTask is one scheduled task in the today view.
type TodayTask struct {
	TaskID         string
	Title          string
	Description    string
	PhaseName      string
	EstimatedHours float64
	Priority       int
	DueDate        *time.Time
	Deliverable    string
	Completed      bool
}

// TodayResult lists the tasks assigned to one calendar day.
type TodayResult struct {
	Date       time.Time
	Tasks      []TodayTask
	TotalHours float64
	Insight    string
}
