package domain

import (
	"fmt"
	"time"
)

// PlanRequest carries everything the synthesis engine needs to build a plan.
// It is transient: constructed per call, never stored as-is.
type PlanRequest struct {
	Topic           string
	Field           FieldOfStudy
	Description     string
	StartDate       time.Time // zero value means "today"
	Deadline        time.Time
	DailyHours      float64
	WorkDaysPerWeek int
	FocusMinutes    int
	Procrastination ProcrastinationLevel
}

// Normalize fills defaults: a zero start date becomes today (date part of
// now), unknown fields become general, and an unrecognized procrastination
// level becomes medium.
func (r *PlanRequest) Normalize(now time.Time) {
	if r.StartDate.IsZero() {
		r.StartDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if !ValidFields[string(r.Field)] {
		r.Field = FieldGeneral
	}
	if !ValidProcrastinationLevels[string(r.Procrastination)] {
		r.Procrastination = ProcrastinationMedium
	}
	if r.FocusMinutes <= 0 {
		r.FocusMinutes = 90
	}
}

// Validate checks the request invariants that cannot be defaulted away.
// The deadline check is deliberately not here: a non-positive horizon is
// the engine's fatal error and is reported with its own sentinel.
func (r *PlanRequest) Validate() error {
	if r.DailyHours <= 0 {
		return fmt.Errorf("daily hours must be positive, got %g", r.DailyHours)
	}
	if r.WorkDaysPerWeek < 1 || r.WorkDaysPerWeek > 7 {
		return fmt.Errorf("work days per week must be 1-7, got %d", r.WorkDaysPerWeek)
	}
	return nil
}
