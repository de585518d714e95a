package planner

import (
	"fmt"
	"math"
	"time"
)

// EfficiencyFactor discounts scheduled hours to productive hours. Not every
// hour at the desk moves the thesis forward.
const EfficiencyFactor = 0.8

// Horizon is the working-day calendar between a start date and a deadline,
// with the aggregate hour budget derived from it.
type Horizon struct {
	Start       time.Time
	Deadline    time.Time
	TotalDays   int
	WorkingDays []time.Time

	// ProductiveHours = working days x daily hours x EfficiencyFactor.
	ProductiveHours float64
}

// BuildHorizon computes the working-day calendar for a request window.
// Active weekdays are the first workDaysPerWeek slots in Monday-first
// order; at six or more days per week every day except Sunday is active.
// Returns ErrInvalidDeadline when the deadline is not after the start.
func BuildHorizon(start, deadline time.Time, workDaysPerWeek int, dailyHours float64) (*Horizon, error) {
	start = dateOnly(start)
	deadline = dateOnly(deadline)

	totalDays := int(deadline.Sub(start).Hours() / 24)
	if totalDays <= 0 {
		return nil, fmt.Errorf("%w: start %s, deadline %s",
			ErrInvalidDeadline, start.Format("2006-01-02"), deadline.Format("2006-01-02"))
	}

	var working []time.Time
	for d := start; !d.After(deadline); d = d.AddDate(0, 0, 1) {
		if isWorkingDay(d, workDaysPerWeek) {
			working = append(working, d)
		}
	}

	return &Horizon{
		Start:           start,
		Deadline:        deadline,
		TotalDays:       totalDays,
		WorkingDays:     working,
		ProductiveHours: math.Round(float64(len(working))*dailyHours*EfficiencyFactor*100) / 100,
	}, nil
}

// LastWorkingDay returns the final date in the calendar, or the zero time
// when no day qualifies.
func (h *Horizon) LastWorkingDay() time.Time {
	if len(h.WorkingDays) == 0 {
		return time.Time{}
	}
	return h.WorkingDays[len(h.WorkingDays)-1]
}

func isWorkingDay(d time.Time, workDaysPerWeek int) bool {
	// Monday-first index: Mon=0 .. Sun=6.
	idx := (int(d.Weekday()) + 6) % 7
	if workDaysPerWeek >= 6 {
		return idx < 6 // everything except Sunday
	}
	return idx < workDaysPerWeek
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
