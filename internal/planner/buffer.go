package planner

import (
	"math"
	"time"

	"github.com/mouazan/thesisflow/internal/domain"
)

// BufferMultiplier returns the hour-inflation factor for a procrastination
// level. Unrecognized levels get the medium factor.
func BufferMultiplier(level domain.ProcrastinationLevel) float64 {
	switch level {
	case domain.ProcrastinationLow:
		return 1.10
	case domain.ProcrastinationHigh:
		return 1.25
	default:
		return 1.15
	}
}

// ApplyBuffer inflates hour estimates and pushes milestone dates out in
// proportion to how far away they are. Phases round to whole hours; tasks
// keep a half-hour floor so nothing shrinks below a schedulable unit.
// Milestone dates never move past the deadline.
func ApplyBuffer(phases []domain.Phase, milestones []domain.Milestone, level domain.ProcrastinationLevel, today, deadline time.Time) {
	m := BufferMultiplier(level)
	today = dateOnly(today)
	deadline = dateOnly(deadline)

	for i := range phases {
		phases[i].EstimatedHours = int(math.Round(float64(phases[i].EstimatedHours) * m))
		for j := range phases[i].Tasks {
			t := &phases[i].Tasks[j]
			t.EstimatedHours = math.Max(0.5, t.EstimatedHours*m)
		}
	}

	for i := range milestones {
		target := dateOnly(milestones[i].TargetDate)
		daysUntil := int(target.Sub(today).Hours() / 24)
		if daysUntil <= 0 {
			continue
		}
		shift := int(math.Round(float64(daysUntil) * (m - 1)))
		shifted := target.AddDate(0, 0, shift)
		if shifted.After(deadline) {
			shifted = deadline
		}
		milestones[i].TargetDate = shifted
	}
}
