package planner

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouazan/thesisflow/internal/domain"
)

// TestAssignDays_Invariants property-tests day assignment over random
// plans: capacity holds on every day except the overflow sink, every task
// is assigned exactly once, and earlier due dates never land on later days.
func TestAssignDays_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	start := date(2025, 4, 1)

	for trial := 0; trial < 200; trial++ {
		horizonDays := rng.Intn(40) + 2 // 2-41 days
		deadline := start.AddDate(0, 0, horizonDays)
		wdpw := rng.Intn(7) + 1
		capacity := float64(rng.Intn(6)+2) + 0.5*float64(rng.Intn(2)) // 2-7.5h

		h, err := BuildHorizon(start, deadline, wdpw, capacity)
		require.NoError(t, err)
		if len(h.WorkingDays) == 0 {
			continue
		}

		numPhases := rng.Intn(3) + 1
		plan := &domain.Plan{}
		for p := 0; p < numPhases; p++ {
			phase := domain.Phase{Name: "phase"}
			numTasks := rng.Intn(12) + 1
			for i := 0; i < numTasks; i++ {
				task := domain.Task{
					Title:          "task",
					EstimatedHours: 0.5 + float64(rng.Intn(8))*0.5, // 0.5-4h
					Priority:       rng.Intn(5) + 1,
				}
				if rng.Intn(4) != 0 { // a quarter of tasks have no due date
					due := start.AddDate(0, 0, rng.Intn(horizonDays+1))
					task.DueDate = &due
				}
				phase.Tasks = append(phase.Tasks, task)
			}
			plan.Phases = append(plan.Phases, phase)
		}

		AssignDays(plan, h, capacity, start)

		lastKey := h.LastWorkingDay().Format(domain.DateLayout)

		// Capacity invariant: every day but the overflow sink stays within
		// the daily budget.
		for key, refs := range plan.Assignments {
			if key == lastKey {
				continue
			}
			total := 0.0
			for _, ref := range refs {
				total += plan.TaskAt(ref).EstimatedHours
			}
			assert.LessOrEqual(t, total, capacity,
				"trial %d: day %s exceeds capacity", trial, key)
		}

		// Coverage invariant: every task appears in exactly one day's
		// assignment.
		seen := make(map[domain.TaskRef]int)
		for _, refs := range plan.Assignments {
			for _, ref := range refs {
				seen[ref]++
			}
		}
		assert.Equal(t, plan.TaskCount(), len(seen),
			"trial %d: task lost or duplicated", trial)
		for ref, count := range seen {
			assert.Equal(t, 1, count, "trial %d: ref %+v assigned %d times", trial, ref, count)
		}

		// Ordering invariant: an earlier due date is never assigned to a
		// later day than a strictly later due date.
		dayOf := func(ref domain.TaskRef) time.Time {
			return *plan.TaskAt(ref).AssignedDate
		}
		var flat []domain.TaskRef
		for _, refs := range plan.Assignments {
			flat = append(flat, refs...)
		}
		for i := 0; i < len(flat); i++ {
			for j := 0; j < len(flat); j++ {
				a, b := plan.TaskAt(flat[i]), plan.TaskAt(flat[j])
				if a.DueDate == nil || b.DueDate == nil {
					continue
				}
				if a.DueDate.Before(*b.DueDate) {
					assert.False(t, dayOf(flat[i]).After(dayOf(flat[j])),
						"trial %d: earlier due date scheduled after later one", trial)
				}
			}
		}
	}
}
