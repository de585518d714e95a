package planner

import (
	"sort"
	"time"

	"github.com/mouazan/thesisflow/internal/domain"
)

// AssignDays distributes every task in the plan across the working-day
// calendar. Tasks are flattened and stably sorted by due date ascending
// (tasks without a due date sort last), then priority ascending; ties keep
// phase/task order. A greedy cursor walks the calendar filling each day up
// to the daily capacity. Once the calendar is exhausted, every remaining
// task lands on the last working day: capacity is a soft bound past the
// horizon, never a reason to drop work.
//
// The plan's Assignments and TodaysTasks fields are rebuilt in place.
func AssignDays(plan *domain.Plan, horizon *Horizon, dailyCapacity float64, today time.Time) {
	plan.Assignments = make(domain.DayAssignment)
	plan.TodaysTasks = nil

	refs := flattenTasks(plan)
	if len(refs) == 0 || len(horizon.WorkingDays) == 0 {
		return
	}
	sortTaskRefs(plan, refs)

	days := horizon.WorkingDays
	cursor := 0
	hoursUsed := 0.0

	for _, ref := range refs {
		task := plan.TaskAt(ref)
		for cursor < len(days)-1 && hoursUsed+task.EstimatedHours > dailyCapacity {
			cursor++
			hoursUsed = 0
		}

		day := days[cursor]
		task.AssignedDate = &day
		hoursUsed += task.EstimatedHours

		key := day.Format(domain.DateLayout)
		plan.Assignments[key] = append(plan.Assignments[key], ref)
	}

	todayKey := dateOnly(today).Format(domain.DateLayout)
	plan.TodaysTasks = plan.Assignments[todayKey]
}

func flattenTasks(plan *domain.Plan) []domain.TaskRef {
	var refs []domain.TaskRef
	for pi := range plan.Phases {
		for ti := range plan.Phases[pi].Tasks {
			refs = append(refs, domain.TaskRef{Phase: pi, Task: ti})
		}
	}
	return refs
}

// sortTaskRefs orders refs by (due date asc, priority asc), stable. Nil due
// dates sort after every dated task.
func sortTaskRefs(plan *domain.Plan, refs []domain.TaskRef) {
	sort.SliceStable(refs, func(i, j int) bool {
		a, b := plan.TaskAt(refs[i]), plan.TaskAt(refs[j])

		switch {
		case a.DueDate == nil && b.DueDate == nil:
			// fall through to priority
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}

		return a.Priority < b.Priority
	})
}
