package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouazan/thesisflow/internal/domain"
)

func horizonFor(t *testing.T, start, deadline time.Time, wdpw int, hours float64) *Horizon {
	t.Helper()
	h, err := BuildHorizon(start, deadline, wdpw, hours)
	require.NoError(t, err)
	return h
}

func planWithTasks(tasks ...domain.Task) *domain.Plan {
	return &domain.Plan{Phases: []domain.Phase{{Name: "P", Tasks: tasks}}}
}

func TestAssignDays_OverflowPinsToLastDay(t *testing.T) {
	// 10 tasks of 2h, 5h/day capacity, 3 working days: days one and two
	// take two tasks each, the last day absorbs the remaining six.
	h := horizonFor(t, date(2025, 6, 2), date(2025, 6, 4), 7, 5) // Mon-Wed
	require.Len(t, h.WorkingDays, 3)

	var tasks []domain.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, domain.Task{Title: "t", EstimatedHours: 2, Priority: 3})
	}
	plan := planWithTasks(tasks...)

	AssignDays(plan, h, 5, date(2025, 6, 2))

	assert.Len(t, plan.Assignments["2025-06-02"], 2)
	assert.Len(t, plan.Assignments["2025-06-03"], 2)
	assert.Len(t, plan.Assignments["2025-06-04"], 6)
}

func TestAssignDays_SortsByDueDateThenPriority(t *testing.T) {
	d1 := date(2025, 6, 10)
	d2 := date(2025, 6, 20)
	plan := planWithTasks(
		domain.Task{Title: "late-urgent", EstimatedHours: 1, Priority: 1, DueDate: &d2},
		domain.Task{Title: "no-due", EstimatedHours: 1, Priority: 1},
		domain.Task{Title: "early-relaxed", EstimatedHours: 1, Priority: 4, DueDate: &d1},
		domain.Task{Title: "early-urgent", EstimatedHours: 1, Priority: 1, DueDate: &d1},
	)

	h := horizonFor(t, date(2025, 6, 2), date(2025, 6, 30), 5, 2)
	AssignDays(plan, h, 2, date(2025, 6, 2))

	// Two tasks fit per day; read back assignment order.
	var order []string
	for _, d := range h.WorkingDays {
		for _, ref := range plan.Assignments[d.Format(domain.DateLayout)] {
			order = append(order, plan.TaskAt(ref).Title)
		}
	}
	assert.Equal(t, []string{"early-urgent", "early-relaxed", "late-urgent", "no-due"}, order)
}

func TestAssignDays_SetsAssignedDates(t *testing.T) {
	plan := planWithTasks(
		domain.Task{Title: "a", EstimatedHours: 3, Priority: 1},
		domain.Task{Title: "b", EstimatedHours: 3, Priority: 2},
	)
	h := horizonFor(t, date(2025, 6, 2), date(2025, 6, 6), 5, 4)

	AssignDays(plan, h, 4, date(2025, 6, 2))

	a, b := &plan.Phases[0].Tasks[0], &plan.Phases[0].Tasks[1]
	require.NotNil(t, a.AssignedDate)
	require.NotNil(t, b.AssignedDate)
	assert.Equal(t, date(2025, 6, 2), *a.AssignedDate)
	assert.Equal(t, date(2025, 6, 3), *b.AssignedDate)
}

func TestAssignDays_TodayView(t *testing.T) {
	plan := planWithTasks(
		domain.Task{Title: "a", EstimatedHours: 1, Priority: 1},
		domain.Task{Title: "b", EstimatedHours: 1, Priority: 2},
	)
	h := horizonFor(t, date(2025, 6, 2), date(2025, 6, 6), 5, 4)

	AssignDays(plan, h, 4, date(2025, 6, 2))
	require.Len(t, plan.TodaysTasks, 2)

	// A "today" outside the assignment map yields an empty view.
	AssignDays(plan, h, 4, date(2025, 7, 1))
	assert.Empty(t, plan.TodaysTasks)
}

func TestAssignDays_EmptyPlan(t *testing.T) {
	plan := &domain.Plan{}
	h := horizonFor(t, date(2025, 6, 2), date(2025, 6, 6), 5, 4)

	AssignDays(plan, h, 4, date(2025, 6, 2))
	assert.Empty(t, plan.Assignments)
	assert.Empty(t, plan.TodaysTasks)
}

func TestAssignDays_TaskLargerThanCapacityLandsOnLastDay(t *testing.T) {
	plan := planWithTasks(
		domain.Task{Title: "huge", EstimatedHours: 10, Priority: 1},
		domain.Task{Title: "small", EstimatedHours: 1, Priority: 2},
	)
	h := horizonFor(t, date(2025, 6, 2), date(2025, 6, 4), 7, 4)
	require.Len(t, h.WorkingDays, 3)

	AssignDays(plan, h, 4, date(2025, 6, 2))

	last := h.LastWorkingDay().Format(domain.DateLayout)
	require.Len(t, plan.Assignments[last], 2)
	assert.Equal(t, "huge", plan.TaskAt(plan.Assignments[last][0]).Title)
}
