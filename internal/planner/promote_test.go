package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouazan/thesisflow/internal/domain"
)

func validPhase(name string) map[string]any {
	return map[string]any{
		"name":            name,
		"description":     "desc",
		"start_date":      "2025-02-01",
		"end_date":        "2025-02-28",
		"estimated_hours": float64(40),
	}
}

func TestPromote_KeepsCompletePhases(t *testing.T) {
	candidate := map[string]any{
		"phases": []any{
			validPhase("Literature Review"),
			validPhase("Writing"),
		},
		"milestones": []any{
			map[string]any{"name": "Draft done", "target_date": "2025-02-20"},
		},
	}

	phases, milestones, err := Promote(candidate)
	require.NoError(t, err)
	require.Len(t, phases, 2)
	assert.Equal(t, "Literature Review", phases[0].Name)
	assert.Equal(t, 40, phases[0].EstimatedHours)
	require.Len(t, milestones, 1)
	assert.Equal(t, "Draft done", milestones[0].Name)
}

func TestPromote_DropsIncompletePhases(t *testing.T) {
	missingEnd := validPhase("No end")
	delete(missingEnd, "end_date")

	badDate := validPhase("Bad date")
	badDate["start_date"] = "February 1st"

	inverted := validPhase("Inverted")
	inverted["start_date"] = "2025-03-01"
	inverted["end_date"] = "2025-02-01"

	candidate := map[string]any{
		"phases": []any{missingEnd, badDate, inverted, validPhase("Kept")},
	}

	phases, _, err := Promote(candidate)
	require.NoError(t, err)
	require.Len(t, phases, 1)
	assert.Equal(t, "Kept", phases[0].Name)
}

func TestPromote_EmptyPhaseListFails(t *testing.T) {
	_, _, err := Promote(map[string]any{"phases": []any{}})
	assert.ErrorIs(t, err, ErrEmptyPlan)

	incomplete := map[string]any{
		"phases": []any{map[string]any{"name": "only a name"}},
	}
	_, _, err = Promote(incomplete)
	assert.ErrorIs(t, err, ErrEmptyPlan)
}

func TestPromote_DropsIncompleteMilestones(t *testing.T) {
	candidate := map[string]any{
		"phases": []any{validPhase("P")},
		"milestones": []any{
			map[string]any{"name": "no target"},
			map[string]any{"target_date": "2025-02-01"},
			map[string]any{"name": "ok", "target_date": "2025-02-01", "deliverables": []any{"chapter", ""}},
		},
	}

	_, milestones, err := Promote(candidate)
	require.NoError(t, err)
	require.Len(t, milestones, 1)
	assert.Equal(t, "ok", milestones[0].Name)
	assert.Equal(t, []string{"chapter"}, milestones[0].Deliverables)
}

func TestPromote_MalformedTasksAreTolerated(t *testing.T) {
	phase := validPhase("P")
	phase["tasks"] = []any{
		map[string]any{}, // nothing at all
		map[string]any{
			"title":           "Real task",
			"estimated_hours": 2.5,
			"priority":        float64(9), // clamped to 5
			"due_date":        "2025-02-10",
		},
		map[string]any{"title": "No hours", "priority": float64(0)}, // clamped to 1
	}
	candidate := map[string]any{"phases": []any{phase}}

	phases, _, err := Promote(candidate)
	require.NoError(t, err)
	require.Len(t, phases[0].Tasks, 3)

	blank := phases[0].Tasks[0]
	assert.Equal(t, "Untitled task", blank.Title)
	assert.Equal(t, 3, blank.Priority)
	assert.Zero(t, blank.EstimatedHours)
	assert.Nil(t, blank.DueDate)

	real := phases[0].Tasks[1]
	assert.Equal(t, 2.5, real.EstimatedHours)
	assert.Equal(t, 5, real.Priority)
	require.NotNil(t, real.DueDate)
	assert.Equal(t, "2025-02-10", real.DueDate.Format(domain.DateLayout))

	assert.Equal(t, 1, phases[0].Tasks[2].Priority)
}
