package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mouazan/thesisflow/internal/contract"
)

func TestFormatTodayEmpty(t *testing.T) {
	out := FormatToday(&contract.TodayResult{Date: day(2025, 1, 4)})
	assert.Contains(t, out, "Nothing scheduled")
}

func TestFormatTodayTasks(t *testing.T) {
	due := day(2025, 1, 10)
	res := &contract.TodayResult{
		Date: day(2025, 1, 2),
		Tasks: []contract.TodayTask{
			{
				TaskID:         "0a1b2c3d-0000-0000-0000-000000000000",
				Title:          "Collect papers",
				PhaseName:      "Literature Review",
				EstimatedHours: 2.5,
				Priority:       1,
				DueDate:        &due,
			},
			{
				TaskID:         "9f8e7d6c-0000-0000-0000-000000000000",
				Title:          "Annotate papers",
				PhaseName:      "Literature Review",
				EstimatedHours: 2,
				Priority:       3,
				Completed:      true,
			},
		},
		TotalHours: 4.5,
		Insight:    "Momentum beats motivation.",
	}

	out := FormatToday(res)
	assert.Contains(t, out, "Collect papers")
	assert.Contains(t, out, "0a1b2c3d")
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "Total: 4.5h")
	assert.Contains(t, out, "Momentum beats motivation.")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0a1b2c3d", shortID("0a1b2c3d-0000-0000-0000-000000000000"))
	assert.Equal(t, "plain", shortID("plain"))
}
