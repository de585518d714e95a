package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mouazan/thesisflow/internal/contract"
	"github.com/mouazan/thesisflow/internal/domain"
)

func sampleStatus() *contract.StatusResult {
	ms := contract.MilestoneView{
		MilestoneID: "m1",
		Name:        "Literature review complete",
		TargetDate:  day(2025, 2, 15),
		DaysLeft:    44,
	}
	return &contract.StatusResult{
		Project: &domain.Project{
			Topic:      "Distributed consensus in practice",
			Deadline:   day(2025, 6, 1),
			DailyHours: 5,
		},
		TotalTasks:           20,
		CompletedTasks:       5,
		TotalHours:           100,
		CompletedHours:       25,
		ProgressPct:          25,
		DaysRemaining:        150,
		WorkingDaysRemaining: 107,
		RequiredDailyHours:   0.7,
		Milestones:           []contract.MilestoneView{ms},
		NextMilestone:        &ms,
	}
}

func TestFormatStatus(t *testing.T) {
	out := FormatStatus(sampleStatus(), day(2025, 1, 2))

	assert.Contains(t, out, "Distributed consensus in practice")
	assert.Contains(t, out, "5 of 20 done")
	assert.Contains(t, out, "150 days remain")
	assert.Contains(t, out, "Literature review complete")
	assert.Contains(t, out, "next")
	assert.NotContains(t, out, "WARNING")
}

func TestFormatStatusOverloadWarning(t *testing.T) {
	res := sampleStatus()
	res.OverloadedFinalDay = true
	res.FinalDayHours = 18

	out := FormatStatus(res, day(2025, 1, 2))
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "18h")
}
