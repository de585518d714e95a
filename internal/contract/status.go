package contract

import (
	"time"

	"github.com/mouazan/thesisflow/internal/domain"
)

// MilestoneView is a milestone with its remaining distance.
type MilestoneView struct {
	MilestoneID string
	Name        string
	TargetDate  time.Time
	Completed   bool
	DaysLeft    int
}

// StatusResult summarizes progress against the stored plan.
type StatusResult struct {
	Project *domain.Project

	TotalTasks     int
	CompletedTasks int
	TotalHours     float64
	CompletedHours float64
	ProgressPct    float64

	DaysRemaining        int
	WorkingDaysRemaining int
	RequiredDailyHours   float64

	Milestones    []MilestoneView
	NextMilestone *MilestoneView

	// OverloadedFinalDay flags a schedule whose last working day carries
	// more hours than the daily budget (the overflow sink in use).
	OverloadedFinalDay bool
	FinalDayHours      float64
}
