package service

import (
	"context"
	"errors"
	"time"

	"github.com/mouazan/thesisflow/internal/contract"
	"github.com/mouazan/thesisflow/internal/domain"
	"github.com/mouazan/thesisflow/internal/planner"
	"github.com/mouazan/thesisflow/internal/repository"
)

type statusService struct {
	projects repository.ProjectRepo
	plans    repository.PlanRepo
	now      func() time.Time
}

// NewStatusService builds the progress reporter. now supplies "today";
// nil uses the wall clock.
func NewStatusService(projects repository.ProjectRepo, plans repository.PlanRepo, now func() time.Time) StatusService {
	if now == nil {
		now = time.Now
	}
	return &statusService{projects: projects, plans: plans, now: now}
}

func (s *statusService) Status(ctx context.Context) (*contract.StatusResult, error) {
	project, err := s.projects.GetActive(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, contract.NewPlanError(contract.CodeNoPlan, "no active plan; run 'thesisflow new' first")
	}
	if err != nil {
		return nil, contract.NewPlanError(contract.CodeStorage, "loading project: %v", err)
	}

	plan, err := s.plans.Get(ctx, project.ID)
	if err != nil {
		return nil, contract.NewPlanError(contract.CodeStorage, "loading plan: %v", err)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	result := &contract.StatusResult{Project: project}

	for pi := range plan.Phases {
		for ti := range plan.Phases[pi].Tasks {
			t := &plan.Phases[pi].Tasks[ti]
			result.TotalTasks++
			result.TotalHours += t.EstimatedHours
			if t.Completed {
				result.CompletedTasks++
				result.CompletedHours += t.EstimatedHours
			}
		}
	}
	if result.TotalTasks > 0 {
		result.ProgressPct = float64(result.CompletedTasks) / float64(result.TotalTasks) * 100
	}

	for _, m := range plan.Milestones {
		view := contract.MilestoneView{
			MilestoneID: m.ID,
			Name:        m.Name,
			TargetDate:  m.TargetDate,
			Completed:   m.Completed,
			DaysLeft:    int(m.TargetDate.Sub(today).Hours() / 24),
		}
		result.Milestones = append(result.Milestones, view)
	}
	for i := range result.Milestones {
		v := &result.Milestones[i]
		if !v.Completed && v.DaysLeft >= 0 {
			result.NextMilestone = v
			break
		}
	}

	// Remaining capacity. A deadline already behind us leaves zeros.
	if horizon, err := planner.BuildHorizon(today, project.Deadline, project.WorkDaysPerWeek, project.DailyHours); err == nil {
		result.DaysRemaining = horizon.TotalDays
		result.WorkingDaysRemaining = len(horizon.WorkingDays)
		remaining := result.TotalHours - result.CompletedHours
		if result.WorkingDaysRemaining > 0 {
			result.RequiredDailyHours = remaining / float64(result.WorkingDaysRemaining)
		}
	}

	result.FinalDayHours, result.OverloadedFinalDay = finalDayLoad(plan, project.DailyHours)

	return result, nil
}

// finalDayLoad sums the hours on the latest assigned day and reports
// whether the overflow sink is holding more than one day's budget.
func finalDayLoad(plan *domain.Plan, dailyHours float64) (float64, bool) {
	var lastKey string
	for key := range plan.Assignments {
		if key > lastKey {
			lastKey = key
		}
	}
	if lastKey == "" {
		return 0, false
	}

	total := 0.0
	for _, ref := range plan.Assignments[lastKey] {
		if t := plan.TaskAt(ref); t != nil {
			total += t.EstimatedHours
		}
	}
	return total, total > dailyHours
}
