package service

import (
	"context"
	"time"

	"github.com/mouazan/thesisflow/internal/contract"
)

// PlanningService owns the plan lifecycle: synthesis, replanning, the
// daily view, and completion tracking.
type PlanningService interface {
	Create(ctx context.Context, req contract.CreatePlanRequest) (*contract.PlanResult, error)
	Replan(ctx context.Context, reason string, constraints map[string]string) (*contract.PlanResult, error)
	Today(ctx context.Context, day time.Time, withInsight bool) (*contract.TodayResult, error)
	CompleteTask(ctx context.Context, taskID string, actualHours float64) error
	CompleteMilestone(ctx context.Context, milestoneID string) error
}

// StatusService reports progress against the stored plan.
type StatusService interface {
	Status(ctx context.Context) (*contract.StatusResult, error)
}
