package planner

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mouazan/thesisflow/internal/domain"
	"github.com/mouazan/thesisflow/internal/llm"
)

// Failure reasons recorded on a plan that degraded to the fallback path.
const (
	ReasonGenerationDisabled    = "generation_disabled"
	ReasonGenerationUnavailable = "generation_unavailable"
	ReasonGenerationTimeout     = "generation_timeout"
	ReasonGenerationFailed      = "generation_failed"
	ReasonNoStructureFound      = "no_structure_found"
	ReasonMalformedStructure    = "malformed_structure"
	ReasonEmptyPlan             = "empty_plan_after_validation"
)

// FallbackInsight is returned when the insight generation path is
// unavailable.
const FallbackInsight = "Keep up the great work! Every step forward brings you closer to your thesis completion."

// Result is the output of a synthesis or replan call. Plan is always
// populated; UsedFallback and FailureReason record whether and why the
// deterministic path was taken.
type Result struct {
	Plan          *domain.Plan
	Horizon       *Horizon
	UsedFallback  bool
	FailureReason string

	// AdjustmentsMade lists the changes the generator reported during a
	// replan. Empty for initial synthesis and for the fallback path.
	AdjustmentsMade []string
}

// Engine composes the synthesis pipeline: capacity calculation, timeline
// generation, repair-and-parse, validation, buffer adjustment, and day
// assignment. Every call is a pure function of its inputs plus the one
// external generation call; the engine holds no state between calls.
//
// A nil client disables generation entirely: every plan takes the
// deterministic fallback path.
type Engine struct {
	client llm.Client
	now    func() time.Time
}

// NewEngine creates an Engine. now supplies "today" for all date math so
// calls stay deterministic under test; a nil now uses the wall clock.
func NewEngine(client llm.Client, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{client: client, now: now}
}

// Synthesize builds a complete day-assigned plan for a request.
//
// Only an invalid request or a non-positive horizon is returned as an
// error (plus context cancellation). Every other failure — provider down,
// timeout, unparseable output, nothing valid after narrowing — degrades to
// the fallback plan, flagged with the reason.
func (e *Engine) Synthesize(ctx context.Context, req domain.PlanRequest) (*Result, error) {
	req.Normalize(e.now())
	if err := req.Validate(); err != nil {
		return nil, err
	}

	horizon, err := BuildHorizon(req.StartDate, req.Deadline, req.WorkDaysPerWeek, req.DailyHours)
	if err != nil {
		return nil, err
	}

	phases, milestones, reason, err := e.generate(ctx, llm.TaskTimeline,
		timelineSystemPrompt, buildTimelinePrompt(req, ProfileFor(req.Field), horizon), nil)
	if err != nil {
		return nil, err
	}

	res := &Result{Horizon: horizon}
	if reason != "" {
		res.UsedFallback = true
		res.FailureReason = reason
		phases, milestones = FallbackPlan(horizon)
	}

	res.Plan = e.finishPlan(phases, milestones, req, horizon)
	return res, nil
}

// Replan rebuilds the schedule for the remaining window. The generator
// sees the current plan, the reason, and any new constraints so it can
// prioritize and cut; validation, adjustment, and assignment are identical
// to initial synthesis. The request's start date should already be the
// replan day (Normalize handles a zero start).
func (e *Engine) Replan(ctx context.Context, req domain.PlanRequest, current *domain.Plan, reason string, constraints map[string]string) (*Result, error) {
	req.Normalize(e.now())
	if err := req.Validate(); err != nil {
		return nil, err
	}

	horizon, err := BuildHorizon(req.StartDate, req.Deadline, req.WorkDaysPerWeek, req.DailyHours)
	if err != nil {
		return nil, err
	}

	var adjustments []string
	phases, milestones, failReason, err := e.generate(ctx, llm.TaskReplan,
		replanSystemPrompt, buildReplanPrompt(current, reason, constraints, horizon), &adjustments)
	if err != nil {
		return nil, err
	}

	res := &Result{Horizon: horizon, AdjustmentsMade: adjustments}
	if failReason != "" {
		res.UsedFallback = true
		res.FailureReason = failReason
		res.AdjustmentsMade = nil
		phases, milestones = FallbackPlan(horizon)
	}

	res.Plan = e.finishPlan(phases, milestones, req, horizon)
	return res, nil
}

// DailyInsight produces a short motivational message from progress data.
// Any failure returns the canned fallback; insights never error.
func (e *Engine) DailyInsight(ctx context.Context, progress map[string]any) string {
	if e.client == nil {
		return FallbackInsight
	}

	resp, err := e.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskInsight,
		SystemPrompt: insightSystemPrompt,
		UserPrompt:   buildInsightPrompt(progress),
	})
	if err != nil {
		return FallbackInsight
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return FallbackInsight
	}
	return text
}

// generate runs the external call plus repair-and-parse plus validation.
// It returns either a validated timeline, a non-empty fallback reason, or
// an error — the error case is reserved for caller cancellation.
func (e *Engine) generate(ctx context.Context, task llm.TaskType, system, prompt string, adjustments *[]string) ([]domain.Phase, []domain.Milestone, string, error) {
	if e.client == nil {
		return nil, nil, ReasonGenerationDisabled, nil
	}

	resp, err := e.client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: system,
		UserPrompt:   prompt,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, "", ctx.Err()
		}
		return nil, nil, failureReason(err), nil
	}

	candidate, err := llm.ExtractCandidate(resp.Text)
	if err != nil {
		return nil, nil, failureReason(err), nil
	}

	timeline := candidate
	if nested := asMap(candidate["new_timeline"]); nested != nil {
		timeline = nested
	}
	if adjustments != nil {
		for _, raw := range asSlice(candidate["adjustments_made"]) {
			if s := asString(raw); s != "" {
				*adjustments = append(*adjustments, s)
			}
		}
	}

	phases, milestones, err := Promote(timeline)
	if err != nil {
		return nil, nil, failureReason(err), nil
	}
	return phases, milestones, "", nil
}

// finishPlan runs the stages shared by both paths: buffer adjustment and
// day assignment.
func (e *Engine) finishPlan(phases []domain.Phase, milestones []domain.Milestone, req domain.PlanRequest, horizon *Horizon) *domain.Plan {
	today := dateOnly(e.now())
	ApplyBuffer(phases, milestones, req.Procrastination, today, horizon.Deadline)

	plan := &domain.Plan{Phases: phases, Milestones: milestones}
	AssignDays(plan, horizon, req.DailyHours, today)
	return plan
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, llm.ErrTimeout):
		return ReasonGenerationTimeout
	case errors.Is(err, llm.ErrUnavailable):
		return ReasonGenerationUnavailable
	case errors.Is(err, llm.ErrNoStructure):
		return ReasonNoStructureFound
	case errors.Is(err, llm.ErrMalformed):
		return ReasonMalformedStructure
	case errors.Is(err, ErrEmptyPlan):
		return ReasonEmptyPlan
	default:
		return ReasonGenerationFailed
	}
}
