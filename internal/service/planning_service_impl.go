package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/mouazan/thesisflow/internal/contract"
	"github.com/mouazan/thesisflow/internal/db"
	"github.com/mouazan/thesisflow/internal/domain"
	"github.com/mouazan/thesisflow/internal/planner"
	"github.com/mouazan/thesisflow/internal/repository"
)

type planningService struct {
	projects repository.ProjectRepo
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	engine   *planner.Engine
	now      func() time.Time
}

// NewPlanningService wires the synthesis engine to persistence. now feeds
// all "today" decisions; nil uses the wall clock.
func NewPlanningService(
	projects repository.ProjectRepo,
	plans repository.PlanRepo,
	uow db.UnitOfWork,
	engine *planner.Engine,
	now func() time.Time,
) PlanningService {
	if now == nil {
		now = time.Now
	}
	return &planningService{
		projects: projects,
		plans:    plans,
		uow:      uow,
		engine:   engine,
		now:      now,
	}
}

func (s *planningService) Create(ctx context.Context, req contract.CreatePlanRequest) (*contract.PlanResult, error) {
	planReq := domain.PlanRequest{
		Topic:           req.Topic,
		Field:           req.Field,
		Description:     req.Description,
		StartDate:       req.StartDate,
		Deadline:        req.Deadline,
		DailyHours:      req.DailyHours,
		WorkDaysPerWeek: req.WorkDaysPerWeek,
		FocusMinutes:    req.FocusMinutes,
		Procrastination: req.Procrastination,
	}

	res, err := s.engine.Synthesize(ctx, planReq)
	if err != nil {
		return nil, mapEngineError(err)
	}

	planReq.Normalize(s.now())
	project := &domain.Project{
		Topic:           planReq.Topic,
		Field:           planReq.Field,
		Description:     planReq.Description,
		StartDate:       res.Horizon.Start,
		Deadline:        res.Horizon.Deadline,
		DailyHours:      planReq.DailyHours,
		WorkDaysPerWeek: planReq.WorkDaysPerWeek,
		FocusMinutes:    planReq.FocusMinutes,
		Procrastination: planReq.Procrastination,
		UsedFallback:    res.UsedFallback,
		FailureReason:   res.FailureReason,
		Status:          domain.ProjectActive,
	}

	// One active thesis at a time: archive whatever was active, then land
	// the new project and its plan atomically.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txPlans := repository.NewSQLitePlanRepo(tx)

		existing, err := txProjects.List(ctx, false)
		if err != nil {
			return err
		}
		for _, old := range existing {
			if err := txProjects.Archive(ctx, old.ID); err != nil {
				return err
			}
		}

		if err := txProjects.Create(ctx, project); err != nil {
			return err
		}
		return txPlans.Save(ctx, project.ID, res.Plan)
	})
	if err != nil {
		return nil, contract.NewPlanError(contract.CodeStorage, "saving plan: %v", err)
	}

	return &contract.PlanResult{
		Project:         project,
		Plan:            res.Plan,
		UsedFallback:    res.UsedFallback,
		FailureReason:   res.FailureReason,
		TotalDays:       res.Horizon.TotalDays,
		WorkingDays:     len(res.Horizon.WorkingDays),
		ProductiveHours: res.Horizon.ProductiveHours,
	}, nil
}

func (s *planningService) Replan(ctx context.Context, reason string, constraints map[string]string) (*contract.PlanResult, error) {
	project, err := s.activeProject(ctx)
	if err != nil {
		return nil, err
	}
	current, err := s.plans.Get(ctx, project.ID)
	if err != nil {
		return nil, contract.NewPlanError(contract.CodeStorage, "loading plan: %v", err)
	}

	req := project.Request()
	req.StartDate = time.Time{} // replan from today
	applyConstraints(&req, constraints)

	res, err := s.engine.Replan(ctx, req, current, reason, constraints)
	if err != nil {
		return nil, mapEngineError(err)
	}

	project.StartDate = res.Horizon.Start
	project.Deadline = res.Horizon.Deadline
	project.DailyHours = req.DailyHours
	project.WorkDaysPerWeek = req.WorkDaysPerWeek
	project.UsedFallback = res.UsedFallback
	project.FailureReason = res.FailureReason

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Update(ctx, project); err != nil {
			return err
		}
		return repository.NewSQLitePlanRepo(tx).Save(ctx, project.ID, res.Plan)
	})
	if err != nil {
		return nil, contract.NewPlanError(contract.CodeStorage, "saving replanned schedule: %v", err)
	}

	return &contract.PlanResult{
		Project:         project,
		Plan:            res.Plan,
		UsedFallback:    res.UsedFallback,
		FailureReason:   res.FailureReason,
		TotalDays:       res.Horizon.TotalDays,
		WorkingDays:     len(res.Horizon.WorkingDays),
		ProductiveHours: res.Horizon.ProductiveHours,
		AdjustmentsMade: res.AdjustmentsMade,
	}, nil
}

func (s *planningService) Today(ctx context.Context, day time.Time, withInsight bool) (*contract.TodayResult, error) {
	project, err := s.activeProject(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.Get(ctx, project.ID)
	if err != nil {
		return nil, contract.NewPlanError(contract.CodeStorage, "loading plan: %v", err)
	}

	if day.IsZero() {
		day = s.now()
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	result := &contract.TodayResult{Date: day}
	for _, ref := range plan.Assignments[day.Format(domain.DateLayout)] {
		task := plan.TaskAt(ref)
		if task == nil {
			continue
		}
		result.Tasks = append(result.Tasks, contract.TodayTask{
			TaskID:         task.ID,
			Title:          task.Title,
			Description:    task.Description,
			PhaseName:      plan.Phases[ref.Phase].Name,
			EstimatedHours: task.EstimatedHours,
			Priority:       task.Priority,
			DueDate:        task.DueDate,
			Deliverable:    task.Deliverable,
			Completed:      task.Completed,
		})
		result.TotalHours += task.EstimatedHours
	}

	if withInsight {
		result.Insight = s.engine.DailyInsight(ctx, progressData(project, plan, day))
	}
	return result, nil
}

func (s *planningService) CompleteTask(ctx context.Context, taskID string, actualHours float64) error {
	resolved, err := s.plans.ResolveTaskID(ctx, taskID)
	if errors.Is(err, repository.ErrNotFound) {
		return contract.NewPlanError(contract.CodeNotFound, "task %s not found", taskID)
	}
	if err != nil {
		return contract.NewPlanError(contract.CodeInvalidInput, "%v", err)
	}

	err = s.plans.CompleteTask(ctx, resolved, actualHours)
	if errors.Is(err, repository.ErrNotFound) {
		return contract.NewPlanError(contract.CodeNotFound, "task %s not found", taskID)
	}
	if err != nil {
		return contract.NewPlanError(contract.CodeStorage, "completing task: %v", err)
	}
	return nil
}

func (s *planningService) CompleteMilestone(ctx context.Context, milestoneID string) error {
	err := s.plans.CompleteMilestone(ctx, milestoneID)
	if errors.Is(err, repository.ErrNotFound) {
		return contract.NewPlanError(contract.CodeNotFound, "milestone %s not found", milestoneID)
	}
	if err != nil {
		return contract.NewPlanError(contract.CodeStorage, "completing milestone: %v", err)
	}
	return nil
}

func (s *planningService) activeProject(ctx context.Context) (*domain.Project, error) {
	project, err := s.projects.GetActive(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, contract.NewPlanError(contract.CodeNoPlan, "no active plan; run 'thesisflow new' first")
	}
	if err != nil {
		return nil, contract.NewPlanError(contract.CodeStorage, "loading project: %v", err)
	}
	return project, nil
}

// applyConstraints folds recognized replan constraints into the request;
// unrecognized keys still reach the generator through the prompt.
func applyConstraints(req *domain.PlanRequest, constraints map[string]string) {
	if v, ok := constraints["daily_hours"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			req.DailyHours = f
		}
	}
	if v, ok := constraints["work_days_per_week"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 7 {
			req.WorkDaysPerWeek = n
		}
	}
	if v, ok := constraints["deadline"]; ok {
		if d, err := time.ParseInLocation(domain.DateLayout, v, time.UTC); err == nil {
			req.Deadline = d
		}
	}
}

// progressData is the snapshot the insight prompt sees.
func progressData(project *domain.Project, plan *domain.Plan, day time.Time) map[string]any {
	total, completed := 0, 0
	for pi := range plan.Phases {
		for ti := range plan.Phases[pi].Tasks {
			total++
			if plan.Phases[pi].Tasks[ti].Completed {
				completed++
			}
		}
	}
	return map[string]any{
		"topic":           project.Topic,
		"deadline":        project.Deadline.Format(domain.DateLayout),
		"date":            day.Format(domain.DateLayout),
		"tasks_total":     total,
		"tasks_completed": completed,
		"tasks_today":     len(plan.Assignments[day.Format(domain.DateLayout)]),
	}
}

func mapEngineError(err error) error {
	if errors.Is(err, planner.ErrInvalidDeadline) {
		return contract.NewPlanError(contract.CodeInvalidDeadline, "%v", err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return contract.NewPlanError(contract.CodeInvalidInput, "%v", err)
}
