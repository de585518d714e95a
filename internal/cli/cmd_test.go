package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouazan/thesisflow/internal/contract"
	"github.com/mouazan/thesisflow/internal/domain"
)

type fakePlanning struct {
	createReq    *contract.CreatePlanRequest
	replanReason string
	replanCons   map[string]string
	doneID       string
	doneHours    float64
	todayDate    time.Time
	todayInsight bool

	planResult  *contract.PlanResult
	todayResult *contract.TodayResult
	err         error
}

func (f *fakePlanning) Create(ctx context.Context, req contract.CreatePlanRequest) (*contract.PlanResult, error) {
	f.createReq = &req
	return f.planResult, f.err
}

func (f *fakePlanning) Replan(ctx context.Context, reason string, constraints map[string]string) (*contract.PlanResult, error) {
	f.replanReason = reason
	f.replanCons = constraints
	return f.planResult, f.err
}

func (f *fakePlanning) Today(ctx context.Context, day time.Time, withInsight bool) (*contract.TodayResult, error) {
	f.todayDate = day
	f.todayInsight = withInsight
	return f.todayResult, f.err
}

func (f *fakePlanning) CompleteTask(ctx context.Context, taskID string, actualHours float64) error {
	f.doneID = taskID
	f.doneHours = actualHours
	return f.err
}

func (f *fakePlanning) CompleteMilestone(ctx context.Context, milestoneID string) error {
	return f.err
}

type fakeStatus struct {
	result *contract.StatusResult
	err    error
}

func (f *fakeStatus) Status(ctx context.Context) (*contract.StatusResult, error) {
	return f.result, f.err
}

func testPlanResult() *contract.PlanResult {
	return &contract.PlanResult{
		Project: &domain.Project{
			Topic:     "Testing in the large",
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Deadline:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		Plan: &domain.Plan{
			Phases: []domain.Phase{{
				Name:           "Literature Review",
				StartDate:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:        time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
				EstimatedHours: 40,
			}},
		},
		TotalDays:   151,
		WorkingDays: 107,
	}
}

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewCmd_FlagsPath(t *testing.T) {
	planning := &fakePlanning{planResult: testPlanResult()}
	app := &App{Planning: planning}

	out, err := runCommand(t, app,
		"new",
		"--topic", "Testing in the large",
		"--deadline", "2025-06-01",
		"--field", "computer_science",
		"--daily-hours", "4",
		"--work-days", "6",
		"--procrastination", "high",
	)
	require.NoError(t, err)

	require.NotNil(t, planning.createReq)
	assert.Equal(t, "Testing in the large", planning.createReq.Topic)
	assert.Equal(t, domain.FieldComputerScience, planning.createReq.Field)
	assert.Equal(t, 4.0, planning.createReq.DailyHours)
	assert.Equal(t, 6, planning.createReq.WorkDaysPerWeek)
	assert.Equal(t, domain.ProcrastinationHigh, planning.createReq.Procrastination)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), planning.createReq.Deadline)

	assert.Contains(t, out, "Literature Review")
}

func TestNewCmd_SnakeCaseFlagSpelling(t *testing.T) {
	planning := &fakePlanning{planResult: testPlanResult()}
	app := &App{Planning: planning}

	_, err := runCommand(t, app,
		"new",
		"--topic", "Testing in the large",
		"--deadline", "2025-06-01",
		"--daily_hours", "3",
	)
	require.NoError(t, err)
	assert.Equal(t, 3.0, planning.createReq.DailyHours)
}

func TestNewCmd_RequiresTopicWithoutTerminal(t *testing.T) {
	app := &App{Planning: &fakePlanning{planResult: testPlanResult()}}

	_, err := runCommand(t, app, "new", "--deadline", "2025-06-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--topic is required")
}

func TestNewCmd_RejectsBadDeadline(t *testing.T) {
	app := &App{Planning: &fakePlanning{planResult: testPlanResult()}}

	_, err := runCommand(t, app, "new", "--topic", "x", "--deadline", "June 2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestReplanCmd(t *testing.T) {
	planning := &fakePlanning{planResult: testPlanResult()}
	app := &App{Planning: planning}

	_, err := runCommand(t, app,
		"replan",
		"--reason", "lost two weeks to illness",
		"--daily-hours", "3",
		"--deadline", "2025-07-01",
	)
	require.NoError(t, err)

	assert.Equal(t, "lost two weeks to illness", planning.replanReason)
	assert.Equal(t, map[string]string{
		"daily_hours": "3",
		"deadline":    "2025-07-01",
	}, planning.replanCons)
}

func TestReplanCmd_RequiresReason(t *testing.T) {
	app := &App{Planning: &fakePlanning{planResult: testPlanResult()}}

	_, err := runCommand(t, app, "replan")
	require.Error(t, err)
}

func TestTodayCmd(t *testing.T) {
	planning := &fakePlanning{todayResult: &contract.TodayResult{
		Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Tasks: []contract.TodayTask{{
			TaskID:         "abc123",
			Title:          "Collect papers",
			PhaseName:      "Literature Review",
			EstimatedHours: 2,
			Priority:       1,
		}},
		TotalHours: 2,
	}}
	app := &App{Planning: planning}

	out, err := runCommand(t, app, "today", "--date", "2025-01-02", "--insight")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), planning.todayDate)
	assert.True(t, planning.todayInsight)
	assert.Contains(t, out, "Collect papers")
}

func TestTodayCmd_RejectsBadDate(t *testing.T) {
	app := &App{Planning: &fakePlanning{}}

	_, err := runCommand(t, app, "today", "--date", "tomorrow")
	require.Error(t, err)
}

func TestStatusCmd(t *testing.T) {
	app := &App{Status: &fakeStatus{result: &contract.StatusResult{
		Project: &domain.Project{
			Topic:      "Testing in the large",
			Deadline:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			DailyHours: 5,
		},
		TotalTasks:     10,
		CompletedTasks: 4,
		ProgressPct:    40,
	}}}

	out, err := runCommand(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Testing in the large")
	assert.Contains(t, out, "4 of 10 done")
}

func TestDoneCmd(t *testing.T) {
	planning := &fakePlanning{}
	app := &App{Planning: planning}

	out, err := runCommand(t, app, "done", "abc123", "--hours", "2.5")
	require.NoError(t, err)

	assert.Equal(t, "abc123", planning.doneID)
	assert.Equal(t, 2.5, planning.doneHours)
	assert.Contains(t, out, "completed")
}

func TestDoneCmd_RequiresTaskID(t *testing.T) {
	app := &App{Planning: &fakePlanning{}}

	_, err := runCommand(t, app, "done")
	require.Error(t, err)
}

func TestServiceErrorSurfacesAsCode(t *testing.T) {
	app := &App{Planning: &fakePlanning{
		err: contract.NewPlanError(contract.CodeNoPlan, "no active plan"),
	}}

	_, err := runCommand(t, app, "today")
	require.Error(t, err)
	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.CodeNoPlan, planErr.Code)
}
