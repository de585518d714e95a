package domain

import "time"

// DateLayout is the ISO calendar-date format used for day-assignment keys
// and all date persistence.
const DateLayout = "2006-01-02"

// Task is a single unit of work owned by exactly one phase.
type Task struct {
	ID             string // assigned by the repository on save, empty before
	Title          string
	Description    string
	EstimatedHours float64
	Priority       int // lower = more urgent, canonical range 1-5
	DueDate        *time.Time
	AssignedDate   *time.Time // set only by the day assigner
	Deliverable    string
	Completed      bool
	ActualHours    float64
}

// Phase groups an ordered sequence of tasks between two dates.
type Phase struct {
	ID             string
	Name           string
	Description    string
	StartDate      time.Time
	EndDate        time.Time
	EstimatedHours int
	Tasks          []Task
}

// Milestone marks a dated deliverable checkpoint. Completion is flipped by
// callers tracking progress, never by the synthesis engine.
type Milestone struct {
	ID           string
	Name         string
	Description  string
	TargetDate   time.Time
	Deliverables []string
	Completed    bool
}

// TaskRef locates a task inside a plan by phase and task index.
type TaskRef struct {
	Phase int
	Task  int
}

// DayAssignment maps an ISO working-day date to the ordered tasks
// scheduled on it.
type DayAssignment map[string][]TaskRef

// Plan is the full synthesis output: phases with their tasks, milestones,
// and the derived calendar assignment.
type Plan struct {
	Phases      []Phase
	Milestones  []Milestone
	Assignments DayAssignment
	TodaysTasks []TaskRef
}

// TaskAt resolves a TaskRef to its task, or nil when out of range.
func (p *Plan) TaskAt(ref TaskRef) *Task {
	if ref.Phase < 0 || ref.Phase >= len(p.Phases) {
		return nil
	}
	ph := &p.Phases[ref.Phase]
	if ref.Task < 0 || ref.Task >= len(ph.Tasks) {
		return nil
	}
	return &ph.Tasks[ref.Task]
}

// TaskCount returns the total number of tasks across all phases.
func (p *Plan) TaskCount() int {
	n := 0
	for i := range p.Phases {
		n += len(p.Phases[i].Tasks)
	}
	return n
}

// Project is a persisted thesis project: the request parameters the plan
// was built from plus synthesis metadata.
type Project struct {
	ID              string
	Topic           string
	Field           FieldOfStudy
	Description     string
	StartDate       time.Time
	Deadline        time.Time
	DailyHours      float64
	WorkDaysPerWeek int
	FocusMinutes    int
	Procrastination ProcrastinationLevel
	UsedFallback    bool
	FailureReason   string
	Status          ProjectStatus
	ArchivedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Request reconstructs the PlanRequest this project was created from,
// used when replanning against the stored constraints.
func (p *Project) Request() PlanRequest {
	return PlanRequest{
		Topic:           p.Topic,
		Field:           p.Field,
		Description:     p.Description,
		StartDate:       p.StartDate,
		Deadline:        p.Deadline,
		DailyHours:      p.DailyHours,
		WorkDaysPerWeek: p.WorkDaysPerWeek,
		FocusMinutes:    p.FocusMinutes,
		Procrastination: p.Procrastination,
	}
}
