package repository

import (
	"context"

	"github.com/mouazan/thesisflow/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// GetActive returns the single active project. Thesisflow tracks one
	// thesis at a time; older projects are archived.
	GetActive(ctx context.Context) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type PlanRepo interface {
	// Save replaces the stored plan for a project: existing phases, tasks,
	// and milestones are dropped and the new plan inserted. Run it inside
	// a unit of work together with the project row update.
	Save(ctx context.Context, projectID string, plan *domain.Plan) error
	Get(ctx context.Context, projectID string) (*domain.Plan, error)
	// ResolveTaskID expands a task ID or unique ID prefix to the full ID.
	ResolveTaskID(ctx context.Context, idOrPrefix string) (string, error)
	CompleteTask(ctx context.Context, taskID string, actualHours float64) error
	CompleteMilestone(ctx context.Context, milestoneID string) error
}
