package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mouazan/thesisflow/internal/db"
	"github.com/mouazan/thesisflow/internal/domain"
)

// SQLitePlanRepo implements PlanRepo on SQLite. Save is a full replace and
// is expected to run inside a unit of work.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(db db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Save(ctx context.Context, projectID string, plan *domain.Plan) error {
	// Dropping phases cascades to their tasks.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM phases WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing phases: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing milestones: %w", err)
	}

	dayOrders := dayOrderIndex(plan)

	for pi := range plan.Phases {
		phase := &plan.Phases[pi]
		phase.ID = uuid.NewString()

		_, err := r.db.ExecContext(ctx,
			`INSERT INTO phases (id, project_id, name, description, start_date, end_date, estimated_hours, order_index)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			phase.ID, projectID, phase.Name, phase.Description,
			phase.StartDate.Format(dateLayout), phase.EndDate.Format(dateLayout),
			phase.EstimatedHours, pi,
		)
		if err != nil {
			return fmt.Errorf("inserting phase %q: %w", phase.Name, err)
		}

		for ti := range phase.Tasks {
			task := &phase.Tasks[ti]
			task.ID = uuid.NewString()

			_, err := r.db.ExecContext(ctx,
				`INSERT INTO tasks (id, phase_id, title, description, estimated_hours, priority,
					due_date, assigned_date, day_order, deliverable, completed, actual_hours, order_index)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				task.ID, phase.ID, task.Title, task.Description,
				task.EstimatedHours, task.Priority,
				nullableTimeToString(task.DueDate, dateLayout),
				nullableTimeToString(task.AssignedDate, dateLayout),
				dayOrders[domain.TaskRef{Phase: pi, Task: ti}],
				task.Deliverable, boolToInt(task.Completed), task.ActualHours, ti,
			)
			if err != nil {
				return fmt.Errorf("inserting task %q: %w", task.Title, err)
			}
		}
	}

	for mi := range plan.Milestones {
		ms := &plan.Milestones[mi]
		ms.ID = uuid.NewString()

		deliverables, err := json.Marshal(ms.Deliverables)
		if err != nil {
			return fmt.Errorf("encoding deliverables: %w", err)
		}
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO milestones (id, project_id, name, description, target_date, deliverables, completed, order_index)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			ms.ID, projectID, ms.Name, ms.Description,
			ms.TargetDate.Format(dateLayout), string(deliverables),
			boolToInt(ms.Completed), mi,
		)
		if err != nil {
			return fmt.Errorf("inserting milestone %q: %w", ms.Name, err)
		}
	}

	return nil
}

func (r *SQLitePlanRepo) Get(ctx context.Context, projectID string) (*domain.Plan, error) {
	plan := &domain.Plan{Assignments: make(domain.DayAssignment)}

	phaseRows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, start_date, end_date, estimated_hours
		 FROM phases WHERE project_id = ? ORDER BY order_index`, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading phases: %w", err)
	}
	defer phaseRows.Close()

	for phaseRows.Next() {
		var p domain.Phase
		var startStr, endStr string
		if err := phaseRows.Scan(&p.ID, &p.Name, &p.Description, &startStr, &endStr, &p.EstimatedHours); err != nil {
			return nil, fmt.Errorf("scanning phase: %w", err)
		}
		if p.StartDate, err = parseDate(startStr); err != nil {
			return nil, err
		}
		if p.EndDate, err = parseDate(endStr); err != nil {
			return nil, err
		}
		plan.Phases = append(plan.Phases, p)
	}
	if err := phaseRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phases: %w", err)
	}

	type placed struct {
		ref   domain.TaskRef
		day   string
		order int
	}
	var placements []placed

	for pi := range plan.Phases {
		phase := &plan.Phases[pi]
		taskRows, err := r.db.QueryContext(ctx,
			`SELECT id, title, description, estimated_hours, priority, due_date,
				assigned_date, day_order, deliverable, completed, actual_hours
			 FROM tasks WHERE phase_id = ? ORDER BY order_index`, phase.ID)
		if err != nil {
			return nil, fmt.Errorf("loading tasks: %w", err)
		}

		for taskRows.Next() {
			var t domain.Task
			var dueStr, assignedStr sql.NullString
			var dayOrder, completed int
			if err := taskRows.Scan(&t.ID, &t.Title, &t.Description, &t.EstimatedHours,
				&t.Priority, &dueStr, &assignedStr, &dayOrder, &t.Deliverable,
				&completed, &t.ActualHours); err != nil {
				taskRows.Close()
				return nil, fmt.Errorf("scanning task: %w", err)
			}
			t.Completed = intToBool(completed)
			t.DueDate = parseNullableTime(dueStr, dateLayout)
			t.AssignedDate = parseNullableTime(assignedStr, dateLayout)

			ref := domain.TaskRef{Phase: pi, Task: len(phase.Tasks)}
			phase.Tasks = append(phase.Tasks, t)
			if t.AssignedDate != nil {
				placements = append(placements, placed{
					ref:   ref,
					day:   t.AssignedDate.Format(dateLayout),
					order: dayOrder,
				})
			}
		}
		if err := taskRows.Err(); err != nil {
			taskRows.Close()
			return nil, fmt.Errorf("iterating tasks: %w", err)
		}
		taskRows.Close()
	}

	// Rebuild each day's ordered assignment from the stored day_order.
	byDay := make(map[string][]placed)
	for _, pl := range placements {
		byDay[pl.day] = append(byDay[pl.day], pl)
	}
	for day, pls := range byDay {
		ordered := make([]domain.TaskRef, len(pls))
		for _, pl := range pls {
			if pl.order >= 0 && pl.order < len(ordered) {
				ordered[pl.order] = pl.ref
			}
		}
		plan.Assignments[day] = ordered
	}

	msRows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, target_date, deliverables, completed
		 FROM milestones WHERE project_id = ? ORDER BY order_index`, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading milestones: %w", err)
	}
	defer msRows.Close()

	for msRows.Next() {
		var m domain.Milestone
		var targetStr, deliverablesStr string
		var completed int
		if err := msRows.Scan(&m.ID, &m.Name, &m.Description, &targetStr, &deliverablesStr, &completed); err != nil {
			return nil, fmt.Errorf("scanning milestone: %w", err)
		}
		if m.TargetDate, err = parseDate(targetStr); err != nil {
			return nil, err
		}
		m.Completed = intToBool(completed)
		if err := json.Unmarshal([]byte(deliverablesStr), &m.Deliverables); err != nil {
			return nil, fmt.Errorf("decoding deliverables: %w", err)
		}
		plan.Milestones = append(plan.Milestones, m)
	}
	if err := msRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}

	return plan, nil
}

func (r *SQLitePlanRepo) ResolveTaskID(ctx context.Context, idOrPrefix string) (string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM tasks WHERE id = ? OR id LIKE ? LIMIT 3`,
		idOrPrefix, idOrPrefix+"%")
	if err != nil {
		return "", fmt.Errorf("resolving task id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("resolving task id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolving task id: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("task %s: %w", idOrPrefix, ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		// An exact match wins over prefix matches.
		for _, id := range ids {
			if id == idOrPrefix {
				return id, nil
			}
		}
		return "", fmt.Errorf("task id %q is ambiguous", idOrPrefix)
	}
}

func (r *SQLitePlanRepo) CompleteTask(ctx context.Context, taskID string, actualHours float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET completed = 1, actual_hours = ? WHERE id = ?`,
		actualHours, taskID)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlanRepo) CompleteMilestone(ctx context.Context, milestoneID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE milestones SET completed = 1 WHERE id = ?`, milestoneID)
	if err != nil {
		return fmt.Errorf("completing milestone: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("completing milestone: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("milestone %s: %w", milestoneID, ErrNotFound)
	}
	return nil
}

// dayOrderIndex maps each assigned task ref to its position within its
// day, so assignment order survives a round trip.
func dayOrderIndex(plan *domain.Plan) map[domain.TaskRef]int {
	orders := make(map[domain.TaskRef]int)
	for _, refs := range plan.Assignments {
		for i, ref := range refs {
			orders[ref] = i
		}
	}
	return orders
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}
