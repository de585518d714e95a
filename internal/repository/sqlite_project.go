package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mouazan/thesisflow/internal/db"
	"github.com/mouazan/thesisflow/internal/domain"
)

// ErrNotFound reports that a requested row does not exist.
var ErrNotFound = errors.New("not found")

const dateLayout = domain.DateLayout

const projectColumns = `id, topic, field, description, start_date, deadline,
	daily_hours, work_days_per_week, focus_minutes, procrastination,
	used_fallback, failure_reason, status, archived_at, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo on SQLite.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}

	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Topic,
		string(p.Field),
		p.Description,
		p.StartDate.Format(dateLayout),
		p.Deadline.Format(dateLayout),
		p.DailyHours,
		p.WorkDaysPerWeek,
		p.FocusMinutes,
		string(p.Procrastination),
		boolToInt(p.UsedFallback),
		p.FailureReason,
		string(p.Status),
		nullableTimeToString(p.ArchivedAt, time.RFC3339),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

func (r *SQLiteProjectRepo) GetActive(ctx context.Context) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE status = 'active' ORDER BY created_at DESC LIMIT 1`)
	return scanProject(row)
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	query := `UPDATE projects SET topic = ?, field = ?, description = ?,
		start_date = ?, deadline = ?, daily_hours = ?, work_days_per_week = ?,
		focus_minutes = ?, procrastination = ?, used_fallback = ?,
		failure_reason = ?, status = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Topic,
		string(p.Field),
		p.Description,
		p.StartDate.Format(dateLayout),
		p.Deadline.Format(dateLayout),
		p.DailyHours,
		p.WorkDaysPerWeek,
		p.FocusMinutes,
		string(p.Procrastination),
		boolToInt(p.UsedFallback),
		p.FailureReason,
		string(p.Status),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx,
		`UPDATE projects SET status = 'archived', archived_at = ?, updated_at = ? WHERE id = ?`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("archiving project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row *sql.Row) (*domain.Project, error) {
	p, err := scanProjectFields(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project: %w", ErrNotFound)
	}
	return p, err
}

func scanProjectRow(rows *sql.Rows) (*domain.Project, error) {
	return scanProjectFields(rows)
}

func scanProjectFields(s rowScanner) (*domain.Project, error) {
	var p domain.Project
	var fieldStr, procStr, statusStr string
	var startStr, deadlineStr, createdStr, updatedStr string
	var archivedStr sql.NullString
	var usedFallback int

	err := s.Scan(
		&p.ID, &p.Topic, &fieldStr, &p.Description,
		&startStr, &deadlineStr,
		&p.DailyHours, &p.WorkDaysPerWeek, &p.FocusMinutes, &procStr,
		&usedFallback, &p.FailureReason, &statusStr, &archivedStr,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Field = domain.FieldOfStudy(fieldStr)
	p.Procrastination = domain.ProcrastinationLevel(procStr)
	p.Status = domain.ProjectStatus(statusStr)
	p.UsedFallback = intToBool(usedFallback)
	p.ArchivedAt = parseNullableTime(archivedStr, time.RFC3339)

	var parseErr error
	if p.StartDate, parseErr = time.ParseInLocation(dateLayout, startStr, time.UTC); parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	if p.Deadline, parseErr = time.ParseInLocation(dateLayout, deadlineStr, time.UTC); parseErr != nil {
		return nil, fmt.Errorf("parsing deadline: %w", parseErr)
	}
	if p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}
