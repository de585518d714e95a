package planner

import (
	"time"

	"github.com/mouazan/thesisflow/internal/domain"
)

// Promote narrows an untyped candidate timeline into typed phases and
// milestones. A phase is kept only when it carries a name, parseable start
// and end dates, and an hour estimate; milestones need a name and a target
// date. Everything else is dropped silently. Tasks under a kept phase are
// tolerated even when malformed: missing fields default rather than reject.
//
// Returns ErrEmptyPlan when no phase survives.
func Promote(candidate map[string]any) ([]domain.Phase, []domain.Milestone, error) {
	var phases []domain.Phase
	for _, raw := range asSlice(candidate["phases"]) {
		p, ok := promotePhase(asMap(raw))
		if !ok {
			continue
		}
		phases = append(phases, p)
	}
	if len(phases) == 0 {
		return nil, nil, ErrEmptyPlan
	}

	var milestones []domain.Milestone
	for _, raw := range asSlice(candidate["milestones"]) {
		m, ok := promoteMilestone(asMap(raw))
		if !ok {
			continue
		}
		milestones = append(milestones, m)
	}

	return phases, milestones, nil
}

func promotePhase(m map[string]any) (domain.Phase, bool) {
	name := asString(m["name"])
	start, okStart := asDate(m["start_date"])
	end, okEnd := asDate(m["end_date"])
	hours, okHours := asNumber(m["estimated_hours"])
	if name == "" || !okStart || !okEnd || !okHours {
		return domain.Phase{}, false
	}
	if end.Before(start) {
		return domain.Phase{}, false
	}

	p := domain.Phase{
		Name:           name,
		Description:    asString(m["description"]),
		StartDate:      start,
		EndDate:        end,
		EstimatedHours: int(hours),
	}
	for _, raw := range asSlice(m["tasks"]) {
		p.Tasks = append(p.Tasks, promoteTask(asMap(raw)))
	}
	return p, true
}

func promoteTask(m map[string]any) domain.Task {
	t := domain.Task{
		Title:       asString(m["title"]),
		Description: asString(m["description"]),
		Deliverable: asString(m["deliverable"]),
		Priority:    3,
	}
	if t.Title == "" {
		t.Title = "Untitled task"
	}
	if h, ok := asNumber(m["estimated_hours"]); ok && h > 0 {
		t.EstimatedHours = h
	}
	if p, ok := asNumber(m["priority"]); ok {
		n := int(p)
		if n < 1 {
			n = 1
		}
		if n > 5 {
			n = 5
		}
		t.Priority = n
	}
	if d, ok := asDate(m["due_date"]); ok {
		t.DueDate = &d
	}
	return t
}

func promoteMilestone(m map[string]any) (domain.Milestone, bool) {
	name := asString(m["name"])
	target, okTarget := asDate(m["target_date"])
	if name == "" || !okTarget {
		return domain.Milestone{}, false
	}

	ms := domain.Milestone{
		Name:        name,
		Description: asString(m["description"]),
		TargetDate:  target,
	}
	for _, raw := range asSlice(m["deliverables"]) {
		if s := asString(raw); s != "" {
			ms.Deliverables = append(ms.Deliverables, s)
		}
	}
	return ms, true
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func asDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(domain.DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
