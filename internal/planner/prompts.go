package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mouazan/thesisflow/internal/domain"
)

const timelineSystemPrompt = `You are an expert thesis advisor. You create detailed, personalized thesis timelines.

You MUST output ONLY a JSON object with exactly these top-level keys:

{
  "phases": [
    {
      "name": "Phase Name",
      "description": "Phase description",
      "start_date": "YYYY-MM-DD",
      "end_date": "YYYY-MM-DD",
      "estimated_hours": number,
      "tasks": [
        {
          "title": "Task title",
          "description": "Task description",
          "estimated_hours": number,
          "priority": 1-5,
          "due_date": "YYYY-MM-DD",
          "deliverable": "optional deliverable label"
        }
      ]
    }
  ],
  "milestones": [
    {
      "name": "Milestone name",
      "description": "Milestone description",
      "target_date": "YYYY-MM-DD",
      "deliverables": ["deliverable1", "deliverable2"]
    }
  ]
}

Rules:
- Every date must fall between the start date and the deadline.
- Priority 1 is most urgent, 5 is least.
- Make tasks actionable and measurable; size them to the student's focus sessions.
- Output ONLY the JSON object. No markdown fences. No text outside the JSON.`

func buildTimelinePrompt(req domain.PlanRequest, profile FieldProfile, horizon *Horizon) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a thesis timeline for a %s student.\n\n", profile.DisplayName)
	b.WriteString("STUDENT PROFILE:\n")
	fmt.Fprintf(&b, "- Thesis topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "- Start date: %s\n", horizon.Start.Format(domain.DateLayout))
	fmt.Fprintf(&b, "- Deadline: %s\n", horizon.Deadline.Format(domain.DateLayout))
	fmt.Fprintf(&b, "- Days available: %d (%d working days)\n", horizon.TotalDays, len(horizon.WorkingDays))
	fmt.Fprintf(&b, "- Hours per working day: %.1f\n", req.DailyHours)
	fmt.Fprintf(&b, "- Productive hour budget: %.0f\n", horizon.ProductiveHours)
	fmt.Fprintf(&b, "- Focus session length: %d minutes\n", req.FocusMinutes)
	fmt.Fprintf(&b, "- Procrastination level: %s\n", req.Procrastination)

	if req.Description != "" {
		fmt.Fprintf(&b, "\nTHESIS DESCRIPTION:\n%s\n", req.Description)
	}

	b.WriteString("\nTYPICAL PHASES FOR THIS FIELD:\n")
	for _, name := range profile.Phases {
		fmt.Fprintf(&b, "- %s (weight %.2f)\n", name, profile.PhaseWeights[name])
	}

	b.WriteString("\nBreak the thesis into phases with realistic hour estimates, concrete tasks, and dated milestones. The total estimated hours must not exceed the productive hour budget.")

	return b.String()
}

const replanSystemPrompt = `You are an expert thesis advisor handling an emergency replan for a student who has fallen behind.

You MUST output ONLY a JSON object with exactly these top-level keys:

{
  "new_timeline": {
    "phases": [...],
    "milestones": [...]
  },
  "adjustments_made": ["list of changes made"]
}

The phases and milestones use the same shape as a normal timeline: phases have name, description, start_date, end_date, estimated_hours, and tasks; milestones have name, description, target_date, and deliverables.

Rules:
- Prioritize the most critical tasks; remove or combine less important ones.
- Keep every date between today and the deadline.
- List each change you made in adjustments_made.
- Output ONLY the JSON object. No markdown fences. No text outside the JSON.`

func buildReplanPrompt(current *domain.Plan, reason string, constraints map[string]string, horizon *Horizon) string {
	var b strings.Builder

	b.WriteString("EMERGENCY REPLAN REQUEST\n\n")
	fmt.Fprintf(&b, "Reason: %s\n", reason)
	fmt.Fprintf(&b, "Days remaining: %d (%d working days)\n", horizon.TotalDays, len(horizon.WorkingDays))
	fmt.Fprintf(&b, "Deadline: %s\n", horizon.Deadline.Format(domain.DateLayout))

	if len(constraints) > 0 {
		b.WriteString("\nNEW CONSTRAINTS:\n")
		for k, v := range constraints {
			fmt.Fprintf(&b, "- %s: %s\n", k, v)
		}
	}

	b.WriteString("\nCURRENT TIMELINE:\n")
	if data, err := json.MarshalIndent(timelineSummary(current), "", "  "); err == nil {
		b.Write(data)
	}

	b.WriteString("\n\nProduce a realistic new timeline that fits the remaining window.")

	return b.String()
}

const insightSystemPrompt = `You are a supportive thesis coach. Given a student's progress data, respond with a brief, motivational insight of at most three sentences. Be specific and encouraging. Output plain text only, no JSON, no markdown.`

func buildInsightPrompt(progress map[string]any) string {
	var b strings.Builder
	b.WriteString("PROGRESS DATA:\n")
	if data, err := json.MarshalIndent(progress, "", "  "); err == nil {
		b.Write(data)
	}
	b.WriteString("\n\nGenerate today's insight.")
	return b.String()
}

// timelineSummary reduces a plan to the shape the replan prompt embeds,
// leaving out day assignments to keep the prompt compact.
func timelineSummary(p *domain.Plan) map[string]any {
	phases := make([]map[string]any, 0, len(p.Phases))
	for _, ph := range p.Phases {
		tasks := make([]map[string]any, 0, len(ph.Tasks))
		for _, t := range ph.Tasks {
			entry := map[string]any{
				"title":           t.Title,
				"estimated_hours": t.EstimatedHours,
				"priority":        t.Priority,
				"completed":       t.Completed,
			}
			if t.DueDate != nil {
				entry["due_date"] = t.DueDate.Format(domain.DateLayout)
			}
			tasks = append(tasks, entry)
		}
		phases = append(phases, map[string]any{
			"name":            ph.Name,
			"start_date":      ph.StartDate.Format(domain.DateLayout),
			"end_date":        ph.EndDate.Format(domain.DateLayout),
			"estimated_hours": ph.EstimatedHours,
			"tasks":           tasks,
		})
	}

	milestones := make([]map[string]any, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		milestones = append(milestones, map[string]any{
			"name":        m.Name,
			"target_date": m.TargetDate.Format(domain.DateLayout),
			"completed":   m.Completed,
		})
	}

	return map[string]any{"phases": phases, "milestones": milestones}
}
