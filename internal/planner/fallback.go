package planner

import (
	"math"

	"github.com/mouazan/thesisflow/internal/domain"
)

// The fallback plan is the deterministic answer when generation, parsing,
// or validation yields nothing usable. Four canonical phases split the
// horizon 25/20/35/20 and the productive hour budget is divided the same
// way. The caller runs the result through the buffer adjuster and day
// assigner exactly like a generated plan.

type fallbackTask struct {
	title       string
	description string
	share       float64 // of the phase's hours
	priority    int
	dueAt       float64 // position in the phase window, 0..1
	deliverable string
}

type fallbackPhase struct {
	name        string
	description string
	share       float64 // of the horizon and the hour budget
	tasks       []fallbackTask
	milestone   string
	msDesc      string
	deliverable string
}

var fallbackPhases = []fallbackPhase{
	{
		name:        "Literature Review",
		description: "Comprehensive review of existing research",
		share:       0.25,
		tasks: []fallbackTask{
			{"Search and collect relevant papers", "Use academic databases to find relevant literature", 0.35, 1, 0.35, ""},
			{"Read and annotate key sources", "Work through the collected papers and take structured notes", 0.40, 2, 0.75, ""},
			{"Draft the literature review chapter", "Summarize the state of the art and position the thesis", 0.25, 2, 1.0, "Literature review draft"},
		},
		milestone:   "Literature Review Complete",
		msDesc:      "Complete comprehensive literature review",
		deliverable: "Literature review chapter",
	},
	{
		name:        "Methodology Development",
		description: "Design and plan the research methodology",
		share:       0.20,
		tasks: []fallbackTask{
			{"Design the research approach", "Define methodology, scope, and success criteria", 0.55, 1, 0.5, ""},
			{"Plan evaluation and data needs", "Decide how results will be measured and what data is required", 0.45, 2, 1.0, "Methodology chapter"},
		},
		milestone:   "Methodology Finalized",
		msDesc:      "Research methodology completed and approved",
		deliverable: "Methodology chapter",
	},
	{
		name:        "Implementation",
		description: "Execute the research plan",
		share:       0.35,
		tasks: []fallbackTask{
			{"Build the core of the work", "Start executing the research plan", 0.45, 1, 0.45, ""},
			{"Run experiments or collect data", "Carry out the planned experiments or data collection", 0.35, 1, 0.8, ""},
			{"Analyze results", "Process and interpret what the experiments produced", 0.20, 2, 1.0, "Implementation results"},
		},
		milestone:   "Implementation Complete",
		msDesc:      "All research implementation finished",
		deliverable: "Implementation results",
	},
	{
		name:        "Writing and Finalization",
		description: "Write and finalize the thesis document",
		share:       0.20,
		tasks: []fallbackTask{
			{"Write thesis chapters", "Write the main thesis content", 0.60, 1, 0.6, ""},
			{"Revise and incorporate feedback", "Polish the draft and address advisor comments", 0.30, 2, 0.9, ""},
			{"Prepare final submission", "Format, proofread, and submit the final document", 0.10, 1, 1.0, "Complete thesis document"},
		},
		milestone:   "Thesis Submitted",
		msDesc:      "Final thesis submitted",
		deliverable: "Complete thesis document",
	},
}

// FallbackPlan builds the canonical four-phase plan for a horizon. Same
// inputs, same plan: it is a pure function with no clock or randomness.
func FallbackPlan(horizon *Horizon) ([]domain.Phase, []domain.Milestone) {
	phases := make([]domain.Phase, 0, len(fallbackPhases))
	milestones := make([]domain.Milestone, 0, len(fallbackPhases))

	offset := 0.0
	for _, fp := range fallbackPhases {
		startDay := int(math.Round(offset * float64(horizon.TotalDays)))
		endDay := int(math.Round((offset + fp.share) * float64(horizon.TotalDays)))
		if endDay > horizon.TotalDays {
			endDay = horizon.TotalDays
		}
		offset += fp.share

		start := horizon.Start.AddDate(0, 0, startDay)
		end := horizon.Start.AddDate(0, 0, endDay)
		phaseHours := math.Round(horizon.ProductiveHours * fp.share)
		windowDays := endDay - startDay

		phase := domain.Phase{
			Name:           fp.name,
			Description:    fp.description,
			StartDate:      start,
			EndDate:        end,
			EstimatedHours: int(phaseHours),
		}
		for _, ft := range fp.tasks {
			due := start.AddDate(0, 0, int(math.Round(ft.dueAt*float64(windowDays))))
			if due.After(horizon.Deadline) {
				due = horizon.Deadline
			}
			dueCopy := due
			phase.Tasks = append(phase.Tasks, domain.Task{
				Title:          ft.title,
				Description:    ft.description,
				EstimatedHours: roundHalf(phaseHours * ft.share),
				Priority:       ft.priority,
				DueDate:        &dueCopy,
				Deliverable:    ft.deliverable,
			})
		}
		phases = append(phases, phase)

		milestones = append(milestones, domain.Milestone{
			Name:         fp.milestone,
			Description:  fp.msDesc,
			TargetDate:   end,
			Deliverables: []string{fp.deliverable},
		})
	}

	return phases, milestones
}

// roundHalf rounds hours to the nearest half hour with a half-hour floor.
func roundHalf(h float64) float64 {
	r := math.Round(h*2) / 2
	if r < 0.5 {
		return 0.5
	}
	return r
}
