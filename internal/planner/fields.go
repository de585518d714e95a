package planner

import "github.com/mouazan/thesisflow/internal/domain"

// FieldProfile captures discipline-specific planning knowledge used to
// steer timeline generation.
type FieldProfile struct {
	DisplayName  string
	Phases       []string
	PhaseWeights map[string]float64
}

var fieldProfiles = map[domain.FieldOfStudy]FieldProfile{
	domain.FieldComputerScience: {
		DisplayName: "Computer Science",
		Phases: []string{
			"Literature Review", "Problem Definition", "Methodology Design",
			"Implementation", "Testing & Validation", "Results Analysis",
			"Writing & Documentation", "Revision & Finalization",
		},
		PhaseWeights: map[string]float64{
			"Literature Review":       0.20,
			"Problem Definition":      0.08,
			"Methodology Design":      0.12,
			"Implementation":          0.25,
			"Testing & Validation":    0.15,
			"Results Analysis":        0.10,
			"Writing & Documentation": 0.15,
			"Revision & Finalization": 0.05,
		},
	},
	domain.FieldPsychology: {
		DisplayName: "Psychology",
		Phases: []string{
			"Literature Review", "Hypothesis Formation", "Study Design",
			"Data Collection", "Statistical Analysis", "Results Interpretation",
			"Writing & Documentation", "Revision & Finalization",
		},
		PhaseWeights: map[string]float64{
			"Literature Review":       0.25,
			"Hypothesis Formation":    0.08,
			"Study Design":            0.12,
			"Data Collection":         0.20,
			"Statistical Analysis":    0.15,
			"Results Interpretation":  0.10,
			"Writing & Documentation": 0.15,
			"Revision & Finalization": 0.05,
		},
	},
	domain.FieldEngineering: {
		DisplayName: "Engineering",
		Phases: []string{
			"Literature Review", "Requirements Analysis", "System Design",
			"Prototyping", "Testing & Evaluation", "Results Analysis",
			"Writing & Documentation", "Revision & Finalization",
		},
		PhaseWeights: map[string]float64{
			"Literature Review":       0.18,
			"Requirements Analysis":   0.10,
			"System Design":           0.15,
			"Prototyping":             0.22,
			"Testing & Evaluation":    0.15,
			"Results Analysis":        0.05,
			"Writing & Documentation": 0.10,
			"Revision & Finalization": 0.05,
		},
	},
	domain.FieldGeneral: {
		DisplayName: "General",
		Phases: []string{
			"Literature Review", "Research Planning", "Research Execution",
			"Analysis", "Writing & Documentation", "Revision & Finalization",
		},
		PhaseWeights: map[string]float64{
			"Literature Review":       0.25,
			"Research Planning":       0.10,
			"Research Execution":      0.30,
			"Analysis":                0.10,
			"Writing & Documentation": 0.20,
			"Revision & Finalization": 0.05,
		},
	},
}

// ProfileFor returns the planning profile for a field, defaulting to the
// general profile for unknown fields.
func ProfileFor(field domain.FieldOfStudy) FieldProfile {
	if p, ok := fieldProfiles[field]; ok {
		return p
	}
	return fieldProfiles[domain.FieldGeneral]
}
