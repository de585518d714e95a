package domain

type ProcrastinationLevel string

const (
	ProcrastinationLow    ProcrastinationLevel = "low"
	ProcrastinationMedium ProcrastinationLevel = "medium"
	ProcrastinationHigh   ProcrastinationLevel = "high"
)

// ValidProcrastinationLevels is the canonical set of accepted level strings.
var ValidProcrastinationLevels = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type FieldOfStudy string

const (
	FieldComputerScience FieldOfStudy = "computer_science"
	FieldPsychology      FieldOfStudy = "psychology"
	FieldEngineering     FieldOfStudy = "engineering"
	FieldGeneral         FieldOfStudy = "general"
)

// ValidFields is the canonical set of accepted field strings.
var ValidFields = map[string]bool{
	"computer_science": true, "psychology": true,
	"engineering": true, "general": true,
}

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)
