package contract

import "fmt"

// ErrorCode classifies service-boundary failures for the CLI.
type ErrorCode string

const (
	CodeInvalidInput    ErrorCode = "invalid_input"
	CodeInvalidDeadline ErrorCode = "invalid_deadline"
	CodeNotFound        ErrorCode = "not_found"
	CodeNoPlan          ErrorCode = "no_plan"
	CodeStorage         ErrorCode = "storage"
)

// PlanError is the typed error services return to the CLI layer.
type PlanError struct {
	Code    ErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewPlanError builds a PlanError with a formatted message.
func NewPlanError(code ErrorCode, format string, args ...any) *PlanError {
	return &PlanError{Code: code, Message: fmt.Sprintf(format, args...)}
}
