package planner

import "errors"

var (
	// ErrInvalidDeadline is the only planning failure surfaced to callers.
	// Every other failure degrades to the deterministic fallback plan.
	ErrInvalidDeadline = errors.New("deadline must be after start date")

	// ErrEmptyPlan reports that validation kept no phases.
	ErrEmptyPlan = errors.New("no valid phases after validation")
)
