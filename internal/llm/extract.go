package llm

import (
	"encoding/json"
	"fmt"
)

// ExtractCandidate pulls one JSON object out of raw LLM text and decodes it
// into an untyped candidate (nested maps and slices). Generated text is
// treated as hostile input: markdown fences and surrounding prose are
// stripped, common syntax defects are repaired, and exactly one decode is
// attempted — the pipeline never retries.
//
// Failures are typed: ErrNoStructure when no object delimiters exist at
// all, ErrMalformed when the object cannot be decoded after repair.
// Callers are expected to degrade to a deterministic path on either.
func ExtractCandidate(raw string) (map[string]any, error) {
	cleaned := stripCodeFences(raw)
	obj := extractObject(cleaned)
	if obj == "" {
		return nil, ErrNoStructure
	}

	obj = stripComments(obj)
	obj = removeStringAsides(obj)
	obj = quoteBareScalars(obj)
	obj = removeTrailingCommas(obj)
	obj = quoteBareKeys(obj)

	var candidate map[string]any
	if err := json.Unmarshal([]byte(obj), &candidate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return candidate, nil
}
