package llm

import "errors"

var (
	// ErrUnavailable indicates the Ollama server is unreachable.
	ErrUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	// ErrNoStructure indicates the response contained no JSON object at all.
	ErrNoStructure = errors.New("no json structure found in response")

	// ErrMalformed indicates a JSON object was located but could not be
	// decoded even after repair.
	ErrMalformed = errors.New("malformed json structure in response")
)
