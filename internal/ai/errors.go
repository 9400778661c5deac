// internal/ai/errors.go
package ai

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---

// ErrEmptyResponse indicates the generation service answered without a
// usable candidate text part.
var ErrEmptyResponse = errors.New("empty response from generation service")

// TransportError wraps a network or HTTP-level failure when calling the
// generation endpoint. The request is not retried here; retry policy, if
// any, belongs to callers.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generation transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError means the generation service itself reported an error
// payload in its response body.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation service error: %s", e.Message)
}

// MalformedOutputError means the sanitized model output is not valid JSON.
// No repair is attempted beyond fence stripping.
type MalformedOutputError struct {
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed AI output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// MissingFieldError means the model output parsed as JSON but lacks a
// required key.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("AI output is missing required field %q", e.Field)
}
