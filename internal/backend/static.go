package backend

import (
	"context"
	"fmt"

	"github.com/statforge/statforge/internal/schema"
)

// Static replays a fixed sequence of responses and records every prompt it
// receives. When the sequence runs out the last response repeats. Meant for
// tests and dry runs; not safe for concurrent use.
type Static struct {
	// Responses are returned in order across Generate calls.
	Responses []map[string]any
	// Err, when non-nil, is returned from every call instead of a response.
	Err error

	// Prompts collects the prompt of every Generate call.
	Prompts []string
	calls   int
}

// Generate returns the next canned response.
func (s *Static) Generate(_ context.Context, prompt string, _ *schema.Schema) (map[string]any, error) {
	s.Prompts = append(s.Prompts, prompt)
	s.calls++
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.Responses) == 0 {
		return nil, fmt.Errorf("static backend has no responses")
	}
	idx := s.calls - 1
	if idx >= len(s.Responses) {
		idx = len(s.Responses) - 1
	}
	return s.Responses[idx], nil
}
