package repair

import (
	"context"

	"github.com/statforge/statforge/internal/schema"
)

// Handle resumes an exhausted repair run. It remembers the last normalized
// snapshot and the diagnostics accumulated so far, so a caller can retry with
// a different backend, attempt budget, or hand-edited payload without
// replaying the original input.
type Handle struct {
	Kind        schema.Kind
	LastPayload map[string]any
	Diagnostics []Attempt

	orch *Orchestrator
}

// Overrides adjusts a resumed run. Zero-valued fields keep the settings of
// the orchestrator that produced the handle.
type Overrides struct {
	// Payload replaces the starting candidate. Nil resumes from the last
	// normalized snapshot.
	Payload map[string]any
	// MaxAttempts replaces the attempt budget when positive.
	MaxAttempts int
	// Backend replaces the repair backend when non-nil.
	Backend Backend
	// Prompt replaces the prompt builder when non-nil.
	Prompt PromptBuilder
}

// Invoke restarts the repair loop from the handle's snapshot, applying any
// overrides. The resumed run is independent: its attempt numbering starts at
// one and its diagnostics do not extend the handle's.
func (h *Handle) Invoke(ctx context.Context, ov Overrides) (map[string]any, error) {
	next := *h.orch
	if ov.MaxAttempts > 0 {
		next.MaxAttempts = ov.MaxAttempts
	}
	if ov.Backend != nil {
		next.Backend = ov.Backend
	}
	if ov.Prompt != nil {
		next.Prompt = ov.Prompt
	}

	payload := ov.Payload
	if payload == nil {
		payload = h.LastPayload
	}
	return next.Run(ctx, h.Kind, payload)
}
