// Package repair runs the validate-normalize-repair loop. A candidate record
// is normalized and validated; on structural failure an external generative
// backend is asked for a replacement candidate, which goes through the same
// path, bounded by an attempt limit. Success short-circuits immediately.
// Exhaustion surfaces a typed error carrying the full per-attempt diagnostics
// and a resumable handle.
package repair

import (
	"context"
	"fmt"

	"github.com/mitchellh/copystructure"

	"github.com/statforge/statforge/internal/normalize"
	"github.com/statforge/statforge/internal/schema"
	"github.com/statforge/statforge/internal/traits"
)

// DefaultMaxAttempts is the attempt limit when the caller does not set one.
const DefaultMaxAttempts = 3

// Backend proposes a replacement candidate given a repair prompt and the
// declared schema of the kind being repaired. The orchestrator requires
// nothing else from it: authentication, model selection, and prompt rendering
// transport are the backend's business. A call error aborts the orchestration
// immediately and is returned unwrapped.
type Backend interface {
	Generate(ctx context.Context, prompt string, desc *schema.Schema) (map[string]any, error)
}

// Attempt records one normalize+validate pass that failed.
type Attempt struct {
	Attempt    int             // 1-based attempt number
	Errors     []*schema.Error // structural errors from this pass
	Payload    map[string]any  // candidate fed into normalization
	Normalized map[string]any  // normalized candidate that failed validation
}

// Orchestrator drives bounded validate-normalize-repair runs. The zero value
// performs a single pass with no backend; all fields are optional.
// Orchestrators are stateless across Run calls and safe for concurrent use.
type Orchestrator struct {
	// MaxAttempts bounds validation attempts. Zero means DefaultMaxAttempts;
	// values below one are raised to one.
	MaxAttempts int
	// Backend proposes replacement candidates. Nil means exactly one
	// normalize+validate pass happens regardless of MaxAttempts.
	Backend Backend
	// Prompt builds the repair prompt. Nil means DefaultPrompt.
	Prompt PromptBuilder
	// Sink passively receives failure reports on exhaustion. Optional.
	Sink Sink
	// ReportPayload includes the last invalid payload in sink reports.
	ReportPayload bool
	// ReportErrors includes formatted validation errors in sink reports.
	ReportErrors bool
	// Traits supplies the trait allowlist for normalization. Optional.
	Traits traits.Provider
}

// Run normalizes and validates a candidate record, delegating to the repair
// backend between failed attempts. It returns the first conformant record, or
// a *ExhaustedError once attempts run out. Backend call errors are returned
// unwrapped and unrecorded beyond the structural failure that triggered the
// call.
func (o *Orchestrator) Run(ctx context.Context, kind schema.Kind, payload map[string]any) (map[string]any, error) {
	validator, err := schema.ValidatorOf(kind)
	if err != nil {
		return nil, err
	}

	maxAttempts := o.maxAttempts()
	candidate, err := deepCopy(payload)
	if err != nil {
		return nil, fmt.Errorf("copying payload: %w", err)
	}

	var diagnostics []Attempt
	for attempt := 1; ; attempt++ {
		normalized := normalize.Record(kind, candidate, normalize.WithTraitProvider(o.Traits))
		result := validator.Validate(normalized)
		if result.Valid {
			return normalized, nil
		}

		diagnostics = append(diagnostics, Attempt{
			Attempt:    attempt,
			Errors:     result.Errors,
			Payload:    candidate,
			Normalized: normalized,
		})

		if o.Backend == nil || attempt == maxAttempts {
			break
		}

		prompt := o.promptBuilder()(Context{
			Kind:        kind,
			Attempt:     attempt,
			MaxAttempts: maxAttempts,
			Errors:      result.Errors,
			Normalized:  normalized,
			Diagnostics: diagnostics,
		})
		desc, _ := schema.Of(kind)
		next, err := o.Backend.Generate(ctx, prompt, desc)
		if err != nil {
			return nil, err
		}
		candidate = next
	}

	last := diagnostics[len(diagnostics)-1]
	o.report(kind, diagnostics, last)

	return nil, &ExhaustedError{
		Kind:            kind,
		Diagnostics:     diagnostics,
		OriginalPayload: payload,
		LastNormalized:  last.Normalized,
		Handle: &Handle{
			Kind:        kind,
			LastPayload: last.Normalized,
			Diagnostics: diagnostics,
			orch:        o,
		},
	}
}

func (o *Orchestrator) maxAttempts() int {
	if o.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	if o.MaxAttempts < 1 {
		return 1
	}
	return o.MaxAttempts
}

func (o *Orchestrator) promptBuilder() PromptBuilder {
	if o.Prompt != nil {
		return o.Prompt
	}
	return DefaultPrompt
}

func deepCopy(data map[string]any) (map[string]any, error) {
	if data == nil {
		return map[string]any{}, nil
	}
	cp, err := copystructure.Copy(data)
	if err != nil {
		return nil, err
	}
	return cp.(map[string]any), nil
}
