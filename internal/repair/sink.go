package repair

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/statforge/statforge/internal/schema"
)

// Report is what the orchestrator hands to a diagnostics sink when a run
// exhausts its attempts. Payload and Errors are populated only when the
// matching orchestrator toggle is on.
type Report struct {
	Kind      schema.Kind    `json:"kind"`
	Attempts  int            `json:"attempts"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
	Errors    []string       `json:"errors,omitempty"`
}

// Sink passively receives failure reports. Implementations must tolerate
// concurrent calls. A sink can never change the outcome of a run: errors are
// ignored and panics are swallowed by the orchestrator.
type Sink interface {
	RecordFailure(report Report) error
}

func (o *Orchestrator) report(kind schema.Kind, diagnostics []Attempt, last Attempt) {
	if o.Sink == nil {
		return
	}

	report := Report{
		Kind:      kind,
		Attempts:  len(diagnostics),
		Timestamp: time.Now().UTC(),
	}
	if o.ReportPayload {
		report.Payload = last.Payload
	}
	if o.ReportErrors {
		report.Errors = FormatErrors(last.Errors)
	}

	defer func() {
		_ = recover()
	}()
	_ = o.Sink.RecordFailure(report)
}

// FileSink appends failure reports to a JSON file, one store per directory.
// Writes go through a temp file and rename so a crash never leaves a
// half-written store behind.
type FileSink struct {
	// Dir is the directory holding the report store. Created on first write.
	Dir string
}

const sinkFileName = "failures.json"

// RecordFailure loads the existing store, appends the report, and writes the
// store back atomically.
func (s *FileSink) RecordFailure(report Report) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create sink directory: %w", err)
	}

	reports, err := s.Load()
	if err != nil {
		reports = nil
	}
	reports = append(reports, report)

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal failure reports: %w", err)
	}

	path := filepath.Join(s.Dir, sinkFileName)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load returns all reports recorded so far. A missing store is not an error.
func (s *FileSink) Load() ([]Report, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, sinkFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read failure reports: %w", err)
	}
	var reports []Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("failed to parse failure reports: %w", err)
	}
	return reports, nil
}
