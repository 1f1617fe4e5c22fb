package repair

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statforge/statforge/internal/schema"
)

func TestFileSink_RecordAndLoad(t *testing.T) {
	t.Parallel()
	sink := &FileSink{Dir: t.TempDir()}

	first := Report{
		Kind:      schema.KindAction,
		Attempts:  3,
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Errors:    []string{"actionType: missing required field: actionType"},
	}
	require.NoError(t, sink.RecordFailure(first))
	require.NoError(t, sink.RecordFailure(Report{Kind: schema.KindItem, Attempts: 1}))

	reports, err := sink.Load()
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, schema.KindAction, reports[0].Kind)
	assert.Equal(t, 3, reports[0].Attempts)
	assert.Equal(t, first.Errors, reports[0].Errors)
	assert.Equal(t, schema.KindItem, reports[1].Kind)
}

func TestFileSink_LoadMissingStore(t *testing.T) {
	t.Parallel()
	sink := &FileSink{Dir: t.TempDir()}
	reports, err := sink.Load()
	require.NoError(t, err)
	assert.Nil(t, reports)
}

func TestFileSink_CreatesDirectory(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "nested", "state")
	sink := &FileSink{Dir: dir}

	require.NoError(t, sink.RecordFailure(Report{Kind: schema.KindActor, Attempts: 2}))

	if _, err := os.Stat(filepath.Join(dir, "failures.json")); err != nil {
		t.Fatalf("store file missing: %v", err)
	}
}

func TestFileSink_NoTempFileLeftBehind(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	sink := &FileSink{Dir: dir}
	require.NoError(t, sink.RecordFailure(Report{Kind: schema.KindAction, Attempts: 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "failures.json", entries[0].Name())
}
