package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_ReplaysResponsesAndRecordsPrompts(t *testing.T) {
	t.Parallel()
	stub := &Static{Responses: []map[string]any{
		{"name": "First"},
		{"name": "Second"},
	}}

	first, err := stub.Generate(context.Background(), "fix this", nil)
	require.NoError(t, err)
	assert.Equal(t, "First", first["name"])

	second, err := stub.Generate(context.Background(), "fix this again", nil)
	require.NoError(t, err)
	assert.Equal(t, "Second", second["name"])

	// The sequence is exhausted; the last response repeats.
	third, err := stub.Generate(context.Background(), "one more", nil)
	require.NoError(t, err)
	assert.Equal(t, "Second", third["name"])

	assert.Equal(t, []string{"fix this", "fix this again", "one more"}, stub.Prompts)
}

func TestStatic_ErrTakesPrecedence(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	stub := &Static{Responses: []map[string]any{{"name": "unused"}}, Err: boom}

	_, err := stub.Generate(context.Background(), "fix this", nil)
	assert.Equal(t, boom, err)
	assert.Len(t, stub.Prompts, 1, "failed calls still record their prompt")
}

func TestStatic_NoResponses(t *testing.T) {
	t.Parallel()
	stub := &Static{}

	_, err := stub.Generate(context.Background(), "fix this", nil)
	assert.Error(t, err)
}
