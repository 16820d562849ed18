package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/forgeworks/forge/ent/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(StageStatusPayload{
			Type:      EventTypeStageStatus,
			ProjectID: "abc-123",
			Stage:     StageRender,
			Status:    StageStatusCompleted,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeStageStatus)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(StageStatusPayload{
			Type:      EventTypeStageStatus,
			ProjectID: "abc-123",
			Stage:     StageVerify,
			Status:    StageStatusFailed,
			Message:   strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(StreamChunkPayload{
			Type:  EventTypeStreamChunk,
			Delta: "hello",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(StageStatusPayload{
			Type:      EventTypeStageStatus,
			ProjectID: "proj-789",
			Stage:     StageVerify,
			Status:    StageStatusFailed,
			Message:   strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeStageStatus)
		assert.Contains(t, result, "proj-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to StageStatusPayload, the base overhead grows
		// and the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(StageStatusPayload{Type: "t"})
		messageSize := 7900 - len(base) - 20
		payload, _ := json.Marshal(StageStatusPayload{
			Type:    "t",
			Message: strings.Repeat("b", messageSize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(ProjectStatusPayload{
			Type:      EventTypeProjectStatus,
			ProjectID: "proj-1",
			Status:    project.StatusGenerating,
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "proj-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(StageStatusPayload{
			Type:      EventTypeStageStatus,
			ProjectID: "proj-789",
			Stage:     StageRepair,
			Status:    StageStatusFailed,
			Message:   strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "proj-789")
	})

	t.Run("truncated payload without project_id keeps empty routing field", func(t *testing.T) {
		payload, _ := json.Marshal(StreamChunkPayload{
			Type:  EventTypeStreamChunk,
			Delta: strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestStageStatusPayload_JSON(t *testing.T) {
	payload := StageStatusPayload{
		Type:      EventTypeStageStatus,
		ProjectID: "proj-123",
		Stage:     StageSpec,
		Status:    StageStatusStarted,
		Timestamp: "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded StageStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeStageStatus, decoded.Type)
	assert.Equal(t, "proj-123", decoded.ProjectID)
	assert.Equal(t, StageSpec, decoded.Stage)
	assert.Equal(t, StageStatusStarted, decoded.Status)
	assert.Equal(t, "2026-02-10T12:00:00Z", decoded.Timestamp)

	// Message is omitted when empty
	assert.NotContains(t, string(data), "message")
}

func TestProjectStatusPayload_JSON(t *testing.T) {
	payload := ProjectStatusPayload{
		Type:      EventTypeProjectStatus,
		ProjectID: "proj-200",
		Status:    project.StatusFailed,
		Error:     "validation failed",
		Timestamp: "2026-02-13T10:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ProjectStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeProjectStatus, decoded.Type)
	assert.Equal(t, "proj-200", decoded.ProjectID)
	assert.Equal(t, project.StatusFailed, decoded.Status)
	assert.Equal(t, "validation failed", decoded.Error)

	// Error is omitted for non-failure transitions
	ok, _ := json.Marshal(ProjectStatusPayload{
		Type:      EventTypeProjectStatus,
		ProjectID: "proj-200",
		Status:    project.StatusCompleted,
	})
	assert.NotContains(t, string(ok), "error")
}

func TestRunStatusPayload_JSON(t *testing.T) {
	payload := RunStatusPayload{
		Type:      EventTypeRunStatus,
		ProjectID: "proj-300",
		RunID:     "run-1",
		Status:    "running",
		Attempt:   2,
		Timestamp: "2026-02-13T10:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded RunStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeRunStatus, decoded.Type)
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, 2, decoded.Attempt)

	// Attempt is omitted before the first repair pass
	first, _ := json.Marshal(RunStatusPayload{
		Type:      EventTypeRunStatus,
		ProjectID: "proj-300",
		RunID:     "run-1",
		Status:    "pending",
	})
	assert.NotContains(t, string(first), "attempt")
}
