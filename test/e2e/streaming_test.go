package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wsTimeout = 10 * time.Second

// TestStreamingCatchup subscribes after the generation finished and
// expects the stored history to replay in publish order: every status
// transition and stage event is there even though the client connected
// late.
func TestStreamingCatchup(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	token := app.RegisterUser(t, "catchup@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)
	projectID := resp["project_id"].(string)

	ctx, cancel := context.WithTimeout(context.Background(), wsTimeout)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL, token)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.Subscribe("project:"+projectID))
	_, err = ws.WaitForEventType("subscription.confirmed", wsTimeout)
	require.NoError(t, err)

	_, err = ws.WaitForProjectStatus("awaiting_verification", wsTimeout)
	require.NoError(t, err)

	// Status transitions replay in order.
	var statuses []string
	for _, e := range ws.EventsByType("project.status") {
		statuses = append(statuses, e.Parsed["status"].(string))
	}
	assert.Equal(t, []string{"pending", "generating", "awaiting_verification"}, statuses)

	// Each pipeline stage reported start before completion.
	stages := ws.EventsByType("stage.status")
	seen := map[string]string{}
	for _, e := range stages {
		stage := e.Parsed["stage"].(string)
		status := e.Parsed["status"].(string)
		if status == "started" {
			assert.NotContains(t, seen, stage, "stage %s started twice", stage)
			seen[stage] = "started"
		} else {
			assert.Equal(t, "started", seen[stage], "stage %s finished before starting", stage)
			seen[stage] = status
		}
	}
	for _, stage := range []string{"spec", "validate", "render", "package"} {
		assert.Equal(t, "completed", seen[stage], "stage %s did not complete", stage)
	}
}

// TestStreamingLive subscribes to the global projects channel before
// anything happens and watches a generation arrive in real time.
func TestStreamingLive(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	token := app.RegisterUser(t, "live@example.com")

	ctx, cancel := context.WithTimeout(context.Background(), wsTimeout)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL, token)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.Subscribe("projects"))
	_, err = ws.WaitForEventType("subscription.confirmed", wsTimeout)
	require.NoError(t, err)

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", true)
	projectID := resp["project_id"].(string)

	evt, err := ws.WaitForProjectStatus("awaiting_verification", wsTimeout)
	require.NoError(t, err)
	assert.Equal(t, projectID, evt.Parsed["project_id"])
}

// TestStreamingVerificationRun watches a queued verification over the
// project channel: run claim, sandbox attempt, verdict.
func TestStreamingVerificationRun(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddForModel("gemini-2.0-flash", ScriptEntry{Response: TodoSpecJSON})
	app.Verifier.AddReport(PassingReport())
	token := app.RegisterUser(t, "run-stream@example.com")

	resp := app.GenerateFromPrompt(t, token, "Build a todo API with tasks", false)
	projectID := resp["project_id"].(string)

	ctx, cancel := context.WithTimeout(context.Background(), wsTimeout)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL, token)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.Subscribe("project:"+projectID))
	_, err = ws.WaitForEventType("subscription.confirmed", wsTimeout)
	require.NoError(t, err)

	// Catchup plus live events converge on the terminal status.
	_, err = ws.WaitForProjectStatus("completed", wsTimeout)
	require.NoError(t, err)

	_, err = ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "stage.status" &&
			e.Parsed["stage"] == "verify" && e.Parsed["status"] == "completed"
	}, wsTimeout)
	require.NoError(t, err)

	runEvents := ws.EventsByType("run.status")
	assert.NotEmpty(t, runEvents, "run progress events missing")
}

// TestStreamingPing checks the keepalive round trip.
func TestStreamingPing(t *testing.T) {
	app := NewTestApp(t)
	token := app.RegisterUser(t, "ping@example.com")

	ctx, cancel := context.WithTimeout(context.Background(), wsTimeout)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL, token)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.SendAction("ping"))
	_, err = ws.WaitForEventType("pong", wsTimeout)
	require.NoError(t, err)
}
