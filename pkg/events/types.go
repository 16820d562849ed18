// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Events are published inside the same transaction that records them,
// so subscribers never observe a notification for a row that was rolled
// back. Each event lands in two places:
//
//   - the events table (for catchup after reconnect), and
//   - a pg_notify channel (for live delivery to every pod).
//
// Clients subscribe to per-project channels and receive generation
// progress as it happens:
//
//	project.status  {status: "generating" | "completed" | "failed" | ...}
//	stage.status    {stage: "spec", status: "started" | "completed" | ...}
//	run.status      {run_id: "...", status: "running" | "passed" | ...}
//
// stage.status and run.status carry enough context to render a progress
// view without fetching the project; project.status is also mirrored to
// the global "projects" channel for list pages.
//
// stream.chunk events are transient (NOTIFY only, never persisted):
// they carry LLM output deltas for a live typing effect and are lost on
// reconnect. The terminal stage.status event always carries the final
// outcome, so a client that missed chunks still converges.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Project lifecycle — published on every status transition.
	EventTypeProjectStatus = "project.status"

	// Stage lifecycle — single event type for all pipeline stage transitions.
	EventTypeStageStatus = "stage.status"

	// Verification run lifecycle — queued, claimed, terminal.
	EventTypeRunStatus = "run.status"
)

// Stage lifecycle status values (used in StageStatusPayload.Status).
const (
	StageStatusStarted   = "started"
	StageStatusCompleted = "completed"
	StageStatusFailed    = "failed"
	StageStatusSkipped   = "skipped"
)

// Pipeline stage names (used in StageStatusPayload.Stage).
const (
	StageSpec     = "spec"
	StageValidate = "validate"
	StageRender   = "render"
	StagePackage  = "package"
	StageVerify   = "verify"
	StageRepair   = "repair"
	StageReview   = "review"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// LLM streaming chunks — high-frequency, ephemeral.
	EventTypeStreamChunk = "stream.chunk"
)

// GlobalProjectsChannel is the channel for project-level status events.
// The project list page subscribes to this for real-time updates.
const GlobalProjectsChannel = "projects"

// ProjectChannel returns the channel name for a specific project's events.
// Format: "project:{project_id}"
func ProjectChannel(projectID string) string {
	return "project:" + projectID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "project:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
