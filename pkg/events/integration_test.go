package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/pkg/services"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/forgeworks/forge/test/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	projectID    string // Pre-created Project (satisfies FK on events)
	channel      string // project:<projectID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create owner + project required by FK on events table
	user, err := dbClient.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String() + "@integration.test").
		SetPasswordHash("not-a-real-hash").
		Save(ctx)
	require.NoError(t, err)

	projectID := uuid.New().String()
	_, err = dbClient.Project.Create().
		SetID(projectID).
		SetUserID(user.ID).
		SetProjectName("integration-test").
		SetPrompt("Build a task tracker API").
		Save(ctx)
	require.NoError(t, err)

	channel := ProjectChannel(projectID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		projectID:    projectID,
		channel:      channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the connection.
// The connection is automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// storedPayload decodes the JSON text persisted in an events row.
func storedPayload(t *testing.T, evt *ent.Event) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(evt.Payload), &m))
	return m
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the env's channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// LISTEN is synchronous inside subscribe, but poll anyway so a future
	// change to async LISTEN doesn't turn this helper into a flake.
	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish first event (stage started)
	err := env.publisher.PublishStageStatus(ctx, env.projectID, StageStatusPayload{
		Type:      EventTypeStageStatus,
		ProjectID: env.projectID,
		Stage:     StageSpec,
		Status:    StageStatusStarted,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Publish second event (stage completed)
	err = env.publisher.PublishStageStatus(ctx, env.projectID, StageStatusPayload{
		Type:      EventTypeStageStatus,
		ProjectID: env.projectID,
		Stage:     StageSpec,
		Status:    StageStatusCompleted,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.projectID, events[0].ProjectID)
	assert.Equal(t, env.channel, events[0].Channel)
	first := storedPayload(t, events[0])
	assert.Equal(t, EventTypeStageStatus, first["type"])
	assert.Equal(t, StageStatusStarted, first["status"])

	second := storedPayload(t, events[1])
	assert.Equal(t, StageStatusCompleted, second["status"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish transient event (stream chunk)
	err := env.publisher.PublishStreamChunk(ctx, env.projectID, StreamChunkPayload{
		Type:      EventTypeStreamChunk,
		ProjectID: env.projectID,
		Delta:     "token data",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Query DB — should have zero persisted events
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t)

	// Publish a persistent event via EventPublisher
	err := env.publisher.PublishStageStatus(ctx, env.projectID, StageStatusPayload{
		Type:      EventTypeStageStatus,
		ProjectID: env.projectID,
		Stage:     StageRender,
		Status:    StageStatusStarted,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeStageStatus, msg["type"])
	assert.Equal(t, StageRender, msg["stage"])
	assert.Equal(t, env.projectID, msg["project_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_ProjectStatusFansOutToGlobalChannel(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Subscribe a second client to the global projects channel
	globalConn := env.connectWS(t)
	msg := readJSONTimeout(t, globalConn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: GlobalProjectsChannel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, globalConn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, globalConn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])
	require.Eventually(t, func() bool {
		return env.listener.isListening(GlobalProjectsChannel)
	}, 2*time.Second, 10*time.Millisecond)

	// And a client on the project channel
	projectConn := env.subscribeAndWait(t)

	err := env.publisher.PublishProjectStatus(ctx, env.projectID, ProjectStatusPayload{
		Type:      EventTypeProjectStatus,
		ProjectID: env.projectID,
		Status:    project.StatusGenerating,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Both subscribers receive the status event
	projMsg := readJSONTimeout(t, projectConn, 5*time.Second)
	assert.Equal(t, EventTypeProjectStatus, projMsg["type"])
	assert.Equal(t, "generating", projMsg["status"])
	assert.NotNil(t, projMsg["db_event_id"], "project channel copy is persistent")

	globalMsg := readJSONTimeout(t, globalConn, 5*time.Second)
	assert.Equal(t, EventTypeProjectStatus, globalMsg["type"])
	assert.Equal(t, env.projectID, globalMsg["project_id"])

	// Only the project-channel copy is persisted
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	globalEvents, err := env.eventService.GetEventsSince(ctx, GlobalProjectsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents, "global channel copy is transient")
}

func TestIntegration_StreamChunkDelivery(t *testing.T) {
	// Verifies the streaming protocol during generation:
	// 1. stage.status started (persistent)
	// 2. stream.chunk deltas (transient, small payloads)
	// 3. stage.status completed (persistent)
	// The client concatenates deltas for a live view; the terminal stage
	// event is what survives reconnects.
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	// 1. stage.status started (persistent)
	err := env.publisher.PublishStageStatus(ctx, env.projectID, StageStatusPayload{
		Type:      EventTypeStageStatus,
		ProjectID: env.projectID,
		Stage:     StageSpec,
		Status:    StageStatusStarted,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeStageStatus, msg["type"])
	assert.Equal(t, StageStatusStarted, msg["status"])

	// 2. Publish multiple stream.chunk deltas (transient)
	deltas := []string{`{"project_name": `, `"task-tracker", `, `"entities": [`, `...`, `]}`}
	for _, delta := range deltas {
		err := env.publisher.PublishStreamChunk(ctx, env.projectID, StreamChunkPayload{
			Type:      EventTypeStreamChunk,
			ProjectID: env.projectID,
			Stage:     StageSpec,
			Delta:     delta,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)

		msg := readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeStreamChunk, msg["type"])
		assert.Equal(t, delta, msg["delta"], "each chunk should carry only the new delta")
	}

	// 3. stage.status completed (persistent)
	err = env.publisher.PublishStageStatus(ctx, env.projectID, StageStatusPayload{
		Type:      EventTypeStageStatus,
		ProjectID: env.projectID,
		Stage:     StageSpec,
		Status:    StageStatusCompleted,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeStageStatus, msg["type"])
	assert.Equal(t, StageStatusCompleted, msg["status"])

	// Only the 2 persistent events should be in DB (started + completed).
	// The 5 stream.chunk deltas are transient — not persisted.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 2, "only persistent events should be in DB")
	assert.Equal(t, StageStatusStarted, storedPayload(t, events[0])["status"])
	assert.Equal(t, StageStatusCompleted, storedPayload(t, events[1])["status"])
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	stages := []string{StageSpec, StageValidate, StageRender}
	for _, stage := range stages {
		err := env.publisher.PublishStageStatus(ctx, env.projectID, StageStatusPayload{
			Type:      EventTypeStageStatus,
			ProjectID: env.projectID,
			Stage:     stage,
			Status:    StageStatusCompleted,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for _, stage := range stages {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeStageStatus, msg["type"])
		assert.Equal(t, stage, msg["stage"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for _, stage := range stages[1:] {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, stage, msg["stage"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
