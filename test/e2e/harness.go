// Package e2e provides end-to-end test infrastructure for the forge
// platform: a complete instance over a real Postgres schema, with the
// LLM providers and the sandbox verifier replaced by scripted doubles.
package e2e

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/pkg/agent"
	"github.com/forgeworks/forge/pkg/api"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/pkg/events"
	"github.com/forgeworks/forge/pkg/llm"
	"github.com/forgeworks/forge/pkg/pipeline"
	"github.com/forgeworks/forge/pkg/queue"
	"github.com/forgeworks/forge/pkg/rag"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/storage"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/forgeworks/forge/test/util"
)

// TestApp boots a complete forge instance for e2e testing.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Scripted doubles
	LLM      *ScriptedProvider
	Verifier *ScriptedVerifier
	Embedder *WordBagEmbedder

	// Real infrastructure
	Projects       *services.ProjectService
	Runs           *services.RunService
	EventPublisher *events.EventPublisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	WorkerPool     *queue.WorkerPool
	Pipeline       *pipeline.Pipeline
	Server         *api.Server

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/api/v1/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg         *config.Config
	provider    *ScriptedProvider
	verifier    *ScriptedVerifier
	workerCount int
	runTimeout  time.Duration
	dbClient    *database.Client // injected DB client (for multi-replica tests)
	podID       string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithProvider sets a pre-scripted LLM provider.
func WithProvider(p *ScriptedProvider) TestAppOption {
	return func(c *testAppConfig) { c.provider = p }
}

// WithVerifier sets a pre-scripted sandbox verifier.
func WithVerifier(v *ScriptedVerifier) TestAppOption {
	return func(c *testAppConfig) { c.verifier = v }
}

// WithWorkerCount sets the number of verification workers.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithRunTimeout sets the per-run execution timeout.
func WithRunTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.runTimeout = d }
}

// WithDBClient injects a pre-created database client, skipping the
// default per-test schema creation. Used when multiple TestApp
// instances must share one schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID overrides the auto-generated pod ID.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// NewTestApp wires the full application the way cmd/forge does, with a
// scripted LLM provider behind the real router and agents, a scripted
// verifier behind the real repair loop, and the HTTP server on a
// random port.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		workerCount: 1,
		runTimeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.cfg == nil {
		tc.cfg = DefaultTestConfig(t)
	}
	tc.cfg.Queue.WorkerCount = tc.workerCount
	tc.cfg.Queue.MaxConcurrentRuns = tc.workerCount
	tc.cfg.Queue.RunTimeout = tc.runTimeout
	if tc.provider == nil {
		tc.provider = NewScriptedProvider()
	}
	if tc.verifier == nil {
		tc.verifier = NewScriptedVerifier()
	}

	// 1. Database — per-test schema unless a shared client is injected.
	var dbClient *database.Client
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Event publishing — real, backed by the test DB.
	eventPublisher := events.NewEventPublisher(dbClient.DB())

	// 3. Streaming infrastructure.
	eventService := services.NewEventService(entClient)
	adapter := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(adapter, 5*time.Second)

	// 4. NotifyListener — real, dedicated pgx connection.
	ctx := context.Background()
	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), connManager)
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)

	// 5. Domain services.
	userService := services.NewUserService(entClient)
	projectService := services.NewProjectService(entClient)
	threadService := services.NewThreadService(entClient)
	documentService := services.NewDocumentService(entClient)
	runService := services.NewRunService(entClient)

	// 6. LLM router over the scripted provider. The same double serves
	// both provider slots; routing is by model ID either way.
	router := llm.NewRouter(tc.cfg.Models, map[string]llm.Provider{
		config.ProviderGoogle: tc.provider,
		config.ProviderGroq:   tc.provider,
	})

	// 7. RAG over a deterministic embedder.
	embedder := NewWordBagEmbedder()
	ragService := rag.NewService(documentService, embedder, dbClient.DB())

	// 8. Generation pipeline.
	store := storage.NewStore(tc.cfg.DataDir)
	specAgent := agent.NewSpecAgent(router)
	pipe := pipeline.New(projectService, specAgent, ragService, eventPublisher, store, tc.cfg.StagingDir())

	// 9. Verification executor and worker pool. The agents are real;
	// only the docker layer is scripted.
	fixer := agent.NewFixAgent(router, "")
	reviewer := agent.NewCodeReviewer(router, "")
	executor := queue.NewExecutor(projectService, store, tc.verifier, fixer, reviewer,
		tc.cfg.Sandbox, tc.cfg.StagingDir(), eventPublisher)

	podID := tc.podID
	if podID == "" {
		podID = "e2e-" + strings.ReplaceAll(t.Name(), "/", "_")
	}
	workerPool := queue.NewWorkerPool(podID, entClient, tc.cfg.Queue, executor, eventPublisher)
	require.NoError(t, workerPool.Start(ctx))

	// 10. HTTP server on a random port.
	server := api.NewServer(api.Deps{
		Config:      tc.cfg,
		DB:          dbClient,
		Users:       userService,
		Projects:    projectService,
		Threads:     threadService,
		Documents:   documentService,
		Runs:        runService,
		Pipeline:    pipe,
		RAG:         ragService,
		Store:       store,
		WorkerPool:  workerPool,
		ConnManager: connManager,
	})
	httpSrv := httptest.NewServer(server.Handler())

	app := &TestApp{
		Config:         tc.cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		LLM:            tc.provider,
		Verifier:       tc.verifier,
		Embedder:       embedder,
		Projects:       projectService,
		Runs:           runService,
		EventPublisher: eventPublisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		WorkerPool:     workerPool,
		Pipeline:       pipe,
		Server:         server,
		BaseURL:        httpSrv.URL,
		WSURL:          "ws" + strings.TrimPrefix(httpSrv.URL, "http") + "/api/v1/ws",
		t:              t,
	}

	// Cleanup in reverse-creation order.
	t.Cleanup(func() {
		httpSrv.Close()
		workerPool.Stop()
		notifyListener.Stop(context.Background())
		// DB cleanup handled by testdb.NewTestClient
	})

	return app
}

// DefaultTestConfig builds a config with fast queue intervals, no
// provider keys, and the catalog the fallback tests expect:
// gemini-2.0-flash → gemini-2.5-flash → (end), plus the Groq-hosted
// fix fallback model.
func DefaultTestConfig(t *testing.T) *config.Config {
	t.Helper()
	models := map[string]*config.ModelConfig{
		"gemini-2.0-flash": {
			Provider:        config.ProviderGoogle,
			Tier:            config.TierPrimary,
			Fallback:        "gemini-2.5-flash",
			MaxOutputTokens: 16384,
		},
		"gemini-2.5-flash": {
			Provider:        config.ProviderGoogle,
			Tier:            config.TierPrimary,
			MaxOutputTokens: 16384,
		},
		"llama-3.3-70b-versatile": {
			Provider:        config.ProviderGroq,
			Tier:            config.TierFallback,
			MaxOutputTokens: 8192,
		},
	}

	sandboxCfg := config.DefaultSandboxConfig()
	sandboxCfg.ReviewPosition = config.ReviewDisabled
	sandboxCfg.HealthTimeout = 2 * time.Second
	sandboxCfg.HealthPollInterval = 100 * time.Millisecond

	return &config.Config{
		Host:        "127.0.0.1",
		SecretKey:   "e2e-test-secret",
		TokenExpiry: time.Hour,
		DataDir:     t.TempDir(),
		Queue: &config.QueueConfig{
			WorkerCount:             1,
			MaxConcurrentRuns:       1,
			PollInterval:            100 * time.Millisecond,
			PollIntervalJitter:      50 * time.Millisecond,
			RunTimeout:              30 * time.Second,
			GracefulShutdownTimeout: 10 * time.Second,
			HeartbeatInterval:       5 * time.Second,
			OrphanDetectionInterval: time.Minute,
			OrphanThreshold:         time.Minute,
		},
		Sandbox:   sandboxCfg,
		RAG:       config.DefaultRAGConfig(),
		Retention: config.DefaultRetentionConfig(),
		Models:    config.NewModelRegistry(models, "gemini-2.0-flash"),
	}
}
