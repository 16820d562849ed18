// Forge platform server — serves the HTTP API, runs the verification
// worker pool, and streams generation progress over WebSockets.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/forgeworks/forge/pkg/agent"
	"github.com/forgeworks/forge/pkg/api"
	"github.com/forgeworks/forge/pkg/cleanup"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/pkg/events"
	"github.com/forgeworks/forge/pkg/llm"
	"github.com/forgeworks/forge/pkg/pipeline"
	"github.com/forgeworks/forge/pkg/queue"
	"github.com/forgeworks/forge/pkg/rag"
	"github.com/forgeworks/forge/pkg/sandbox"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/storage"
	"github.com/forgeworks/forge/pkg/version"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	envFile := flag.String("env", ".env", "Path to .env file")
	configFile := flag.String("config", "", "Path to forge.yaml overlay (overrides FORGE_CONFIG)")
	port := flag.Int("port", 0, "HTTP port (overrides PLATFORM_PORT)")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	if *configFile != "" {
		os.Setenv(config.EnvConfigFile, *configFile)
	}

	podID := resolvePodID()
	slog.Info("Starting forge", "version", version.Full(), "pod_id", podID)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(2)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	// 2. Initialize database (runs pending migrations)
	dbClient, err := database.NewClient(ctx, database.NewConfig(cfg.DatabaseURL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan requeue: runs this pod was executing
	// when it last died go back to pending before workers start.
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Startup orphan requeue failed", "error", err)
		// Non-fatal — the periodic scan covers it
	}

	// 4. Domain services
	userService := services.NewUserService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	threadService := services.NewThreadService(dbClient.Client)
	documentService := services.NewDocumentService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. LLM providers and router. A missing key disables its provider;
	// calls that land on it fail at request time, so a key-less dev
	// server still boots.
	providers := make(map[string]llm.Provider)
	if cfg.GoogleAPIKey != "" {
		google, err := llm.NewGoogleProvider(ctx, cfg.GoogleAPIKey)
		if err != nil {
			slog.Error("Failed to initialize Google provider", "error", err)
			os.Exit(1)
		}
		providers[config.ProviderGoogle] = google
	}
	if cfg.GroqAPIKey != "" {
		groq, err := llm.NewGroqProvider(cfg.GroqAPIKey)
		if err != nil {
			slog.Error("Failed to initialize Groq provider", "error", err)
			os.Exit(1)
		}
		providers[config.ProviderGroq] = groq
	}
	router := llm.NewRouter(cfg.Models, providers)
	slog.Info("LLM router initialized", "providers", len(providers))

	// 5a. RAG: document ingestion and retrieval
	var embedder rag.Embedder
	if cfg.GoogleAPIKey != "" {
		embedder, err = rag.NewGoogleEmbedder(ctx, cfg.GoogleAPIKey)
		if err != nil {
			slog.Error("Failed to initialize embedder", "error", err)
			os.Exit(1)
		}
	}
	ragService := rag.NewService(documentService, embedder, dbClient.DB())

	// 5b. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// NotifyListener holds a dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(cfg.DatabaseURL, connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5c. Generation pipeline
	store := storage.NewStore(cfg.DataDir)
	specAgent := agent.NewSpecAgent(router)
	pipe := pipeline.New(projectService, specAgent, ragService, eventPublisher, store, cfg.StagingDir())

	// 6. Verification run executor and worker pool (before HTTP server)
	ports := sandbox.NewPortPool(cfg.Sandbox.PortRangeStart, cfg.Sandbox.PortRangeEnd)
	verifier := sandbox.NewVerifier(cfg.Sandbox, ports)
	fixer := agent.NewFixAgent(router, "")
	reviewer := agent.NewCodeReviewer(router, "")
	executor := queue.NewExecutor(projectService, store, verifier, fixer, reviewer,
		cfg.Sandbox, cfg.StagingDir(), eventPublisher)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 6a. Retention loop. The run-requeue threshold sits well above the
	// pool's own orphan scan; a hit there means every pool died at once.
	retention := cleanup.NewService(cfg.Retention, eventService, runService,
		cfg.StagingDir(), 4*cfg.Queue.OrphanThreshold)
	retention.Start(ctx)

	// 7. HTTP server
	httpServer := api.NewServer(api.Deps{
		Config:      cfg,
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

	// 8. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("forge started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	serverFailed := false
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
		serverFailed = true
	}

	// 10. Graceful shutdown
	retention.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	// Stop worker pool (wait for active runs to complete)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if serverFailed {
		// os.Exit skips the deferred cleanup, so run it here.
		notifyListener.Stop(ctx)
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
