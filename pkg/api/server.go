// Package api is the HTTP surface of the platform: auth, generation,
// project and thread management, document ingestion, verification runs,
// and WebSocket event streaming. Handlers validate input, delegate to
// the service layer, and map its errors to HTTP responses.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/forge/pkg/auth"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/pkg/events"
	"github.com/forgeworks/forge/pkg/pipeline"
	"github.com/forgeworks/forge/pkg/queue"
	"github.com/forgeworks/forge/pkg/rag"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/storage"
)

// Deps bundles the collaborators the HTTP layer serves. WorkerPool and
// ConnManager may be nil: health reporting then skips the pool and /ws
// returns 503.
type Deps struct {
	Config      *config.Config
	DB          *database.Client
	Users       *services.UserService
	Projects    *services.ProjectService
	Threads     *services.ThreadService
	Documents   *services.DocumentService
	Runs        *services.RunService
	Pipeline    *pipeline.Pipeline
	RAG         *rag.Service
	Store       *storage.Store
	WorkerPool  *queue.WorkerPool
	ConnManager *events.ConnectionManager
}

// Server holds the gin engine and everything the handlers reach for.
type Server struct {
	config          *config.Config
	dbClient        *database.Client
	userService     *services.UserService
	projectService  *services.ProjectService
	threadService   *services.ThreadService
	documentService *services.DocumentService
	runService      *services.RunService
	pipeline        *pipeline.Pipeline
	ragService      *rag.Service
	store           *storage.Store
	workerPool      *queue.WorkerPool
	connManager     *events.ConnectionManager
	tokens          *auth.TokenIssuer

	engine *gin.Engine
	http   *http.Server
}

// NewServer builds the server and registers all routes.
func NewServer(deps Deps) *Server {
	s := &Server{
		config:          deps.Config,
		dbClient:        deps.DB,
		userService:     deps.Users,
		projectService:  deps.Projects,
		threadService:   deps.Threads,
		documentService: deps.Documents,
		runService:      deps.Runs,
		pipeline:        deps.Pipeline,
		ragService:      deps.RAG,
		store:           deps.Store,
		workerPool:      deps.WorkerPool,
		connManager:     deps.ConnManager,
		tokens:          auth.NewTokenIssuer(deps.Config.SecretKey, deps.Config.TokenExpiry),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), securityHeaders(), corsMiddleware(deps.Config.CORSOrigins))
	s.registerRoutes(engine)
	s.engine = engine
	s.http = &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(e *gin.Engine) {
	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/auth/register", s.registerHandler)
	v1.POST("/auth/token", s.tokenHandler)

	authed := v1.Group("", authRequired(s.tokens))
	authed.GET("/auth/me", s.meHandler)

	authed.GET("/models", s.listModelsHandler)

	authed.POST("/generate", s.generateHandler)
	authed.POST("/generate-from-prompt", s.generateFromPromptHandler)

	authed.GET("/projects", s.listProjectsHandler)
	authed.GET("/projects/:id", s.getProjectHandler)
	authed.DELETE("/projects/:id", s.deleteProjectHandler)
	authed.GET("/projects/:id/download", s.downloadProjectHandler)

	authed.GET("/projects/:id/threads", s.listThreadsHandler)
	authed.POST("/projects/:id/threads", s.createThreadHandler)
	authed.GET("/projects/:id/threads/:tid", s.getThreadHandler)
	authed.POST("/projects/:id/threads/:tid/chat", s.chatHandler)

	authed.POST("/projects/:id/verify-report", s.verifyReportHandler)
	authed.POST("/projects/:id/verify", s.verifyRunHandler)
	authed.POST("/projects/:id/fix", s.fixHandler)
	authed.GET("/projects/:id/runs/latest", s.latestRunHandler)
	authed.GET("/runs/:id", s.getRunHandler)

	authed.POST("/documents", s.uploadDocumentHandler)
	authed.GET("/documents", s.listDocumentsHandler)
	authed.DELETE("/documents/:id", s.deleteDocumentHandler)

	authed.GET("/ws", s.wsHandler)
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on addr and serves until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.http.Addr = addr
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
