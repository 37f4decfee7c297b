// Package api exposes the pipeline over HTTP. Handlers are thin adapters:
// they bind the request, call one service or orchestrator method, and map
// errors with respondServiceError. No business logic lives here.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/database"
	"github.com/assaylab/assay/pkg/pipeline"
	"github.com/assaylab/assay/pkg/preflight"
	"github.com/assaylab/assay/pkg/queue"
	"github.com/assaylab/assay/pkg/remediation"
	"github.com/assaylab/assay/pkg/services"
	"github.com/assaylab/assay/pkg/snapshot"
)

// Deps wires the server's collaborators.
type Deps struct {
	DB           *database.Client
	Projects     *services.ProjectService
	Specs        *services.SpecService
	Runs         *services.RunService
	Candidates   *services.CandidateService
	Scenarios    *services.ScenarioService
	Evaluations  *services.EvaluationService
	Issues       *services.IssueService
	Snapshots    *services.SnapshotService
	Chats        *services.ChatService
	Preflight    *preflight.Checker
	Orchestrator *pipeline.Orchestrator
	Remediation  *remediation.Engine
	Snapshot     *snapshot.Service
	Gateway      *agent.Gateway
	Pool         *queue.WorkerPool
}

// Server is the HTTP API server.
type Server struct {
	deps   Deps
	logger *slog.Logger
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{
		deps:   deps,
		logger: slog.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.health)
	r.GET("/version", s.version)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/projects", s.createProject)
		v1.GET("/projects", s.listProjects)
		v1.GET("/projects/:id", s.getProject)
		v1.DELETE("/projects/:id", s.deleteProject)

		v1.GET("/projects/:id/problem-spec", s.getProblemSpec)
		v1.PUT("/projects/:id/problem-spec", s.putProblemSpec)
		v1.GET("/projects/:id/world-model", s.getWorldModel)
		v1.PUT("/projects/:id/world-model", s.putWorldModel)
		v1.POST("/projects/:id/preflight", s.runPreflight)
		v1.GET("/projects/:id/guidance", s.getGuidance)

		v1.POST("/projects/:id/runs", s.createRun)
		v1.GET("/projects/:id/runs", s.listRuns)
		v1.GET("/runs/:id", s.getRun)
		v1.POST("/runs/:id/cancel", s.cancelRun)
		v1.POST("/runs/:id/phases/:phase", s.executePhase)

		v1.GET("/runs/:id/candidates", s.listRunCandidates)
		v1.GET("/runs/:id/evaluations", s.listRunEvaluations)
		v1.GET("/runs/:id/scenario-suite", s.getScenarioSuite)
		v1.GET("/projects/:id/candidates", s.listProjectCandidates)
		v1.POST("/projects/:id/candidates", s.createCandidate)

		v1.POST("/projects/:id/issues", s.createIssue)
		v1.GET("/projects/:id/issues", s.listIssues)
		v1.GET("/issues/:id", s.getIssue)
		v1.POST("/issues/:id/resolve", s.resolveIssue)
		v1.POST("/issues/:id/feedback", s.suggestFeedback)

		v1.POST("/projects/:id/snapshots", s.captureSnapshot)
		v1.GET("/projects/:id/snapshots", s.listSnapshots)
		v1.GET("/snapshots/:id", s.getSnapshot)
		v1.PATCH("/snapshots/:id", s.updateSnapshot)
		v1.DELETE("/snapshots/:id", s.deleteSnapshot)
		v1.POST("/snapshots/:id/restore", s.restoreSnapshot)
		v1.POST("/snapshots/:id/replay", s.replaySnapshot)
		v1.POST("/snapshot-tests", s.runSnapshotTests)

		v1.POST("/projects/:id/chat-sessions", s.createChatSession)
		v1.GET("/projects/:id/chat-sessions", s.listChatSessions)
		v1.POST("/chat-sessions/:id/messages", s.createMessage)
		v1.GET("/chat-sessions/:id/messages", s.listMessages)
	}

	return r
}

// requestLogger logs one line per request with method, path, status and
// latency.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// health handles GET /health with a database ping.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := s.deps.DB.Health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	body := gin.H{
		"status":   "healthy",
		"database": dbHealth,
	}
	if s.deps.Pool != nil {
		body["queue"] = s.deps.Pool.Health()
	}
	c.JSON(http.StatusOK, body)
}
