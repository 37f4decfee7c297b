// Assay orchestrator server — provides the HTTP API, manages queue workers,
// and drives the design/evaluate/rank pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/api"
	"github.com/assaylab/assay/pkg/cleanup"
	"github.com/assaylab/assay/pkg/config"
	"github.com/assaylab/assay/pkg/database"
	"github.com/assaylab/assay/pkg/pipeline"
	"github.com/assaylab/assay/pkg/preflight"
	"github.com/assaylab/assay/pkg/queue"
	"github.com/assaylab/assay/pkg/ranking"
	"github.com/assaylab/assay/pkg/remediation"
	"github.com/assaylab/assay/pkg/services"
	"github.com/assaylab/assay/pkg/snapshot"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

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
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting assay",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
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

	// 3. Domain services
	projectService := services.NewProjectService(dbClient.Client)
	specService := services.NewSpecService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client)
	candidateService := services.NewCandidateService(dbClient.Client)
	scenarioService := services.NewScenarioService(dbClient.Client)
	evaluationService := services.NewEvaluationService(dbClient.Client)
	issueService := services.NewIssueService(dbClient.Client)
	snapshotService := services.NewSnapshotService(dbClient.Client)
	chatService := services.NewChatService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup: runs this pod abandoned on its
	// previous life are failed before any worker claims new work.
	if err := queue.CleanupStartupOrphans(ctx, runService, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 5. Agent gateway over gRPC.
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	agentAddr := getEnv("AGENT_SERVICE_ADDR", "localhost:50051")
	agentClient, err := agent.NewGRPCAgentClient(agentAddr)
	if err != nil {
		slog.Error("Failed to initialize agent client", "addr", agentAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := agentClient.Close(); err != nil {
			slog.Error("Error closing agent client", "error", err)
		}
	}()
	gateway := agent.NewGateway(agentClient, cfg)
	slog.Info("Agent gateway initialized", "addr", agentAddr)

	// 6. Pipeline orchestrator and its collaborators
	ranker := ranking.NewRanker(specService, candidateService, evaluationService)
	orchestrator := pipeline.NewOrchestrator(pipeline.Deps{
		Runs:            runService,
		Projects:        projectService,
		Specs:           specService,
		Candidates:      candidateService,
		Scenarios:       scenarioService,
		Evaluations:     evaluationService,
		Chats:           chatService,
		Gateway:         gateway,
		Ranker:          ranker,
		EvalConcurrency: cfg.Defaults.EvalConcurrency,
	})

	preflightChecker := preflight.NewChecker(specService, candidateService)
	remediationEngine := remediation.NewEngine(issueService, specService, runService, candidateService, orchestrator)
	snapshotSvc := snapshot.NewService(snapshot.Deps{
		Snapshots:   snapshotService,
		Projects:    projectService,
		Specs:       specService,
		Runs:        runService,
		Candidates:  candidateService,
		Scenarios:   scenarioService,
		Evaluations: evaluationService,
		Chats:       chatService,
		Pipeline:    orchestrator,
	})

	// 7. Start worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, runService, cfg.Queue, orchestrator)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention sweep for ephemeral replay projects
	sweeper := cleanup.NewSweeper(projectService, cfg.Retention)
	sweeper.Start(ctx)

	// 9. HTTP server
	server := api.NewServer(api.Deps{
		DB:           dbClient,
		Projects:     projectService,
		Specs:        specService,
		Runs:         runService,
		Candidates:   candidateService,
		Scenarios:    scenarioService,
		Evaluations:  evaluationService,
		Issues:       issueService,
		Snapshots:    snapshotService,
		Chats:        chatService,
		Preflight:    preflightChecker,
		Orchestrator: orchestrator,
		Remediation:  remediationEngine,
		Snapshot:     snapshotSvc,
		Gateway:      gateway,
		Pool:         workerPool,
	})

	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Assay started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop taking HTTP traffic, then wait for active
	// runs up to the configured timeout.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	sweeper.Stop()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded; active runs will be orphaned")
	}

	slog.Info("Assay stopped")
}
