// Package e2e provides end-to-end test infrastructure for the assay
// pipeline: a full instance over a per-test database schema, a scripted
// agent client, and a real worker pool behind the HTTP API.
package e2e

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/api"
	"github.com/assaylab/assay/pkg/config"
	"github.com/assaylab/assay/pkg/database"
	"github.com/assaylab/assay/pkg/pipeline"
	"github.com/assaylab/assay/pkg/preflight"
	"github.com/assaylab/assay/pkg/queue"
	"github.com/assaylab/assay/pkg/ranking"
	"github.com/assaylab/assay/pkg/remediation"
	"github.com/assaylab/assay/pkg/services"
	"github.com/assaylab/assay/pkg/snapshot"
	testdb "github.com/assaylab/assay/test/database"
)

// TestApp boots a complete assay instance for e2e testing.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Scripted agent replies stand in for the gRPC agent service.
	Agent *agent.ScriptedClient

	// Domain services, exposed for direct state assertions.
	Projects    *services.ProjectService
	Specs       *services.SpecService
	Runs        *services.RunService
	Candidates  *services.CandidateService
	Scenarios   *services.ScenarioService
	Evaluations *services.EvaluationService
	Issues      *services.IssueService
	Chats       *services.ChatService

	Orchestrator *pipeline.Orchestrator
	WorkerPool   *queue.WorkerPool
	Server       *api.Server

	BaseURL string // e.g. "http://127.0.0.1:54321"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg         *config.Config
	agentClient *agent.ScriptedClient
	workerCount int
	runTimeout  time.Duration
	dbClient    *database.Client // injected DB client (for multi-replica tests)
	podID       string           // custom pod ID (for multi-replica tests)
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithAgentClient sets a pre-scripted agent client.
func WithAgentClient(client *agent.ScriptedClient) TestAppOption {
	return func(c *testAppConfig) { c.agentClient = client }
}

// WithWorkerCount sets the number of worker pool goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithRunTimeout sets the pool-level wall-clock bound per run.
func WithRunTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.runTimeout = d }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used for multi-replica tests where multiple
// TestApp instances share the same database schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID overrides the auto-generated pod ID. Required for multi-replica
// tests so each replica gets a distinct identity for claiming and orphan
// detection.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// NewTestApp creates and starts a full assay test instance.
// Shutdown is registered via t.Cleanup automatically.
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
		tc.cfg = defaultTestConfig()
	}
	if tc.cfg.Queue == nil {
		tc.cfg.Queue = config.DefaultQueueConfig()
	}
	tc.cfg.Queue.WorkerCount = tc.workerCount
	tc.cfg.Queue.MaxConcurrentRuns = tc.workerCount
	tc.cfg.Queue.PollInterval = 100 * time.Millisecond
	tc.cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	tc.cfg.Queue.RunTimeout = tc.runTimeout
	tc.cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	tc.cfg.Queue.HeartbeatInterval = 5 * time.Second
	tc.cfg.Queue.OrphanDetectionInterval = 1 * time.Minute
	tc.cfg.Queue.OrphanThreshold = 1 * time.Minute

	if tc.agentClient == nil {
		tc.agentClient = agent.NewScriptedClient()
	}

	// 1. Database.
	var dbClient *database.Client
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Domain services.
	projects := services.NewProjectService(entClient)
	specs := services.NewSpecService(entClient)
	runs := services.NewRunService(entClient)
	candidates := services.NewCandidateService(entClient)
	scenarios := services.NewScenarioService(entClient)
	evaluations := services.NewEvaluationService(entClient)
	issues := services.NewIssueService(entClient)
	snapshots := services.NewSnapshotService(entClient)
	chats := services.NewChatService(entClient)

	// 3. Agent gateway over the scripted client.
	gateway := agent.NewGateway(tc.agentClient, tc.cfg)

	// 4. Pipeline.
	ranker := ranking.NewRanker(specs, candidates, evaluations)
	orchestrator := pipeline.NewOrchestrator(pipeline.Deps{
		Runs:            runs,
		Projects:        projects,
		Specs:           specs,
		Candidates:      candidates,
		Scenarios:       scenarios,
		Evaluations:     evaluations,
		Chats:           chats,
		Gateway:         gateway,
		Ranker:          ranker,
		EvalConcurrency: 2,
	})

	preflightChecker := preflight.NewChecker(specs, candidates)
	remediationEngine := remediation.NewEngine(issues, specs, runs, candidates, orchestrator)
	snapshotSvc := snapshot.NewService(snapshot.Deps{
		Snapshots:   snapshots,
		Projects:    projects,
		Specs:       specs,
		Runs:        runs,
		Candidates:  candidates,
		Scenarios:   scenarios,
		Evaluations: evaluations,
		Chats:       chats,
		Pipeline:    orchestrator,
	})

	// 5. Worker pool.
	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-test-%s", t.Name())
	}
	workerPool := queue.NewWorkerPool(podID, runs, tc.cfg.Queue, orchestrator)
	ctx := context.Background()
	require.NoError(t, workerPool.Start(ctx))

	// 6. HTTP server on a random port.
	server := api.NewServer(api.Deps{
		DB:           dbClient,
		Projects:     projects,
		Specs:        specs,
		Runs:         runs,
		Candidates:   candidates,
		Scenarios:    scenarios,
		Evaluations:  evaluations,
		Issues:       issues,
		Snapshots:    snapshots,
		Chats:        chats,
		Preflight:    preflightChecker,
		Orchestrator: orchestrator,
		Remediation:  remediationEngine,
		Snapshot:     snapshotSvc,
		Gateway:      gateway,
		Pool:         workerPool,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	httpServer := &http.Server{Handler: server.Router()}
	go func() {
		_ = httpServer.Serve(ln)
	}()

	app := &TestApp{
		Config:       tc.cfg,
		DBClient:     dbClient,
		EntClient:    entClient,
		Agent:        tc.agentClient,
		Projects:     projects,
		Specs:        specs,
		Runs:         runs,
		Candidates:   candidates,
		Scenarios:    scenarios,
		Evaluations:  evaluations,
		Issues:       issues,
		Chats:        chats,
		Orchestrator: orchestrator,
		WorkerPool:   workerPool,
		Server:       server,
		BaseURL:      fmt.Sprintf("http://%s", ln.Addr().String()),
		t:            t,
	}

	// Register cleanup in reverse-creation order.
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		workerPool.Stop()
		// DB cleanup handled by testdb.NewTestClient/SetupTestDatabase
	})

	return app
}

// defaultTestConfig creates a minimal config suitable for tests that don't
// provide their own.
func defaultTestConfig() *config.Config {
	return &config.Config{
		Defaults: config.DefaultDefaults(),
		Queue:    config.DefaultQueueConfig(),
		Agents:   map[string]*config.AgentRoleConfig{},
	}
}
