// Package queue executes enqueued runs on a pool of polling workers. Runs
// are claimed atomically with FOR UPDATE SKIP LOCKED so multiple replicas
// can share one queue; heartbeats plus orphan detection recover runs whose
// executor died mid-flight.
package queue

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates the queue is empty.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit is reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor executes a claimed run end to end. The executor owns the run's
// status machine: it transitions to running, persists per-phase metrics
// progressively, and writes the terminal status itself. The worker only
// handles claiming, the outer timeout, heartbeats and the cancel registry.
type RunExecutor interface {
	ExecuteFullPipeline(ctx context.Context, projectID, runID string) error
}

// PoolHealth is the worker pool's health snapshot.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
