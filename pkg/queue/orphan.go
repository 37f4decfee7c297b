package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned runs. All pods run this
// independently — recovery is idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running runs with stale heartbeats and fails
// them terminally. The run will not be retried; its partial metrics survive.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.runs.FindOrphanedRuns(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, r := range orphans {
		if err := recoverOrphanedRun(ctx, p.runs, r); err != nil {
			slog.Error("Failed to recover orphaned run",
				"run_id", r.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun fails a single orphaned run.
func recoverOrphanedRun(ctx context.Context, runs *services.RunService, r *ent.Run) error {
	lastHeartbeat := "unknown"
	if r.LastHeartbeatAt != nil {
		lastHeartbeat = r.LastHeartbeatAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if r.ClaimedBy != nil {
		podID = *r.ClaimedBy
	}

	now := time.Now()
	summary := fmt.Sprintf("orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)
	_, err := runs.UpdateRunStatus(ctx, r.ID, run.StatusFailed, models.RunStatusOptions{
		CompletedAt:  &now,
		ErrorSummary: &summary,
	})
	if err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}

	slog.Warn("Orphaned run marked as failed",
		"run_id", r.ID, "old_pod_id", podID, "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of runs claimed by this
// pod before it crashed or restarted. Called during startup, before the
// worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, runs *services.RunService, podID string) error {
	orphans, err := runs.FindRunsClaimedBy(ctx, podID)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, r := range orphans {
		summary := fmt.Sprintf("orphaned: pod %s restarted while run was executing", podID)
		_, err := runs.UpdateRunStatus(ctx, r.ID, run.StatusFailed, models.RunStatusOptions{
			CompletedAt:  &now,
			ErrorSummary: &summary,
		})
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"run_id", r.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "run_id", r.ID)
	}

	return nil
}
