// Package cleanup deletes expired ephemeral projects on a schedule. Replay
// scratch projects are created faster than anyone deletes them by hand; the
// sweep keeps the table from growing without bound.
package cleanup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/assaylab/assay/pkg/config"
	"github.com/assaylab/assay/pkg/services"
)

// Sweeper periodically deletes ephemeral projects past their TTL.
type Sweeper struct {
	projects *services.ProjectService
	config   *config.RetentionConfig
	logger   *slog.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSweeper creates a retention sweeper.
func NewSweeper(projects *services.ProjectService, cfg *config.RetentionConfig) *Sweeper {
	return &Sweeper{
		projects: projects,
		config:   cfg,
		logger:   slog.With("component", "cleanup"),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the sweep loop. One sweep runs immediately so expired
// projects don't survive a restart cycle.
func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Info("Retention sweep started",
			"ttl", s.config.EphemeralProjectTTL, "interval", s.config.CleanupInterval)

		s.sweep(ctx)

		ticker := time.NewTicker(s.config.CleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

// Stop signals the loop to exit and waits for it.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	s.logger.Info("Retention sweep stopped")
}

// sweep deletes every ephemeral project older than the TTL. Failures are
// logged and retried on the next tick.
func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.EphemeralProjectTTL)

	expired, err := s.projects.ListExpiredEphemeralProjects(ctx, cutoff)
	if err != nil {
		s.logger.Error("Failed to list expired ephemeral projects", "error", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	deleted := 0
	for _, p := range expired {
		if err := s.projects.DeleteProject(ctx, p.ID); err != nil {
			s.logger.Error("Failed to delete expired project",
				"project_id", p.ID, "error", err)
			continue
		}
		deleted++
	}
	s.logger.Info("Retention sweep finished", "expired", len(expired), "deleted", deleted)
}
