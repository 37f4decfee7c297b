package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assaylab/assay/pkg/models"
)

// createRun handles POST /api/v1/projects/:id/runs. With enqueue set the run
// waits for a worker pool pod to claim it; otherwise it executes on a
// background goroutine in this process.
func (s *Server) createRun(c *gin.Context) {
	var req models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ProjectID = c.Param("id")

	r, err := s.deps.Runs.CreateRun(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !req.Enqueue {
		// Detached from the request context: the run outlives the HTTP
		// response. The orchestrator owns the run's status from here.
		go func() {
			if execErr := s.deps.Orchestrator.ExecuteFullPipeline(context.Background(), r.ProjectID, r.ID); execErr != nil {
				s.logger.Warn("Background run finished with error",
					"run_id", r.ID, "error", execErr)
			}
		}()
	}

	c.JSON(http.StatusCreated, r)
}

// listRuns handles GET /api/v1/projects/:id/runs.
func (s *Server) listRuns(c *gin.Context) {
	filters := models.RunFilters{Status: c.Query("status")}
	runs, err := s.deps.Runs.ListRuns(c.Request.Context(), c.Param("id"), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// getRun handles GET /api/v1/runs/:id.
func (s *Server) getRun(c *gin.Context) {
	r, err := s.deps.Runs.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// cancelRun handles POST /api/v1/runs/:id/cancel. Cancellation works through
// the pool's cancel registry: the orchestrator observes the context
// cancellation and records the cancelled status itself. A run not executing
// on this pod cannot be cancelled here.
func (s *Server) cancelRun(c *gin.Context) {
	runID := c.Param("id")

	if _, err := s.deps.Runs.GetRun(c.Request.Context(), runID); err != nil {
		respondServiceError(c, err)
		return
	}

	if s.deps.Pool == nil || !s.deps.Pool.CancelRun(runID) {
		c.JSON(http.StatusConflict, gin.H{"error": "run is not executing on this pod"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"run_id": runID, "cancelling": true})
}

// executePhase handles POST /api/v1/runs/:id/phases/:phase, running the named
// phase synchronously against an existing run.
func (s *Server) executePhase(c *gin.Context) {
	ctx := c.Request.Context()
	runID := c.Param("id")

	r, err := s.deps.Runs.GetRun(ctx, runID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var execErr error
	switch phase := c.Param("phase"); phase {
	case "design":
		execErr = s.deps.Orchestrator.ExecuteDesignPhase(ctx, r.ProjectID, runID)
	case "scenario":
		execErr = s.deps.Orchestrator.ExecuteScenarioPhase(ctx, r.ProjectID, runID)
	case "design-scenario":
		execErr = s.deps.Orchestrator.ExecuteDesignAndScenarioPhase(ctx, r.ProjectID, runID)
	case "evaluate":
		execErr = s.deps.Orchestrator.ExecuteEvaluationPhase(ctx, r.ProjectID, runID)
	case "rank":
		execErr = s.deps.Orchestrator.ExecuteRankingPhase(ctx, r.ProjectID, runID)
	case "evaluate-rank":
		execErr = s.deps.Orchestrator.ExecuteEvaluateAndRankPhase(ctx, r.ProjectID, runID)
	case "pipeline":
		execErr = s.deps.Orchestrator.ExecuteFullPipeline(ctx, r.ProjectID, runID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown phase: " + phase})
		return
	}
	if execErr != nil {
		respondServiceError(c, execErr)
		return
	}

	updated, err := s.deps.Runs.GetRun(ctx, runID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// listRunEvaluations handles GET /api/v1/runs/:id/evaluations. An optional
// candidate_id query narrows to one candidate.
func (s *Server) listRunEvaluations(c *gin.Context) {
	evals, err := s.deps.Evaluations.ListEvaluations(c.Request.Context(), c.Param("id"), c.Query("candidate_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluations": evals})
}

// getScenarioSuite handles GET /api/v1/runs/:id/scenario-suite.
func (s *Server) getScenarioSuite(c *gin.Context) {
	suite, err := s.deps.Scenarios.GetSuite(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, suite)
}
