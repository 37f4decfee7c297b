package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// listRunCandidates handles GET /api/v1/runs/:id/candidates.
func (s *Server) listRunCandidates(c *gin.Context) {
	ctx := c.Request.Context()
	runID := c.Param("id")

	r, err := s.deps.Runs.GetRun(ctx, runID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	candidates, err := s.deps.Candidates.ListCandidates(ctx, r.ProjectID, models.CandidateFilters{RunID: runID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// listProjectCandidates handles GET /api/v1/projects/:id/candidates.
// Query params: status (repeatable), live, limit, offset.
func (s *Server) listProjectCandidates(c *gin.Context) {
	filters := models.CandidateFilters{
		Statuses: c.QueryArray("status"),
		Live:     c.Query("live") == "true",
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		filters.Offset = offset
	}

	candidates, err := s.deps.Candidates.ListCandidates(c.Request.Context(), c.Param("id"), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// createCandidate handles POST /api/v1/projects/:id/candidates. Candidates
// created here are user-origin seeds; system candidates come from the design
// phase.
func (s *Server) createCandidate(c *gin.Context) {
	var req models.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ProjectID = c.Param("id")
	req.Origin = models.OriginUser
	req.Provenance = &provenance.Entry{
		Type:        provenance.TypeCandidateCreated,
		Actor:       provenance.ActorUser,
		Source:      "api",
		Description: "candidate seeded via API",
	}

	cand, err := s.deps.Candidates.CreateCandidate(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cand)
}
