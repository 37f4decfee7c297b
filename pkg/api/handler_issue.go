package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/remediation"
)

// createIssue handles POST /api/v1/projects/:id/issues.
func (s *Server) createIssue(c *gin.Context) {
	var req models.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ProjectID = c.Param("id")

	issue, err := s.deps.Issues.CreateIssue(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, issue)
}

// listIssues handles GET /api/v1/projects/:id/issues. Query params:
// resolution_status, severity.
func (s *Server) listIssues(c *gin.Context) {
	filters := models.IssueFilters{
		ResolutionStatus: c.Query("resolution_status"),
		Severity:         c.Query("severity"),
	}
	issues, err := s.deps.Issues.ListIssues(c.Request.Context(), c.Param("id"), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"issues": issues})
}

// getIssue handles GET /api/v1/issues/:id.
func (s *Server) getIssue(c *gin.Context) {
	issue, err := s.deps.Issues.GetIssue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// resolveIssue handles POST /api/v1/issues/:id/resolve. The remediation
// engine picks the action from severity when the request leaves it blank,
// applies any patches and dispatches follow-up work before marking the issue
// resolved.
func (s *Server) resolveIssue(c *gin.Context) {
	var req remediation.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := s.deps.Remediation.Resolve(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// suggestFeedback handles POST /api/v1/issues/:id/feedback: asks the feedback
// agent for a remediation suggestion. Nothing is applied; the caller decides
// whether to feed the suggestion into resolve.
func (s *Server) suggestFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	issue, err := s.deps.Issues.GetIssue(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	task := map[string]any{
		"issue_id":    issue.ID,
		"issue_type":  issue.IssueType,
		"severity":    issue.Severity,
		"description": issue.Description,
	}
	if issue.RunID != nil {
		task["run_id"] = *issue.RunID
	}
	if issue.CandidateID != nil {
		task["candidate_id"] = *issue.CandidateID
	}

	runID := ""
	if issue.RunID != nil {
		runID = *issue.RunID
	}
	suggestion, _, err := s.deps.Gateway.SuggestRemediation(ctx, runID, task)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"issue_id": issue.ID, "suggestion": suggestion})
}
