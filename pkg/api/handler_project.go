package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assaylab/assay/ent"
	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/delta"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
	"github.com/assaylab/assay/pkg/version"
)

// version handles GET /version.
func (s *Server) version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     version.AppName,
		"version": version.Full(),
		"commit":  version.GitCommit,
	})
}

// createProject handles POST /api/v1/projects.
func (s *Server) createProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := s.deps.Projects.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// listProjects handles GET /api/v1/projects.
func (s *Server) listProjects(c *gin.Context) {
	projects, err := s.deps.Projects.ListProjects(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// getProject handles GET /api/v1/projects/:id.
func (s *Server) getProject(c *gin.Context) {
	p, err := s.deps.Projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// deleteProject handles DELETE /api/v1/projects/:id.
func (s *Server) deleteProject(c *gin.Context) {
	if err := s.deps.Projects.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getProblemSpec handles GET /api/v1/projects/:id/problem-spec.
func (s *Server) getProblemSpec(c *gin.Context) {
	spec, err := s.deps.Specs.GetProblemSpec(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, spec)
}

// putProblemSpecRequest accepts either a direct spec or a problem_spec
// agent refinement carrying the proposed spec.
type putProblemSpecRequest struct {
	Constraints   []models.Constraint           `json:"constraints"`
	Goals         []string                      `json:"goals"`
	Resolution    string                        `json:"resolution"`
	Mode          string                        `json:"mode"`
	AgentResponse *agent.SpecRefinementResponse `json:"agent_response,omitempty"`
}

// putProblemSpec handles PUT /api/v1/projects/:id/problem-spec. The response
// includes the delta against the previous spec state.
func (s *Server) putProblemSpec(c *gin.Context) {
	projectID := c.Param("id")

	var req putProblemSpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upsert := models.UpsertProblemSpecRequest{
		ProjectID:   projectID,
		Constraints: req.Constraints,
		Goals:       req.Goals,
		Resolution:  req.Resolution,
		Mode:        req.Mode,
	}
	if req.AgentResponse != nil {
		draft := req.AgentResponse.UpdatedSpec
		if draft == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "agent_response carries no updated_spec"})
			return
		}
		upsert.Constraints = draft.Constraints
		upsert.Goals = draft.Goals
		upsert.Resolution = draft.Resolution
		upsert.Mode = draft.Mode
		upsert.Provenance = &provenance.Entry{
			Type:        provenance.TypeSpecUpdated,
			Actor:       provenance.ActorAgent,
			Source:      "agent:problem_spec",
			Description: req.AgentResponse.Reasoning,
		}
	}

	oldState := specState(nil)
	if existing, err := s.deps.Specs.GetProblemSpec(c.Request.Context(), projectID); err == nil {
		oldState = specState(existing)
	}

	spec, err := s.deps.Specs.UpsertProblemSpec(c.Request.Context(), upsert)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	d := delta.ComputeSpecDelta(oldState, specState(spec))
	c.JSON(http.StatusOK, gin.H{
		"problem_spec":  spec,
		"delta":         d,
		"delta_summary": d.Summary(),
	})
}

func specState(spec *ent.ProblemSpec) delta.SpecState {
	if spec == nil {
		return delta.SpecState{}
	}
	return delta.SpecState{
		Constraints: spec.Constraints,
		Goals:       spec.Goals,
		Resolution:  string(spec.Resolution),
		Mode:        string(spec.Mode),
	}
}

// getWorldModel handles GET /api/v1/projects/:id/world-model.
func (s *Server) getWorldModel(c *gin.Context) {
	model, err := s.deps.Specs.GetWorldModel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// putWorldModelRequest accepts either direct model_data or a world_modeller
// refinement carrying the updated model and its structured changes.
type putWorldModelRequest struct {
	ModelData     map[string]any                 `json:"model_data"`
	AgentResponse *agent.ModelRefinementResponse `json:"agent_response,omitempty"`
}

// putWorldModel handles PUT /api/v1/projects/:id/world-model.
func (s *Server) putWorldModel(c *gin.Context) {
	projectID := c.Param("id")

	var req putWorldModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upsert := models.UpsertWorldModelRequest{
		ProjectID: projectID,
		ModelData: req.ModelData,
	}
	var changes []agent.ModelChange
	if req.AgentResponse != nil {
		if req.AgentResponse.UpdatedModel == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "agent_response carries no updated_model"})
			return
		}
		upsert.ModelData = req.AgentResponse.UpdatedModel
		changes = req.AgentResponse.Changes
		upsert.Provenance = &provenance.Entry{
			Type:        provenance.TypeModelUpdated,
			Actor:       provenance.ActorAgent,
			Source:      "agent:world_modeller",
			Description: req.AgentResponse.Reasoning,
		}
	}

	var oldData map[string]any
	if existing, err := s.deps.Specs.GetWorldModel(c.Request.Context(), projectID); err == nil {
		oldData = existing.ModelData
	}

	model, err := s.deps.Specs.UpsertWorldModel(c.Request.Context(), upsert)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	d := delta.ComputeModelDelta(oldData, model.ModelData, changes)
	c.JSON(http.StatusOK, gin.H{
		"world_model":   model,
		"delta":         d,
		"delta_summary": d.Summary(),
	})
}

// preflightRequest is the body of POST /api/v1/projects/:id/preflight.
type preflightRequest struct {
	Mode   string           `json:"mode,omitempty"`
	Config models.RunConfig `json:"config"`
}

// runPreflight handles POST /api/v1/projects/:id/preflight.
func (s *Server) runPreflight(c *gin.Context) {
	var req preflightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.deps.Preflight.Check(c.Request.Context(), c.Param("id"), req.Mode, req.Config)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getGuidance handles GET /api/v1/projects/:id/guidance: asks the guidance
// agent for next steps based on the project's current state.
func (s *Server) getGuidance(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := c.Param("id")

	if _, err := s.deps.Projects.GetProject(ctx, projectID); err != nil {
		respondServiceError(c, err)
		return
	}

	task := map[string]any{"project_id": projectID}
	if prereqs, err := s.deps.Specs.CheckPrerequisites(ctx, projectID); err == nil {
		task["prerequisites"] = prereqs
	}
	if spec, err := s.deps.Specs.GetProblemSpec(ctx, projectID); err == nil {
		task["constraints"] = spec.Constraints
		task["goals"] = spec.Goals
	}
	if n, err := s.deps.Candidates.CountLive(ctx, projectID); err == nil {
		task["live_candidates"] = n
	}
	if issues, err := s.deps.Issues.ListIssues(ctx, projectID, models.IssueFilters{
		ResolutionStatus: models.ResolutionOpen,
	}); err == nil {
		task["open_issues"] = len(issues)
	}

	guidance, _, err := s.deps.Gateway.SuggestNextSteps(ctx, "", task)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guidance)
}
