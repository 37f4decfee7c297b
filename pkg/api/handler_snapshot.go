package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assaylab/assay/pkg/models"
)

// captureSnapshot handles POST /api/v1/projects/:id/snapshots.
func (s *Server) captureSnapshot(c *gin.Context) {
	var req models.CaptureSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := s.deps.Snapshot.Capture(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// listSnapshots handles GET /api/v1/projects/:id/snapshots.
func (s *Server) listSnapshots(c *gin.Context) {
	snaps, err := s.deps.Snapshots.ListSnapshots(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": snaps})
}

// getSnapshot handles GET /api/v1/snapshots/:id.
func (s *Server) getSnapshot(c *gin.Context) {
	snap, err := s.deps.Snapshots.GetSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// updateSnapshot handles PATCH /api/v1/snapshots/:id.
func (s *Server) updateSnapshot(c *gin.Context) {
	var req models.UpdateSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := s.deps.Snapshots.UpdateSnapshot(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// deleteSnapshot handles DELETE /api/v1/snapshots/:id.
func (s *Server) deleteSnapshot(c *gin.Context) {
	if err := s.deps.Snapshots.DeleteSnapshot(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreSnapshotRequest names the project the snapshot's frozen state is
// written into.
type restoreSnapshotRequest struct {
	TargetProjectID string `json:"target_project_id"`
}

// restoreSnapshot handles POST /api/v1/snapshots/:id/restore.
func (s *Server) restoreSnapshot(c *gin.Context) {
	var req restoreSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TargetProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_project_id is required"})
		return
	}

	snapshotID := c.Param("id")
	if err := s.deps.Snapshot.Restore(c.Request.Context(), snapshotID, req.TargetProjectID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot_id": snapshotID, "project_id": req.TargetProjectID, "restored": true})
}

// replaySnapshot handles POST /api/v1/snapshots/:id/replay. The replay runs
// synchronously; callers wanting a batch use the snapshot-tests endpoint.
func (s *Server) replaySnapshot(c *gin.Context) {
	var req models.ReplaySnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.deps.Snapshot.Replay(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// runSnapshotTests handles POST /api/v1/snapshot-tests.
func (s *Server) runSnapshotTests(c *gin.Context) {
	var req models.SnapshotTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.deps.Snapshot.RunSnapshotTests(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
