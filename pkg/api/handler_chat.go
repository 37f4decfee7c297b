package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/assaylab/assay/pkg/models"
)

// createChatSession handles POST /api/v1/projects/:id/chat-sessions.
func (s *Server) createChatSession(c *gin.Context) {
	var req models.CreateChatSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ProjectID = c.Param("id")

	session, err := s.deps.Chats.CreateSession(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// listChatSessions handles GET /api/v1/projects/:id/chat-sessions.
func (s *Server) listChatSessions(c *gin.Context) {
	sessions, err := s.deps.Chats.ListSessions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chat_sessions": sessions})
}

// createMessage handles POST /api/v1/chat-sessions/:id/messages.
func (s *Server) createMessage(c *gin.Context) {
	var req models.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ChatSessionID = c.Param("id")

	msg, err := s.deps.Chats.CreateMessage(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// listMessages handles GET /api/v1/chat-sessions/:id/messages. An optional
// limit query caps the result; zero means no cap.
func (s *Server) listMessages(c *gin.Context) {
	limit := 0
	if n, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = n
	}

	msgs, err := s.deps.Chats.ListMessages(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
