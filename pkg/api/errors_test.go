package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/services"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("name", "missing field"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "missing field",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "invalid transition maps to 409",
			err:        fmt.Errorf("%w: run r1 cannot move completed → running", services.ErrInvalidTransition),
			expectCode: http.StatusConflict,
			expectMsg:  "cannot move",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			respondServiceError(c, tt.err)

			assert.Equal(t, tt.expectCode, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.expectMsg)
		})
	}
}

func TestRespondServiceErrorPrecondition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", nil)

	respondServiceError(c, &services.PreconditionError{
		Missing:            []string{"problem_spec"},
		ProjectID:          "p1",
		ExistingProjectIDs: []string{"p2"},
	})

	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)

	var body struct {
		Error              string   `json:"error"`
		Missing            []string `json:"missing"`
		ProjectID          string   `json:"project_id"`
		ExistingProjectIDs []string `json:"existing_project_ids"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "precondition failed", body.Error)
	assert.Equal(t, []string{"problem_spec"}, body.Missing)
	assert.Equal(t, "p1", body.ProjectID)
	assert.Equal(t, []string{"p2"}, body.ExistingProjectIDs)
}
