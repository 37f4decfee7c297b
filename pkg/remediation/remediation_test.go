package remediation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assaylab/assay/pkg/models"
)

func TestDefaultAction(t *testing.T) {
	tests := []struct {
		name          string
		severity      string
		hasCandidates bool
		want          string
	}{
		{"minor patches and rescores", models.SeverityMinor, false, models.ActionPatchAndRescore},
		{"important reruns partially", models.SeverityImportant, true, models.ActionPartialRerun},
		{"catastrophic with targets invalidates", models.SeverityCatastrophic, true, models.ActionInvalidateCandidates},
		{"catastrophic without targets reruns fully", models.SeverityCatastrophic, false, models.ActionFullRerun},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultAction(tt.severity, tt.hasCandidates))
		})
	}
}

func TestUndersizedAction(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		severity string
		want     bool
	}{
		{"rescore on minor is proportionate", models.ActionPatchAndRescore, models.SeverityMinor, false},
		{"rescore on important is flagged", models.ActionPatchAndRescore, models.SeverityImportant, true},
		{"rescore on catastrophic is flagged", models.ActionPatchAndRescore, models.SeverityCatastrophic, true},
		{"full rerun is never undersized", models.ActionFullRerun, models.SeverityCatastrophic, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, undersizedAction(tt.action, tt.severity))
		})
	}
}
