package remediation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepMerge(t *testing.T) {
	t.Run("provenance lists concatenate", func(t *testing.T) {
		base := map[string]any{"provenance": []any{"e1", "e2"}}
		patch := map[string]any{"provenance": []any{"e3"}}

		merged := DeepMerge(base, patch)
		assert.Equal(t, []any{"e1", "e2", "e3"}, merged["provenance"])
		// Inputs untouched.
		assert.Len(t, base["provenance"], 2)
	})

	t.Run("maps merge recursively", func(t *testing.T) {
		base := map[string]any{
			"actors": map[string]any{
				"commuters": map[string]any{"count": 1000, "mode": "car"},
				"freight":   map[string]any{"count": 50},
			},
		}
		patch := map[string]any{
			"actors": map[string]any{
				"commuters": map[string]any{"mode": "transit"},
			},
		}

		merged := DeepMerge(base, patch)
		actors := merged["actors"].(map[string]any)
		commuters := actors["commuters"].(map[string]any)
		assert.Equal(t, "transit", commuters["mode"])
		assert.Equal(t, 1000, commuters["count"])
		assert.Contains(t, actors, "freight")
	})

	t.Run("scalars and lists replace", func(t *testing.T) {
		base := map[string]any{
			"name":       "v1",
			"mechanisms": []any{"tolling", "subsidy"},
		}
		patch := map[string]any{
			"name":       "v2",
			"mechanisms": []any{"tolling"},
		}

		merged := DeepMerge(base, patch)
		assert.Equal(t, "v2", merged["name"])
		assert.Equal(t, []any{"tolling"}, merged["mechanisms"])
	})

	t.Run("new keys are added", func(t *testing.T) {
		merged := DeepMerge(map[string]any{"a": 1}, map[string]any{"b": 2})
		assert.Equal(t, 1, merged["a"])
		assert.Equal(t, 2, merged["b"])
	})

	t.Run("type mismatch replaces", func(t *testing.T) {
		merged := DeepMerge(
			map[string]any{"section": map[string]any{"x": 1}},
			map[string]any{"section": "replaced"},
		)
		assert.Equal(t, "replaced", merged["section"])
	})
}
