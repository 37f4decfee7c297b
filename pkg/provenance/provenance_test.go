package provenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		log := Append(nil, Entry{Type: TypeSpecUpdated, Source: "refine"})

		require.Len(t, log, 1)
		assert.Equal(t, TypeSpecUpdated, log[0].Type)
		assert.Equal(t, ActorSystem, log[0].Actor)
		assert.False(t, log[0].Timestamp.IsZero())
		assert.Equal(t, time.UTC, log[0].Timestamp.Location())
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		base := Append(nil, Entry{Type: "first"})
		withSpare := make([]Entry, 1, 4)
		copy(withSpare, base)

		a := Append(withSpare, Entry{Type: "second"})
		b := Append(withSpare, Entry{Type: "third"})

		require.Len(t, withSpare, 1)
		assert.Equal(t, "second", a[1].Type)
		assert.Equal(t, "third", b[1].Type)
	})

	t.Run("timestamps never move backwards", func(t *testing.T) {
		later := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		earlier := later.Add(-time.Hour)

		log := Append(nil, Entry{Type: "first", Timestamp: later})
		log = Append(log, Entry{Type: "second", Timestamp: earlier})

		require.Len(t, log, 2)
		assert.Equal(t, later, log[1].Timestamp)
	})

	t.Run("explicit actor preserved", func(t *testing.T) {
		log := Append(nil, Entry{Type: "x", Actor: ActorUser})
		assert.Equal(t, ActorUser, log[0].Actor)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		s := Summarize(nil)
		assert.Equal(t, 0, s.EventCount)
		assert.Nil(t, s.LastEvent)
	})

	t.Run("returns last entry", func(t *testing.T) {
		log := Append(nil, Entry{Type: "first"})
		log = Append(log, Entry{Type: "second"})

		s := Summarize(log)
		assert.Equal(t, 2, s.EventCount)
		require.NotNil(t, s.LastEvent)
		assert.Equal(t, "second", s.LastEvent.Type)
	})
}

func TestAppendToTree(t *testing.T) {
	t.Run("creates provenance array", func(t *testing.T) {
		tree := map[string]any{"actors": []any{"operator"}}
		tree = AppendToTree(tree, Entry{Type: TypeModelUpdated, Actor: ActorAgent})

		list, ok := tree["provenance"].([]any)
		require.True(t, ok)
		require.Len(t, list, 1)

		entry, ok := list[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, TypeModelUpdated, entry["type"])
		assert.Equal(t, "agent", entry["actor"])
	})

	t.Run("appends to existing array", func(t *testing.T) {
		tree := map[string]any{
			"provenance": []any{map[string]any{"type": "seed"}},
		}
		tree = AppendToTree(tree, Entry{Type: TypeFeedbackPatch})

		list := tree["provenance"].([]any)
		require.Len(t, list, 2)
		assert.Equal(t, TypeFeedbackPatch, list[1].(map[string]any)["type"])
	})

	t.Run("replaces malformed array", func(t *testing.T) {
		tree := map[string]any{"provenance": "not a list"}
		tree = AppendToTree(tree, Entry{Type: "x"})

		list, ok := tree["provenance"].([]any)
		require.True(t, ok)
		assert.Len(t, list, 1)
	})

	t.Run("nil tree", func(t *testing.T) {
		tree := AppendToTree(nil, Entry{Type: "x"})
		require.NotNil(t, tree)
		assert.Len(t, tree["provenance"], 1)
	})
}

func TestValidActor(t *testing.T) {
	assert.True(t, ValidActor(ActorUser))
	assert.True(t, ValidActor(ActorAgent))
	assert.True(t, ValidActor(ActorSystem))
	assert.False(t, ValidActor("robot"))
	assert.False(t, ValidActor(""))
}
