package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJitteredInterval(t *testing.T) {
	t.Run("no jitter returns base", func(t *testing.T) {
		assert.Equal(t, time.Second, jitteredInterval(time.Second, 0))
	})

	t.Run("jitter stays within bounds", func(t *testing.T) {
		base := time.Second
		jitter := 500 * time.Millisecond
		for i := 0; i < 100; i++ {
			d := jitteredInterval(base, jitter)
			assert.GreaterOrEqual(t, d, base-jitter)
			assert.LessOrEqual(t, d, base+jitter)
		}
	})
}

func TestPoolCancelRegistry(t *testing.T) {
	p := &WorkerPool{activeRuns: make(map[string]context.CancelFunc)}

	cancelled := false
	p.RegisterRun("run-1", func() { cancelled = true })

	t.Run("unknown run is not cancelled", func(t *testing.T) {
		assert.False(t, p.CancelRun("run-2"))
		assert.False(t, cancelled)
	})

	t.Run("registered run is cancelled", func(t *testing.T) {
		assert.True(t, p.CancelRun("run-1"))
		assert.True(t, cancelled)
	})

	t.Run("unregister removes the entry", func(t *testing.T) {
		p.UnregisterRun("run-1")
		assert.False(t, p.CancelRun("run-1"))
	})
}
