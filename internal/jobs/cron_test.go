package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reinsure/internal/pkg/logging"
	"reinsure/internal/ratelimit"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	return 2
}

func TestAddSweep(t *testing.T) {
	cm := NewCronManager(logging.Discard())

	require.NoError(t, cm.AddSweep("ratelimit", "@every 5m", ratelimit.NewMemoryStore()))
	assert.Equal(t, 1, cm.Len())

	assert.Error(t, cm.AddSweep("broken", "every so often", &countingSweeper{}))
	assert.Equal(t, 1, cm.Len())
}

func TestSweepJob(t *testing.T) {
	s := &countingSweeper{}
	job := sweepJob("test", s, logging.Discard())

	job()
	job()
	assert.EqualValues(t, 2, s.calls.Load())
}

func TestStartStop(t *testing.T) {
	cm := NewCronManager(logging.Discard())
	s := &countingSweeper{}
	require.NoError(t, cm.AddSweep("fast", "@every 1s", s))

	cm.Start()
	require.Eventually(t, func() bool { return s.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	cm.Stop(ctx)
}
