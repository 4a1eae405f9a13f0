package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BetEngine_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

type blockingJob struct {
	release chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	<-j.release
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start(context.Background())

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")}))

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_EnqueueDropsWhenFull(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start(context.Background())

	block := &blockingJob{release: make(chan struct{})}
	assert.True(t, pool.Enqueue(block))

	// Wait until the worker has taken the blocking job so the queue is empty again
	assert.Eventually(t, func() bool { return len(pool.jobQueue) == 0 }, time.Second, 5*time.Millisecond)

	var executed int32
	assert.True(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))

	close(block.release)
	pool.Stop()
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool.Start(context.Background())
		pool.Stop()
		pool.Stop()
	})

	var executed int32
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
}
