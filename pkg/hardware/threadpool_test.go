package hardware

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadPoolRunsJobs(t *testing.T) {
	pool := NewThreadPool(2)
	defer pool.Stop()

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			ran.Add(1)
		})
	}
	wg.Wait()
	assert.Equal(t, int32(5), ran.Load())
}

func TestFutureCancelBeforeStart(t *testing.T) {
	pool := NewThreadPool(1)
	defer pool.Stop()

	// Occupy the single worker so the next job stays queued.
	release := make(chan struct{})
	started := make(chan struct{})
	pool.Submit(func() {
		close(started)
		<-release
	})
	<-started

	var ran atomic.Bool
	future := pool.Submit(func() { ran.Store(true) })

	assert.True(t, future.Cancel(), "queued job must be cancellable")
	close(release)

	select {
	case <-future.Done():
	case <-time.After(time.Second):
		t.Fatal("cancelled future never resolved")
	}
	assert.False(t, ran.Load(), "cancelled job must not run")
}

func TestFutureCancelAfterStart(t *testing.T) {
	pool := NewThreadPool(1)
	defer pool.Stop()

	started := make(chan struct{})
	release := make(chan struct{})
	future := pool.Submit(func() {
		close(started)
		<-release
	})
	<-started

	// A running job cannot be cancelled; only the cooperative path can
	// stop it now.
	assert.False(t, future.Cancel())
	close(release)

	select {
	case <-future.Done():
	case <-time.After(time.Second):
		t.Fatal("future never completed")
	}
}

func TestFutureDoubleCancel(t *testing.T) {
	pool := NewThreadPool(1)

	release := make(chan struct{})
	started := make(chan struct{})
	pool.Submit(func() {
		close(started)
		<-release
	})
	<-started

	future := pool.Submit(func() {})
	require.True(t, future.Cancel())
	assert.False(t, future.Cancel(), "second cancel must be a no-op")

	close(release)
	pool.Stop()
}
