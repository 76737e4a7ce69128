package hardware

import (
	"sync"
	"sync/atomic"
)

// Future states
const (
	futurePending int32 = iota
	futureRunning
	futureDone
	futureCancelled
)

// Future tracks a job submitted to the thread pool. Only pre-start
// cancellation is possible: a running goroutine cannot be killed, so Cancel
// on a started job returns false and the job runs to completion (cooperative
// cancellation takes over from there).
type Future struct {
	fn    func()
	state atomic.Int32
	done  chan struct{}
}

// Cancel prevents the job from starting. Returns true only when the job had
// not been picked up by a worker yet.
func (f *Future) Cancel() bool {
	if f.state.CompareAndSwap(futurePending, futureCancelled) {
		close(f.done)
		return true
	}
	return false
}

// Done is closed when the job finished or was cancelled before starting
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// ThreadPool is the in-process executor for GPU tasks: a fixed set of worker
// goroutines draining a job queue. The GPU serializes kernels per device, so
// two workers are enough to keep it busy.
type ThreadPool struct {
	jobs chan *Future
	wg   sync.WaitGroup

	stopOnce sync.Once
}

// NewThreadPool starts a pool with the given number of workers
func NewThreadPool(workers int) *ThreadPool {
	if workers <= 0 {
		workers = 1
	}
	p := &ThreadPool{
		jobs: make(chan *Future, 64),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Name identifies this executor
func (p *ThreadPool) Name() string {
	return "gpu-threads"
}

// Submit queues fn and returns its future
func (p *ThreadPool) Submit(fn func()) *Future {
	f := &Future{fn: fn, done: make(chan struct{})}
	p.jobs <- f
	return f
}

// Stop closes the queue and waits for workers to drain
func (p *ThreadPool) Stop() {
	p.stopOnce.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
}

func (p *ThreadPool) worker() {
	defer p.wg.Done()
	for f := range p.jobs {
		if !f.state.CompareAndSwap(futurePending, futureRunning) {
			continue // cancelled before start
		}
		f.fn()
		f.state.Store(futureDone)
		close(f.done)
	}
}
