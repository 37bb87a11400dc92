package jobqueue

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

// Queue is a fixed-size worker pool with a drain-and-stop barrier.
//
// New spawns the workers, Submit feeds them, Wait blocks until every
// worker has drained the pending list and stopped, Close releases
// what is left. All shared state lives behind one mutex; workers park
// on wakeWorker, the Wait caller parks on wakeOwner.
type Queue[T any] struct {
	mu         sync.Mutex
	pending    pendingList[T]
	accepting  bool
	stopped    int
	wakeWorker *sync.Cond
	wakeOwner  *sync.Cond

	workers       int
	activeWorkers atomic.Int32

	opts    Options
	metrics MetricsPolicy

	// OnJobError, if set, receives errors returned by job functions
	// after retry attempts are exhausted. Job errors never stop the
	// queue. Set before submitting; the handler runs on worker
	// goroutines and must be safe for concurrent use.
	OnJobError func(error)
}

// New creates a queue and spawns opts.Workers worker goroutines, each
// parked until work arrives. Workers may be zero, see Options.
func New[T any](opts Options) (*Queue[T], error) {
	if opts.Workers < 0 {
		return nil, ErrNegativeWorkers
	}
	opts.FillDefaults()

	q := &Queue[T]{
		pending:   makePending[T](opts.Policy),
		accepting: true,
		workers:   opts.Workers,
		opts:      opts,
		metrics:   opts.Metrics,
	}
	q.wakeWorker = sync.NewCond(&q.mu)
	q.wakeOwner = sync.NewCond(&q.mu)

	for i := 0; i < q.workers; i++ {
		go q.worker(i)
	}
	return q, nil
}

// Submit enqueues a job and wakes one idle worker. It never blocks on
// job execution and is safe for concurrent producers.
//
// Each submitted job runs at most once; with at least one worker and
// Wait called after this Submit returns, exactly once. Submitting
// after Wait has been invoked returns ErrQueueClosed.
func (q *Queue[T]) Submit(job Job[T]) error {
	if job.Fn == nil {
		return ErrNilFunc
	}
	if job.Ctx == nil {
		job.Ctx = context.Background()
	}

	q.mu.Lock()
	if !q.accepting {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.pending.push(job)
	q.metrics.IncQueued()
	q.wakeWorker.Signal()
	q.mu.Unlock()

	lg.FromContext(job.Ctx).Info("Job submitted", lg.Any("job", job.Payload))
	return nil
}

// worker runs until the queue stops accepting and the pending list is
// observed empty. Jobs execute with no lock held, so a long job never
// blocks submission or the other workers' dispatch.
func (q *Queue[T]) worker(id int) {
	if q.opts.PinWorkers {
		runtime.LockOSThread()
		if err := PinToCPU(id % runtime.NumCPU()); err != nil {
			lg.FromContext(context.Background()).Warn("cpu pinning failed",
				lg.Int("worker", id), lg.Any("error", err))
		}
	}

	q.mu.Lock()
	for {
		for q.pending.Len() == 0 && q.accepting {
			q.wakeWorker.Wait()
		}

		job, ok := q.pending.pop()
		if !ok {
			// accepting flipped and nothing left to drain
			break
		}
		q.metrics.DecQueued(1)
		q.mu.Unlock()

		q.runJob(job)

		q.mu.Lock()
	}

	q.stopped++
	if q.stopped == q.workers {
		// broadcast: Wait and Shutdown may both be parked here
		q.wakeOwner.Broadcast()
	}
	q.mu.Unlock()
}

// runJob executes one job outside the lock: panic recovery, optional
// cleanup, retry with backoff.
func (q *Queue[T]) runJob(job Job[T]) {
	q.activeWorkers.Add(1)
	defer q.activeWorkers.Add(-1)
	defer func() {
		if r := recover(); r != nil {
			lg.FromContext(job.Ctx).Error("job panicked", lg.Any("panic", r))
		}
		if job.CleanupFunc != nil {
			job.CleanupFunc()
		}
		q.metrics.IncExecuted()
	}()
	q.processJob(job)
}

func (q *Queue[T]) processJob(job Job[T]) {
	logger := lg.FromContext(job.Ctx).With(lg.Any("job", job.Payload))
	logger.Info("Worker processing job", lg.Int32("active_workers", q.activeWorkers.Load()))

	pol := q.opts.Retry
	if job.Retry != nil {
		// override non-zero per-job values
		if job.Retry.Attempts > 0 {
			pol.Attempts = job.Retry.Attempts
		}
		if job.Retry.Initial > 0 {
			pol.Initial = job.Retry.Initial
		}
		if job.Retry.Max > 0 {
			pol.Max = job.Retry.Max
		}
	}

	bo := boff.New(pol.Initial, pol.Max, time.Now().UnixNano())

	for attempt := 1; attempt <= pol.Attempts; attempt++ {
		if err := job.Fn(job.Payload); err == nil {
			logger.Info("Worker finished", lg.Int32("active_workers", q.activeWorkers.Load()))
			return
		} else if attempt == pol.Attempts {
			logger.Error("Worker error", lg.Int("attempt", attempt), lg.Any("error", err))
			q.reportJobError(err)
			return
		} else {
			delay := bo.Next()
			logger.Warn("job attempt failed; backing off",
				lg.Int("attempt", attempt),
				lg.String("sleep", delay.String()),
				lg.Any("error", err),
			)
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-job.Ctx.Done():
				if !timer.Stop() {
					<-timer.C // drain if timer is fired
				}
				logger.Info("Job retry canceled", lg.Any("reason", job.Ctx.Err()))
				return
			}
		}
	}
}

// Wait flips the queue to non-accepting, wakes every parked worker so
// it notices the shutdown, and blocks until all workers have drained
// the pending list and stopped.
//
// Idempotent: a second call observes all workers stopped and returns
// without blocking. With zero workers it returns immediately.
func (q *Queue[T]) Wait() {
	q.mu.Lock()
	q.accepting = false
	for q.stopped < q.workers {
		// broadcast, not signal: a worker parked on an empty list must
		// re-evaluate accepting even though no job arrived
		q.wakeWorker.Broadcast()
		q.wakeOwner.Wait()
	}
	q.mu.Unlock()
}

// Shutdown is Wait bounded by a context. When ctx expires first, the
// drain keeps running in the background and a later Wait or Shutdown
// call can still observe it finish.
func (q *Queue[T]) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		q.Wait()
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close discards any residual pending jobs and marks the queue fully
// torn down. It must be called after Wait has returned; calling it
// while workers still run returns ErrStillRunning.
//
// A non-empty residual list here means jobs were enqueued that no
// worker ever picked up (zero workers, or a race the caller created by
// submitting concurrently with Wait); it is reported, not treated as a
// queue defect. The list is freed iteratively.
func (q *Queue[T]) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.accepting || q.stopped < q.workers {
		return ErrStillRunning
	}

	if n := q.pending.Len(); n > 0 {
		lg.FromContext(context.Background()).Warn("discarding jobs never picked up",
			lg.Int("count", n))
	}
	var dropped int64
	for {
		job, ok := q.pending.pop()
		if !ok {
			break
		}
		if job.CleanupFunc != nil {
			job.CleanupFunc()
		}
		dropped++
	}
	if dropped > 0 {
		q.metrics.DecQueued(dropped)
	}
	return nil
}

// Len returns the number of jobs currently pending.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending.Len()
}

// Workers returns the fixed worker count the queue was created with.
func (q *Queue[T]) Workers() int { return q.workers }

// ActiveWorkers returns the number of workers currently executing a job.
func (q *Queue[T]) ActiveWorkers() int32 { return q.activeWorkers.Load() }
