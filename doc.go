// Package jobqueue provides a fixed-size worker pool with a
// drain-and-stop completion barrier.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - One coarse lock, no lock-free structures, easy to reason about
//   - A submitter can block until every submitted job has completed
//   - Job execution never runs with the lock held
//   - Internal failures surface as error values, not process aborts
//
// Rather than optimizing for throughput of many short-lived jobs,
// jobqueue optimizes for the batch pattern: submit a bounded set of
// work, wait for all of it, tear down.
//
// Architecture overview
//
// The queue is composed of three parts:
//
//  1. Pending list (pendingList)
//     A linked node list with O(1) push and pop. The dispatch order is
//     a configurable policy: LIFO head insertion (the default) or FIFO.
//
//  2. Workers
//     A fixed set of goroutines spawned at construction. Each worker
//     loops: park while the list is empty and the queue is accepting,
//     pop the head, run the job with no lock held, repeat.
//
//  3. Barrier
//     Wait flips a one-way accepting latch, broadcasts to every parked
//     worker, and blocks until each worker has observed the empty list
//     and incremented the stopped count. The last worker to stop wakes
//     the barrier caller.
//
// All shared state (pending list, accepting latch, stopped count) is
// guarded by a single mutex with two condition variables: one to wake
// idle workers, one to wake the Wait caller. There is no inter-job
// ordering guarantee once more than one worker runs; the policy only
// fixes which pending job an idle worker claims next.
//
// Lifecycle
//
// New spawns the workers. Submit enqueues and wakes one idle worker;
// it returns ErrQueueClosed once Wait has been called. Wait is
// idempotent and, with zero workers, returns immediately. Close must
// follow Wait; it discards any jobs no worker ever picked up.
//
// A zero worker count is legal and useful in tests: no job ever runs,
// Wait does not block, and Close reports the residue.
//
// Error handling
//
// The queue distinguishes between two classes of errors:
//
//   - Job errors: returned by job functions or produced by panic
//     recovery. Reported via the OnJobError handler after retries are
//     exhausted; they never stop worker execution.
//   - Usage errors: returned by New, Submit, and Close as sentinel
//     values (ErrNegativeWorkers, ErrQueueClosed, ErrNilFunc,
//     ErrStillRunning).
//
// Panics inside jobs are recovered to prevent worker termination.
//
// Intended use cases
//
// jobqueue is well suited for:
//
//   - Batch parallelism: fan a computation out over a fixed pool and
//     join on the barrier
//   - Workloads where results are written through the job payload
//   - Code that needs a deterministic, inspectable shutdown protocol
//
// It is not a streaming pipeline: the queue is unbounded, submission
// never applies backpressure, and there is no per-job completion
// notification short of the barrier.
package jobqueue
