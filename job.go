package jobqueue

import (
	"context"
)

// JobFunc is the function executed by a worker for a given job payload.
type JobFunc[T any] func(T) error

// Job represents a single unit of work submitted to the queue.
//
// Payload is passed to Fn when executed. The queue never inspects the
// payload; any result must be written by Fn into memory reachable
// through the payload, which the caller must keep valid until Wait
// returns.
//
// Ctx is optional. It is used for log correlation and to cancel
// backoff sleeps between retry attempts. It does not cancel a queued
// or running job.
//
// CleanupFunc, if set, runs after Fn returns, even if Fn panicked.
//
// Retry, if set, overrides the queue's default retry policy for this
// job; zero fields fall back to the defaults.
type Job[T any] struct {
	Payload     T
	Fn          JobFunc[T]
	Ctx         context.Context
	CleanupFunc func()
	Retry       *RetryPolicy
}
