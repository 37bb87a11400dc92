package jobqueue

import (
	"errors"
)

var (
	// ErrQueueClosed is returned by Submit once Wait (or Shutdown) has
	// been called on the queue. The original accept-after-close behavior
	// was a silent loss; here it is a detectable error.
	ErrQueueClosed = errors.New("jobqueue: queue is closed")

	// ErrNilFunc is returned when a submitted Job has a nil Fn.
	ErrNilFunc = errors.New("jobqueue: job func is nil")

	// ErrNegativeWorkers is returned by New for a worker count below zero.
	// Zero itself is legal, see Options.Workers.
	ErrNegativeWorkers = errors.New("jobqueue: negative worker count")

	// ErrStillRunning is returned by Close when workers have not all
	// stopped yet, i.e. Wait has not completed.
	ErrStillRunning = errors.New("jobqueue: workers still running, call Wait first")
)
