package jobqueue

import (
	"runtime"
)

// Policy selects the order in which a worker picks the next pending job.
//
// The queue stores pending jobs as a linked node list with O(1) push
// and pop under either policy. LIFO is head insertion (a just-submitted
// job is dispatched first), FIFO is tail insertion. Neither policy says
// anything about inter-job completion order once more than one worker
// runs: whichever idle worker wakes first claims the current head.
type Policy int

const (
	// LIFO dispatches the most recently submitted pending job first.
	// This is the default; treat it as a recency-bias scheduling
	// policy, not an implementation accident.
	LIFO Policy = iota

	// FIFO dispatches pending jobs in submission order.
	FIFO
)

func (p Policy) String() string {
	switch p {
	case LIFO:
		return "LIFO"
	case FIFO:
		return "FIFO"
	default:
		return "Unknown"
	}
}

// Options configure a Queue.
//
// Zero values other than Workers are replaced with defaults in
// FillDefaults.
type Options struct {
	// Workers is the number of worker goroutines spawned by New.
	// Zero is legal: no worker runs, Wait returns immediately, and any
	// submitted job sits unexecuted until Close discards it. Negative
	// values are rejected by New with ErrNegativeWorkers.
	//
	// FillDefaults leaves Workers alone because zero is meaningful;
	// use DefaultWorkers for a CPU-sized pool.
	Workers int

	// Policy is the dispatch order for pending jobs.
	Policy Policy

	// Retry is the default retry policy applied to jobs whose Fn
	// returns an error. Zero fields are filled from package defaults.
	Retry RetryPolicy

	// Metrics receives queueing and execution counters. Nil selects
	// NoopMetrics.
	Metrics MetricsPolicy

	// PinWorkers locks each worker to an OS thread and, on Linux, pins
	// it to one CPU core. Only useful for CPU-bound jobs.
	PinWorkers bool
}

// DefaultWorkers returns a worker count sized to the machine.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

func (o *Options) FillDefaults() {
	if o.Retry.Attempts <= 0 {
		o.Retry.Attempts = defaultAttempts
	}
	if o.Retry.Initial <= 0 {
		o.Retry.Initial = defaultInitialRetry
	}
	if o.Retry.Max <= 0 {
		o.Retry.Max = defaultMaxRetry
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}
