package jobqueue

// reportJobError reports an error returned by a job after its retry
// attempts are exhausted.
//
// Job errors do not stop the queue and are reported via the configured
// handler. If no handler is registered, the error is discarded, which
// matches the queue's contract of ignoring job status codes.
func (q *Queue[T]) reportJobError(err error) {
	if q.OnJobError != nil {
		q.OnJobError(err)
	}
}
